package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"reminder-nlp-service/internal/middleware"
	reminderHTTP "reminder-nlp-service/internal/reminder/delivery/http"
	"reminder-nlp-service/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Reminder domain
	reminderHandler reminderHTTP.Handler
	middleware      middleware.Middleware

	// Whether the BERT-backed extraction variant initialized
	bertAvailable bool
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ReminderHandler reminderHTTP.Handler
	Middleware      middleware.Middleware
	BERTAvailable   bool
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		reminderHandler: cfg.ReminderHandler,
		middleware:      cfg.Middleware,
		bertAvailable:   cfg.BERTAvailable,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.reminderHandler == nil {
		return errors.New("reminder handler is required")
	}
	return nil
}

// Run maps all handlers and serves until the listener fails.
func (srv HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}
