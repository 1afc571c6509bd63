package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Reminder parsing specifics
	NER    NERConfig
	Parser ParserConfig

	// API protection
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// NERConfig is the single process-wide toggle of the model-backed
// extraction capability, determined at startup.
type NERConfig struct {
	Enabled bool
	APIKey  string
	APIURL  string
	Model   string
}

type ParserConfig struct {
	Timezone string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// NER backend
	cfg.NER.Enabled = viper.GetBool("ner.enabled")
	cfg.NER.APIKey = viper.GetString("ner.api_key")
	cfg.NER.APIURL = viper.GetString("ner.api_url")
	cfg.NER.Model = viper.GetString("ner.model")
	if nerKey := viper.GetString("ner_api_key"); nerKey != "" {
		cfg.NER.APIKey = nerKey
	}

	// Parser
	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	if tz := viper.GetString("parser_timezone"); tz != "" {
		cfg.Parser.Timezone = tz
	}

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 5000)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("ner.enabled", true)
	viper.SetDefault("parser.timezone", "UTC")
	viper.SetDefault("rate_limit.per_min", 60)
}
