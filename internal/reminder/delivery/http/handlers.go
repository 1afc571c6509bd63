package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reminder-nlp-service/internal/model"
	"reminder-nlp-service/pkg/response"
)

// Parse godoc
// @Summary     Parse reminder text
// @Description Interprets a natural-language reminder sentence into a structured reminder record.
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Reminder text and user id"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	result, err := h.uc.Parse(ctx, model.Scope{UserID: req.UserID}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		h.mapError(c, err)
		return
	}

	// The parse result is the response body itself, not wrapped in the
	// standard envelope.
	c.JSON(http.StatusOK, newParseResp(result))
}
