package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "battery-shipment-monitor/pkg/errors"
	"battery-shipment-monitor/pkg/utils"
)

// respondError maps the error taxonomy to HTTP statuses. Internal errors
// keep their detail out of the response body.
func respondError(c *gin.Context, err error) {
	var status int
	switch appErrors.CodeOf(err) {
	case appErrors.CodeValidation:
		status = http.StatusBadRequest
	case appErrors.CodeNotFound:
		status = http.StatusNotFound
	case appErrors.CodeConflict:
		status = http.StatusConflict
	default:
		status = http.StatusInternalServerError
	}

	message := "Failed to process request"
	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	utils.ErrorResponse(c, status, message)
}

// requesterEmail reads the authenticated identity set by the auth
// middleware, falling back to "system".
func requesterEmail(c *gin.Context) string {
	if email, exists := c.Get("email"); exists {
		if s, ok := email.(string); ok && s != "" {
			return s
		}
	}
	return "system"
}
