package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Rolo3650/sicove-api/internal/apperr"
	"github.com/Rolo3650/sicove-api/pkg/logger"
)

// HTTPErrorHandler renders every error raised by a route or middleware into
// the error envelope. Domain errors keep their message and status; anything
// unclassified becomes a 500 with the raw error threaded into the detail.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	log := logger.FromEcho(c)

	status := http.StatusInternalServerError
	message := "Internal server error"
	var detail interface{}

	if appErr, ok := apperr.As(err); ok {
		status = appErr.Status()
		message = appErr.Message
		switch {
		case len(appErr.Fields) > 0:
			detail = appErr.Fields
		case appErr.Err != nil:
			detail = appErr.Err.Error()
		default:
			detail = appErr.Message
		}
		if appErr.Kind == apperr.KindInternal {
			log.Error("request failed",
				zap.String("path", c.Path()),
				zap.Error(err))
		}
	} else if httpErr, ok := err.(*echo.HTTPError); ok {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		detail = message
	} else {
		detail = err.Error()
		log.Error("unhandled error",
			zap.String("path", c.Path()),
			zap.Error(err))
	}

	writeErr := c.JSON(status, ErrorResponse{
		Message:    message,
		StatusCode: status,
		Error:      detail,
	})
	if writeErr != nil {
		log.Error("failed to write error response", zap.Error(writeErr))
	}
}
