package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"school-backend/internal/apperrors"
	"school-backend/internal/logger"
)

// ErrorResponse is the envelope for every non-2xx reply.
type ErrorResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewErrorHandler maps domain errors to their HTTP status and everything
// unexpected to a logged 500.
func NewErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "internal server error"

		if domainErr, ok := apperrors.AsDomainError(err); ok {
			status = domainErr.HTTPStatus()
			message = domainErr.Message()
			log.Debugf("domain error: code=%s status=%d", domainErr.Code(), status)
		} else if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			} else {
				message = http.StatusText(status)
			}
		} else {
			log.Errorf("unhandled error: %v", err)
		}

		resp := ErrorResponse{
			Status:  "error",
			Code:    status,
			Message: message,
		}

		if writeErr := c.JSON(status, resp); writeErr != nil {
			log.Errorf("write error response: %v", writeErr)
		}
	}
}
