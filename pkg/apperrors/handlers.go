package apperrors

import (
	"github.com/gin-gonic/gin"

	"edurec_backend/internal/logger"
)

// HandleError writes the error to the client as a flat {"error": message}
// body. Codes, domains and wrapped errors are logged, never serialized.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", appErr,
			"code", string(appErr.Code),
			"domain", appErr.Domain,
		)
	}

	body := gin.H{"error": appErr.Message}
	if appErr.Details != nil {
		body["details"] = appErr.Details
	}
	c.JSON(appErr.HTTPCode, body)
}

// AsAppError attempts to interpret err as an *AppError.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
