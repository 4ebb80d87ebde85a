package apperr

import (
	"net/http"

	"gym-frontdesk/internal/logger"

	"github.com/gin-gonic/gin"
)

// Respond writes err as the JSON error body used by every endpoint.
// Errors that are not *Error are treated as internal and never leak their text.
func Respond(c *gin.Context, err error) {
	e, ok := As(err)
	if !ok {
		e = Wrap(err, CodeInternalError, "system", "Error del servidor", http.StatusInternalServerError)
	}

	if e.HTTPCode >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("request failed",
			"code", e.Code,
			"domain", e.Domain,
			"error", e.Unwrap(),
			"path", c.Request.URL.Path,
		)
	}

	body := gin.H{"error": e.Message, "code": e.Code}
	if len(e.Details) > 0 {
		body["details"] = e.Details
	}
	c.AbortWithStatusJSON(e.HTTPCode, body)
}
