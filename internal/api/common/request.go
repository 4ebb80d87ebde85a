package common

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"time"

	"gym-frontdesk/internal/apperr"
	"gym-frontdesk/internal/domain/access"

	"github.com/gin-gonic/gin"
)

// ParamID reads a positive numeric path parameter.
func ParamID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.Validation("request", "ID inválido").
			WithDetails(map[string]string{name: raw})
	}
	return uint(id), nil
}

// BindJSON decodes the request body into dst. An empty body leaves dst untouched.
func BindJSON(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil && !errors.Is(err, io.EOF) {
		return apperr.Validation("request", "JSON mal formado")
	}
	return nil
}

// OptionalDate parses a YYYY-MM-DD field; blank means absent.
func OptionalDate(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := access.ParseDate(raw)
	if err != nil {
		return nil, apperr.Validation("request", "Fecha inválida, use AAAA-MM-DD").
			WithDetails(map[string]string{field: raw})
	}
	return &d, nil
}
