package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/labstack/echo/v5"
)

const (
	headerRequestID = "X-Request-Id"
	mimeTextPlain   = "text/plain; charset=utf-8"
)

// requestID tags every response with an id, reusing one supplied by the
// client when present.
func requestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c *echo.Context) error {
		id := c.Request().Header.Get(headerRequestID)
		if id == "" {
			id = "req_" + uuid.NewString()
		}
		c.Response().Header().Set(headerRequestID, id)
		return next(c)
	}
}

func currentRequestID(c *echo.Context) string {
	return c.Response().Header().Get(headerRequestID)
}

func writeError(c *echo.Context, status int, errType, msg string) error {
	return c.JSON(status, map[string]any{
		"error": ResponseError{
			Message: msg,
			Type:    errType,
			Code:    http.StatusText(status),
		},
	})
}

func writeBadRequest(c *echo.Context, msg string) error {
	return writeError(c, http.StatusBadRequest, "invalid_request", msg)
}

func writeBody(c *echo.Context, status int, contentType string, body []byte) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, contentType)
	res.WriteHeader(status)
	_, err := res.Write(body)
	return err
}

func writeJSON(c *echo.Context, status int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return writeBody(c, status, echo.MIMEApplicationJSON, b)
}

func boolParam(c *echo.Context, name string) (bool, error) {
	q := strings.TrimSpace(c.QueryParam(name))
	if q == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(q)
	if err != nil {
		return false, newInvalidRequest(name + " must be a boolean")
	}
	return v, nil
}
