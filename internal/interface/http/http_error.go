package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/unicafe/internal/domain/menu"
)

// HTTPError captures the metadata required to serialize an error response consistently.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewHTTPError is a helper to build an HTTPError instance.
func NewHTTPError(status int, code, message string, err error) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message, Err: err}
}

var kindStatus = map[menu.Kind]int{
	menu.KindNoSuchRestaurant: http.StatusNotFound,
	menu.KindNoFoodToday:      http.StatusNotFound,
	menu.KindBadStatus:        http.StatusBadGateway,
	menu.KindDecode:           http.StatusBadGateway,
	menu.KindTransport:        http.StatusServiceUnavailable,
}

// resolveHTTPError picks the response for any error a handler recorded.
// Explicit *HTTPError values win, then menu kinds, then a generic 500.
func resolveHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	kind := menu.KindOf(err)
	if status, ok := kindStatus[kind]; ok {
		return NewHTTPError(status, string(kind), err.Error(), err)
	}
	return NewHTTPError(http.StatusInternalServerError, "internal_error", "something went wrong", err)
}

// abortWithError records err for errorHandlingMiddleware and stops the chain.
func abortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}
