package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/edulearn/ai-teacher-api/pkg/apperr"
)

type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

// Success writes a success envelope with the given status.
func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
	})
}

// Error writes an error envelope with the given status.
func Error(ctx *gin.Context, status int, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	ctx.JSON(status, APIResponse[any]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     details,
	})
}

// Fail maps a domain error to its HTTP status and writes the envelope.
// Internal errors get a generic message; the original error never crosses
// the boundary.
func Fail(ctx *gin.Context, err error) {
	kind := apperr.KindOf(err)
	var details interface{}
	if d := apperr.DetailsOf(err); len(d) > 0 {
		details = d
	}
	Error(ctx, apperr.HTTPStatus(kind), apperr.MessageOf(err), details)
}

// Abort writes an error envelope and aborts the request chain. For use in
// middleware.
func Abort(ctx *gin.Context, status int, message string, details interface{}) {
	Error(ctx, status, message, details)
	ctx.Abort()
}
