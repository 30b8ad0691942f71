package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperr "github.com/KirkDiggler/nft-game-bot/internal/errors"
)

const requestIDKey = "request_id"

// Response is the envelope every endpoint answers with
type Response struct {
	Success   bool      `json:"success"`
	Data      any       `json:"data,omitempty"`
	Error     *Error    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// Error is the error half of the envelope
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, &Response{
		Success:   true,
		Data:      data,
		Timestamp: time.Now().UTC(),
		RequestID: c.GetString(requestIDKey),
	})
}

func respondError(c *gin.Context, err error) {
	code := apperr.GetCode(err)
	message := err.Error()

	status := statusFor(code)
	if status == http.StatusInternalServerError {
		// internal details stay in the log
		message = "internal error"
	}

	c.JSON(status, &Response{
		Success: false,
		Error: &Error{
			Code:    string(code),
			Message: message,
		},
		Timestamp: time.Now().UTC(),
		RequestID: c.GetString(requestIDKey),
	})
}

func statusFor(code apperr.Code) int {
	switch code {
	case apperr.CodeInvalidArgument:
		return http.StatusBadRequest
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeOutOfRange:
		return http.StatusUnprocessableEntity
	case apperr.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
