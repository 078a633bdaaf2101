package httperr

import (
	"fmt"
	"net/http"
)

// Error is the API error shape rendered by the centralized handler.
type Error struct {
	Status int      `json:"status"`
	Title  string   `json:"title"`
	Errors []string `json:"errors"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d %s", e.Status, e.Title)
}

func New(status int, title string, messages ...string) *Error {
	return &Error{Status: status, Title: title, Errors: messages}
}

// Validation is a 400 with field-level messages.
func Validation(messages ...string) *Error {
	return New(http.StatusBadRequest, "Validation error", messages...)
}

func Unauthorized(title string, messages ...string) *Error {
	return New(http.StatusUnauthorized, title, messages...)
}

func NotFound(title string, messages ...string) *Error {
	return New(http.StatusNotFound, title, messages...)
}

func Conflict(title string, messages ...string) *Error {
	return New(http.StatusConflict, title, messages...)
}

func UserNotFound(id uint) *Error {
	return NotFound("User not found.", fmt.Sprintf("User with id of %d could not be found.", id))
}
