// Package api defines the response envelope shared by every endpoint.
// StatusCode is a stringified HTTP status ("200", "404", ...); the
// dashboard frontend compares it both as a string and as a number, so
// the wire shape must not change.
package api

import (
	"net/http"
	"strconv"
)

type Response struct {
	StatusCode string   `json:"statusCode"`
	Message    string   `json:"message,omitempty"`
	Data       any      `json:"data,omitempty"`
	Error      []string `json:"error,omitempty"`
}

// Code parses the stringified status numerically. Zero means the
// envelope is malformed.
func (r *Response) Code() int {
	n, err := strconv.Atoi(r.StatusCode)
	if err != nil {
		return 0
	}
	return n
}

func status(code int) string {
	return strconv.Itoa(code)
}

func OK(message string, data any) *Response {
	return &Response{StatusCode: status(http.StatusOK), Message: message, Data: data}
}

func NotFound(message string) *Response {
	return &Response{StatusCode: status(http.StatusNotFound), Message: message}
}

func BadRequest(message string) *Response {
	return &Response{StatusCode: status(http.StatusBadRequest), Message: message}
}

func Unauthorized(message string) *Response {
	return &Response{StatusCode: status(http.StatusUnauthorized), Message: message}
}

func Conflict(message string, errs ...string) *Response {
	return &Response{StatusCode: status(http.StatusConflict), Message: message, Error: errs}
}

// ServerError reports a persistence failure. The wrapped error text is
// the message; callers get no retry and no further detail.
func ServerError(err error) *Response {
	msg := "internal server error"
	if err != nil {
		msg = err.Error()
	}
	return &Response{StatusCode: status(http.StatusInternalServerError), Message: msg}
}
