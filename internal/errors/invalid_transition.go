package errors

import "net/http"

var ErrInvalidStatusTransition = &Exception{
	Message:    "invalid task status transition",
	StatusCode: http.StatusConflict,
}
