package errors

import "net/http"

var ErrDuplicateInstance = &Exception{
	Message:    "task instance already exists for this definition",
	StatusCode: http.StatusConflict,
}
