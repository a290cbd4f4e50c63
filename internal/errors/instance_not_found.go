package errors

import "net/http"

var ErrInstanceNotFound = &Exception{
	Message:    "task instance not found",
	StatusCode: http.StatusNotFound,
}
