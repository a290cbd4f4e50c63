package errors

import "net/http"

var ErrEventTypeRequired = &Exception{
	Message:    "event type is required",
	StatusCode: http.StatusBadRequest,
}
