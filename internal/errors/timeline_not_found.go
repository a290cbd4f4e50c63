package errors

import "net/http"

var ErrTimelineNotFound = &Exception{
	Message:    "timeline not found",
	StatusCode: http.StatusNotFound,
}
