package errors

import "net/http"

var ErrGenerationInProgress = &Exception{
	Message:    "timeline generation already in progress for this user",
	StatusCode: http.StatusConflict,
}
