package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"recruit-timeline.com/recruit-timeline/internal/constants"
	dto "recruit-timeline.com/recruit-timeline/internal/data_models"
)

func ValidateTrackEventRequest(r *dto.TrackEventRequest) error {
	if r.EventType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "event_type is required")
	}
	return nil
}

var allowedStatuses = map[string]struct{}{
	string(constants.StatusPending):    {},
	string(constants.StatusInProgress): {},
	string(constants.StatusComplete):   {},
	string(constants.StatusSkipped):    {},
	string(constants.StatusBlocked):    {},
}

func ValidateUpdateTaskStatusRequest(r *dto.UpdateTaskStatusRequest) error {
	if r.Status == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "status is required")
	}
	if _, ok := allowedStatuses[r.Status]; !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
	}
	return nil
}
