package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"recruit-timeline.com/recruit-timeline/internal/constants"
	dto "recruit-timeline.com/recruit-timeline/internal/data_models"
	apperrors "recruit-timeline.com/recruit-timeline/internal/errors"
	"recruit-timeline.com/recruit-timeline/internal/http/validators"
	"recruit-timeline.com/recruit-timeline/internal/queue"
	"recruit-timeline.com/recruit-timeline/internal/services"
)

type Handler struct {
	timelineService *services.TimelineService
	locks           queue.LockManager
}

func NewHandler(timelineService *services.TimelineService, locks queue.LockManager) *Handler {
	return &Handler{
		timelineService: timelineService,
		locks:           locks,
	}
}

// GenerateTimeline runs one generation cycle under the per-user lock.
func (h *Handler) GenerateTimeline(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return httpError(apperrors.ErrUserIDRequired)
	}

	ctx := c.Request().Context()

	acquired, err := h.locks.AcquireUserLock(ctx, userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to acquire generation lock")
	}
	if !acquired {
		return httpError(apperrors.ErrGenerationInProgress)
	}
	defer func() {
		_ = h.locks.ReleaseUserLock(ctx, userID)
	}()

	result, err := h.timelineService.GenerateUserTimeline(ctx, userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, result)
}

func (h *Handler) GetTimeline(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return httpError(apperrors.ErrUserIDRequired)
	}

	timeline, tasks, err := h.timelineService.GetTimeline(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, dto.TimelineResponse{
		Timeline: timeline,
		Count:    len(tasks),
		Tasks:    tasks,
	})
}

func (h *Handler) TrackEvent(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return httpError(apperrors.ErrUserIDRequired)
	}

	var req dto.TrackEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateTrackEventRequest(&req); err != nil {
		return err
	}

	err := h.timelineService.TrackProgressEvent(c.Request().Context(), userID, req.EventType, req.Data, req.TaskInstanceID)
	if err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusAccepted)
}

func (h *Handler) UpdateTaskStatus(c echo.Context) error {
	instanceID := c.Param("id")
	if instanceID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task instance id is required")
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskStatusRequest(&req); err != nil {
		return err
	}

	instance, err := h.timelineService.UpdateTaskStatus(c.Request().Context(), instanceID, constants.TaskStatus(req.Status))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, instance)
}

func (h *Handler) ListNotifications(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return httpError(apperrors.ErrUserIDRequired)
	}

	notifications, err := h.timelineService.ListNotifications(c.Request().Context(), userID)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count":         len(notifications),
		"notifications": notifications,
	})
}

func httpError(err error) error {
	var appErr *apperrors.Exception
	if errors.As(err, &appErr) {
		return echo.NewHTTPError(apperrors.StatusCode(err), appErr.Message)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
}
