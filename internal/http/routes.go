package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "recruit-timeline.com/recruit-timeline/internal/http/middlewares"
)

func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	e.POST("/users/:id/timeline/generate", h.GenerateTimeline)
	e.GET("/users/:id/timeline", h.GetTimeline)
	e.POST("/users/:id/events", h.TrackEvent)
	e.GET("/users/:id/notifications", h.ListNotifications)
	e.PATCH("/task-instances/:id/status", h.UpdateTaskStatus)
}
