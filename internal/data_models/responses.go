package dto

import (
	model "recruit-timeline.com/recruit-timeline/internal/models"
)

type TimelineResponse struct {
	Timeline *model.UserTimeline  `json:"timeline"`
	Count    int                  `json:"count"`
	Tasks    []model.TaskInstance `json:"tasks"`
}
