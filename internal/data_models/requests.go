package dto

type TrackEventRequest struct {
	EventType      string  `json:"event_type"`
	Data           string  `json:"data"`
	TaskInstanceID *string `json:"task_instance_id"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}
