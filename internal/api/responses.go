package api

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"ok"`
}

type HealthResponse struct {
	Status     string `json:"status" example:"ok"`
	Database   string `json:"database" example:"ok"`
	EventQueue int64  `json:"event_queue" example:"0"`
}
