package dto

import (
	"time"

	"github.com/mvaldes-dev/portfolio-api/internal/models"
)

// StatusCheckRequest is the payload for recording a liveness ping.
type StatusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required,max=120"`
}

// StatusCheckResponse echoes a recorded status check back to the caller.
type StatusCheckResponse struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewStatusCheckResponse converts a model into a DTO.
func NewStatusCheckResponse(check models.StatusCheck) StatusCheckResponse {
	return StatusCheckResponse{
		ID:         check.ID,
		ClientName: check.ClientName,
		Timestamp:  check.Timestamp,
	}
}

// NewStatusCheckResponseSlice converts a slice of models into DTOs.
func NewStatusCheckResponseSlice(checks []models.StatusCheck) []StatusCheckResponse {
	out := make([]StatusCheckResponse, 0, len(checks))
	for _, check := range checks {
		out = append(out, NewStatusCheckResponse(check))
	}
	return out
}
