package dto

import (
	"time"

	"github.com/mvaldes-dev/portfolio-api/internal/models"
)

// ContactRequest defines the expected payload for the contact form endpoint.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=120"`
	Email   string `json:"email" validate:"required,email,max=160"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

// ContactSubmitResponse is returned to the caller once a submission is stored.
// Notification delivery never changes its contents.
type ContactSubmitResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

// ContactMessageResponse is the serialized representation of a stored message.
type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// NewContactMessageResponse converts a model into a DTO.
func NewContactMessageResponse(message models.ContactMessage) ContactMessageResponse {
	return ContactMessageResponse{
		ID:        message.ID,
		Name:      message.Name,
		Email:     message.Email,
		Message:   message.Message,
		Status:    message.Status,
		CreatedAt: message.CreatedAt,
	}
}

// NewContactMessageResponseSlice converts a slice of models into DTOs.
func NewContactMessageResponseSlice(messages []models.ContactMessage) []ContactMessageResponse {
	out := make([]ContactMessageResponse, 0, len(messages))
	for _, message := range messages {
		out = append(out, NewContactMessageResponse(message))
	}
	return out
}
