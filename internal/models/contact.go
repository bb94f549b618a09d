package models

import "time"

// MessageStatusNew is the lifecycle tag assigned to every freshly stored message.
// Future consumers (an admin tool) own any transitions away from it.
const MessageStatusNew = "new"

// ContactMessage is a validated contact-form submission persisted for the site owner.
type ContactMessage struct {
	ID        string    `gorm:"size:36;primaryKey" json:"id"`
	Name      string    `gorm:"size:128;not null" json:"name"`
	Email     string    `gorm:"size:160;not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Status    string    `gorm:"size:32;not null;default:new" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
