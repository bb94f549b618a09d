package models

import "time"

// StatusCheck records a liveness ping from a named client.
type StatusCheck struct {
	ID         string    `gorm:"size:36;primaryKey" json:"id"`
	ClientName string    `gorm:"size:128;not null" json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
