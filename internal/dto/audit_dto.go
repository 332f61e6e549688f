package dto

import "github.com/google/uuid"

// ContentEventMessage is the payload published on the in-process bus
// whenever a content record is created, updated or deleted.
type ContentEventMessage struct {
	EventType string    `json:"event_type"`
	ContentId uuid.UUID `json:"content_id"`
	UserId    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
}
