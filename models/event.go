package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event is a closed set of participants sharing expenses (the "trip" or
// "household" unit everything else hangs off).
type Event struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string        `gorm:"not null;size:100" json:"name"`
	Currency     string        `gorm:"default:EUR;size:3" json:"currency"`
	CreatedBy    uuid.UUID     `gorm:"type:uuid" json:"created_by"`
	Creator      User          `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Participants []Participant `gorm:"foreignKey:EventID" json:"participants,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Participant is one person inside an event. Position is the participant's
// index in the event's ordered list; equal-split remainder cents are handed
// out by this position, so it must stay stable once assigned. A participant
// may optionally be linked to a registered user for notifications.
type Participant struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	EventID   uuid.UUID  `gorm:"type:uuid;index" json:"event_id"`
	UserID    *uuid.UUID `gorm:"type:uuid" json:"user_id,omitempty"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
	Name      string     `gorm:"not null;size:100" json:"name"`
	Position  int        `gorm:"not null" json:"position"`
	CreatedAt time.Time  `json:"created_at"`
}

func (p *Participant) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Request structs
type CreateEventRequest struct {
	Name         string   `json:"name" binding:"required"`
	Currency     string   `json:"currency"`
	Participants []string `json:"participants"` // participant names, in split order
}

type AddParticipantRequest struct {
	Name   string `json:"name" binding:"required"`
	UserID string `json:"user_id"` // optional link to a registered user
}

// Response structs
type EventResponse struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Currency     string        `json:"currency"`
	CreatedBy    uuid.UUID     `json:"created_by"`
	Participants []Participant `json:"participants"`
	CreatedAt    time.Time     `json:"created_at"`
}
