package domain

import "time"

// EventType categorizes a planning event.
type EventType string

const (
	EventMedical        EventType = "medical"
	EventEducational    EventType = "educatif"
	EventSocial         EventType = "social"
	EventAdministrative EventType = "administratif"
)

// EventStatus is the lifecycle state of a planning event.
type EventStatus string

const (
	EventPlanned   EventStatus = "planifie"
	EventOngoing   EventStatus = "en_cours"
	EventDone      EventStatus = "termine"
	EventCancelled EventStatus = "annule"
)

// ScheduleEvent is a planned activity (consultation, outing, meeting).
type ScheduleEvent struct {
	ID           string      `json:"id" bson:"_id,omitempty"`
	Title        string      `json:"title" bson:"title"`
	Description  string      `json:"description,omitempty" bson:"description,omitempty"`
	StartsAt     time.Time   `json:"starts_at" bson:"starts_at"`
	EndsAt       time.Time   `json:"ends_at" bson:"ends_at"`
	Type         EventType   `json:"type" bson:"type"`
	Responsible  string      `json:"responsible" bson:"responsible"`
	Participants []string    `json:"participants,omitempty" bson:"participants,omitempty"`
	Status       EventStatus `json:"status" bson:"status"`
	CreatedAt    time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" bson:"updated_at"`
}
