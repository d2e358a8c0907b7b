package domain

import (
	"strings"
	"time"
)

type ReservationStatus string

const (
	ReservationStatusConfirmed  ReservationStatus = "confirmed"
	ReservationStatusWaitlisted ReservationStatus = "waitlisted"
	ReservationStatusCancelled  ReservationStatus = "cancelled"
)

var ActiveStatuses = []ReservationStatus{ReservationStatusConfirmed, ReservationStatusWaitlisted}

type Reservation struct {
	ID             string            `json:"id"`
	SlotInstanceID string            `json:"slot_instance_id"`
	Name           string            `json:"name"`
	Email          string            `json:"email"`
	Phone          string            `json:"phone,omitempty"`
	Status         ReservationStatus `json:"status"`
	// Position is the waitlist rank derived from CreatedAt ordering.
	// Zero for confirmed reservations. Never persisted.
	Position    int       `json:"position,omitempty"`
	ManageToken string    `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReservationDetails joins a reservation with the event and slot context
// needed for self-service views and notifications.
type ReservationDetails struct {
	Reservation    Reservation `json:"reservation"`
	EventID        string      `json:"event_id"`
	EventTitle     string      `json:"event_title"`
	SlotName       string      `json:"slot_name"`
	OccurrenceDate time.Time   `json:"occurrence_date"`
}

type SignupInput struct {
	EventID        string
	SlotTemplateID string
	OccurrenceDate *time.Time
	Name           string
	Email          string
	Phone          string
}

type CancelByEmailInput struct {
	EventID       string
	Email         string
	ReservationID string // disambiguates when the email has several active reservations
}

type RemovalResult struct {
	Removed  bool `json:"removed"`
	Promoted bool `json:"promoted"`
}

// NormalizeEmail trims and lowercases an email address. All identity
// comparison and storage goes through this.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
