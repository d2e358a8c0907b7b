package domain

import "time"

type EventStatus string

const (
	EventStatusOpen   EventStatus = "open"
	EventStatusClosed EventStatus = "closed"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// RecurrenceRule describes how an event repeats. Count takes precedence over
// Until when both are set.
type RecurrenceRule struct {
	Frequency Frequency      `json:"frequency"`
	Interval  int            `json:"interval"`
	Count     int            `json:"count,omitempty"`
	Until     *time.Time     `json:"until,omitempty"`
	Weekdays  []time.Weekday `json:"weekdays,omitempty"`
}

type Event struct {
	ID          string          `json:"id"`
	OrganizerID string          `json:"organizer_id,omitempty"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	StartDate   time.Time       `json:"start_date"`
	Status      EventStatus     `json:"status"`
	Recurrence  *RecurrenceRule `json:"recurrence,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type SlotKind string

const (
	SlotKindRegular  SlotKind = "regular"
	SlotKindWaitlist SlotKind = "waitlist"
)

// SlotTemplate is an organizer-defined signup category. A template with a
// nil OccurrenceDate applies to every occurrence of the event; a template
// with an exact date applies only to that occurrence.
type SlotTemplate struct {
	ID             string     `json:"id"`
	EventID        string     `json:"event_id"`
	Name           string     `json:"name"`
	Kind           SlotKind   `json:"kind"`
	Capacity       int        `json:"capacity"`
	OccurrenceDate *time.Time `json:"occurrence_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// SlotInstance is one template materialized for one occurrence date. It is
// the unit of capacity accounting; instances of the same template on
// different dates share nothing.
type SlotInstance struct {
	ID             string    `json:"id"`
	EventID        string    `json:"event_id"`
	SlotTemplateID string    `json:"slot_template_id"`
	OccurrenceDate time.Time `json:"occurrence_date"`
	Capacity       int       `json:"capacity"`
}

// SlotAvailability is a read projection over one slot instance. Available is
// always capacity minus the confirmed count, computed at query time.
type SlotAvailability struct {
	Instance   SlotInstance `json:"instance"`
	Name       string       `json:"name"`
	Kind       SlotKind     `json:"kind"`
	Confirmed  int          `json:"confirmed"`
	Available  int          `json:"available"`
	Waitlisted int          `json:"waitlisted"`
}

type EventDetails struct {
	Event       Event              `json:"event"`
	Occurrences []time.Time        `json:"occurrences"`
	Slots       []SlotAvailability `json:"slots"`
}

type CreateSlotInput struct {
	Name           string
	Kind           SlotKind
	Capacity       int
	OccurrenceDate *time.Time
}

type CreateEventInput struct {
	OrganizerID string
	Title       string
	Description string
	StartDate   time.Time
	Recurrence  *RecurrenceRule
	Slots       []CreateSlotInput
}

type UpdateEventInput struct {
	Title       *string
	Description *string
	Status      *EventStatus
}
