package dto

import (
	"fmt"
	"time"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

const DateFormat = "2006-01-02"

type RecurrenceRuleRequest struct {
	Frequency string   `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	Interval  int      `json:"interval"`
	Count     int      `json:"count"`
	Until     string   `json:"until"`
	Weekdays  []string `json:"weekdays"`
}

type CreateSlotRequest struct {
	Name           string `json:"name" binding:"required"`
	Kind           string `json:"kind" binding:"omitempty,oneof=regular waitlist"`
	Capacity       int    `json:"capacity"`
	OccurrenceDate string `json:"occurrence_date"`
}

type CreateEventRequest struct {
	Title       string                 `json:"title" binding:"required"`
	Description string                 `json:"description"`
	StartDate   string                 `json:"start_date" binding:"required"`
	Recurrence  *RecurrenceRuleRequest `json:"recurrence"`
	Slots       []CreateSlotRequest    `json:"slots" binding:"required,min=1,dive"`
}

type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" binding:"omitempty,oneof=open closed"`
}

type UpdateSlotCapacityRequest struct {
	Capacity int `json:"capacity" binding:"required,gt=0"`
}

type SignupRequest struct {
	SlotTemplateID string `json:"slot_template_id" binding:"required,uuid"`
	OccurrenceDate string `json:"occurrence_date"`
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
}

type CancelByEmailRequest struct {
	Email         string `json:"email" binding:"required,email"`
	ReservationID string `json:"reservation_id" binding:"omitempty,uuid"`
}

type UpdateReservationRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type PreviewOccurrencesRequest struct {
	StartDate  string                 `json:"start_date" binding:"required"`
	Recurrence *RecurrenceRuleRequest `json:"recurrence"`
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday,
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
}

// ToRecurrenceRule converts the wire rule into the domain representation.
func ToRecurrenceRule(req *RecurrenceRuleRequest) (*domain.RecurrenceRule, error) {
	if req == nil {
		return nil, nil
	}

	rule := &domain.RecurrenceRule{
		Frequency: domain.Frequency(req.Frequency),
		Interval:  req.Interval,
		Count:     req.Count,
	}

	if req.Until != "" {
		until, err := ParseDate(req.Until)
		if err != nil {
			return nil, err
		}
		rule.Until = &until
	}

	for _, name := range req.Weekdays {
		wd, ok := weekdayNames[name]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", name)
		}
		rule.Weekdays = append(rule.Weekdays, wd)
	}

	return rule, nil
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

func ParseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
