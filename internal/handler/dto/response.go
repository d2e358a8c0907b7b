package dto

import (
	"time"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

type RecurrenceRuleResponse struct {
	Frequency string   `json:"frequency"`
	Interval  int      `json:"interval"`
	Count     int      `json:"count,omitempty"`
	Until     string   `json:"until,omitempty"`
	Weekdays  []string `json:"weekdays,omitempty"`
}

type EventResponse struct {
	ID          string                  `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	StartDate   string                  `json:"start_date"`
	Status      string                  `json:"status"`
	Recurrence  *RecurrenceRuleResponse `json:"recurrence,omitempty"`
	CreatedAt   string                  `json:"created_at"`
}

type SlotAvailabilityResponse struct {
	SlotInstanceID string `json:"slot_instance_id"`
	SlotTemplateID string `json:"slot_template_id"`
	Name           string `json:"name"`
	Kind           string `json:"kind"`
	OccurrenceDate string `json:"occurrence_date"`
	Capacity       int    `json:"capacity"`
	Confirmed      int    `json:"confirmed"`
	Available      int    `json:"available"`
	Waitlisted     int    `json:"waitlisted"`
}

type EventDetailsResponse struct {
	Event       EventResponse              `json:"event"`
	Occurrences []string                   `json:"occurrences"`
	Slots       []SlotAvailabilityResponse `json:"slots"`
}

type SignupResponse struct {
	ReservationID string `json:"reservation_id"`
	Status        string `json:"status"`
	Position      int    `json:"position,omitempty"`
	ManageToken   string `json:"manage_token"`
}

type ReservationResponse struct {
	ID             string `json:"id"`
	EventID        string `json:"event_id"`
	EventTitle     string `json:"event_title"`
	SlotName       string `json:"slot_name"`
	OccurrenceDate string `json:"occurrence_date"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone,omitempty"`
	Status         string `json:"status"`
	Position       int    `json:"position,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type RosterEntryResponse struct {
	ID             string `json:"id"`
	SlotInstanceID string `json:"slot_instance_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
}

type RemovalResponse struct {
	Removed  bool `json:"removed"`
	Promoted bool `json:"promoted"`
}

type OccurrencesResponse struct {
	Dates []string `json:"dates"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		StartDate:   e.StartDate.Format(DateFormat),
		Status:      string(e.Status),
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
	if e.Recurrence != nil {
		resp.Recurrence = toRecurrenceResponse(e.Recurrence)
	}
	return resp
}

func toRecurrenceResponse(rule *domain.RecurrenceRule) *RecurrenceRuleResponse {
	resp := &RecurrenceRuleResponse{
		Frequency: string(rule.Frequency),
		Interval:  rule.Interval,
		Count:     rule.Count,
	}
	if rule.Until != nil {
		resp.Until = rule.Until.Format(DateFormat)
	}
	for _, wd := range rule.Weekdays {
		resp.Weekdays = append(resp.Weekdays, weekdayName(wd))
	}
	return resp
}

func weekdayName(wd time.Weekday) string {
	for name, w := range weekdayNames {
		if w == wd {
			return name
		}
	}
	return ""
}

func ToEventDetailsResponse(d *domain.EventDetails) EventDetailsResponse {
	occurrences := make([]string, 0, len(d.Occurrences))
	for _, occ := range d.Occurrences {
		occurrences = append(occurrences, occ.Format(DateFormat))
	}

	slots := make([]SlotAvailabilityResponse, 0, len(d.Slots))
	for _, s := range d.Slots {
		slots = append(slots, SlotAvailabilityResponse{
			SlotInstanceID: s.Instance.ID,
			SlotTemplateID: s.Instance.SlotTemplateID,
			Name:           s.Name,
			Kind:           string(s.Kind),
			OccurrenceDate: s.Instance.OccurrenceDate.Format(DateFormat),
			Capacity:       s.Instance.Capacity,
			Confirmed:      s.Confirmed,
			Available:      s.Available,
			Waitlisted:     s.Waitlisted,
		})
	}

	return EventDetailsResponse{
		Event:       ToEventResponse(&d.Event),
		Occurrences: occurrences,
		Slots:       slots,
	}
}

func ToSignupResponse(d *domain.ReservationDetails) SignupResponse {
	return SignupResponse{
		ReservationID: d.Reservation.ID,
		Status:        string(d.Reservation.Status),
		Position:      d.Reservation.Position,
		ManageToken:   d.Reservation.ManageToken,
	}
}

func ToReservationResponse(d *domain.ReservationDetails) ReservationResponse {
	return ReservationResponse{
		ID:             d.Reservation.ID,
		EventID:        d.EventID,
		EventTitle:     d.EventTitle,
		SlotName:       d.SlotName,
		OccurrenceDate: d.OccurrenceDate.Format(DateFormat),
		Name:           d.Reservation.Name,
		Email:          d.Reservation.Email,
		Phone:          d.Reservation.Phone,
		Status:         string(d.Reservation.Status),
		Position:       d.Reservation.Position,
		CreatedAt:      d.Reservation.CreatedAt.Format(time.RFC3339),
	}
}

func ToRosterEntryResponse(r *domain.Reservation) RosterEntryResponse {
	return RosterEntryResponse{
		ID:             r.ID,
		SlotInstanceID: r.SlotInstanceID,
		Name:           r.Name,
		Email:          r.Email,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

func ToRemovalResponse(r *domain.RemovalResult) RemovalResponse {
	return RemovalResponse{Removed: r.Removed, Promoted: r.Promoted}
}

func ToOccurrencesResponse(dates []time.Time) OccurrencesResponse {
	resp := OccurrencesResponse{Dates: make([]string, 0, len(dates))}
	for _, d := range dates {
		resp.Dates = append(resp.Dates, d.Format(DateFormat))
	}
	return resp
}
