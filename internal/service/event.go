package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/recurrence"
	"github.com/stpnv0/SlotBooker/internal/service/ports"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

// CreateEvent validates the input, materializes the occurrence dates and
// expands slot templates into per-occurrence slot instances. The repository
// persists all of it atomically.
func (s *EventService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if len(input.Slots) == 0 {
		return nil, fmt.Errorf("%w: at least one slot is required", domain.ErrValidation)
	}
	for _, slot := range input.Slots {
		if slot.Name == "" {
			return nil, fmt.Errorf("%w: slot name is required", domain.ErrValidation)
		}
		if slot.Kind != domain.SlotKindRegular && slot.Kind != domain.SlotKindWaitlist {
			return nil, fmt.Errorf("%w: unknown slot kind %q", domain.ErrValidation, slot.Kind)
		}
		if slot.Kind == domain.SlotKindRegular && slot.Capacity <= 0 {
			return nil, fmt.Errorf("%w: slot capacity must be positive", domain.ErrValidation)
		}
	}

	dates, err := recurrence.Generate(input.StartDate, input.Recurrence)
	if err != nil {
		return nil, fmt.Errorf("generate occurrences: %w", err)
	}

	for _, slot := range input.Slots {
		if slot.OccurrenceDate != nil && !occursOn(dates, *slot.OccurrenceDate) {
			return nil, fmt.Errorf("%w: slot %q date %s matches no occurrence",
				domain.ErrValidation, slot.Name, recurrence.ToDate(*slot.OccurrenceDate).Format(time.DateOnly))
		}
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		OrganizerID: input.OrganizerID,
		Title:       input.Title,
		Description: input.Description,
		StartDate:   recurrence.ToDate(input.StartDate),
		Status:      domain.EventStatusOpen,
		Recurrence:  input.Recurrence,
	}

	templates := make([]domain.SlotTemplate, 0, len(input.Slots))
	for _, slot := range input.Slots {
		templates = append(templates, domain.SlotTemplate{
			ID:             uuid.New().String(),
			EventID:        event.ID,
			Name:           slot.Name,
			Kind:           slot.Kind,
			Capacity:       slot.Capacity,
			OccurrenceDate: slot.OccurrenceDate,
		})
	}

	instances := recurrence.ExpandSlots(dates, templates, func() string { return uuid.New().String() })

	if err := s.repo.Create(ctx, event, templates, instances); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

// PreviewOccurrences materializes occurrence dates without persisting
// anything.
func (s *EventService) PreviewOccurrences(ctx context.Context, start time.Time, rule *domain.RecurrenceRule) ([]time.Time, error) {
	return recurrence.Generate(start, rule)
}

func (s *EventService) GetDetails(ctx context.Context, id string) (*domain.EventDetails, error) {
	return s.repo.GetDetails(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *EventService) Update(ctx context.Context, organizerID, id string, input domain.UpdateEventInput) error {
	if input.Status != nil && *input.Status != domain.EventStatusOpen && *input.Status != domain.EventStatusClosed {
		return fmt.Errorf("%w: unknown event status %q", domain.ErrValidation, *input.Status)
	}

	if err := s.authorize(ctx, organizerID, id); err != nil {
		return err
	}

	return s.repo.Update(ctx, id, input)
}

func (s *EventService) Delete(ctx context.Context, organizerID, id string) error {
	if err := s.authorize(ctx, organizerID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *EventService) DeleteOccurrence(ctx context.Context, organizerID, eventID string, date time.Time) error {
	if err := s.authorize(ctx, organizerID, eventID); err != nil {
		return err
	}
	return s.repo.DeleteOccurrence(ctx, eventID, recurrence.ToDate(date))
}

// UpdateSlotCapacity changes a slot template's capacity across all its
// instances. Lowering below the highest confirmed count of any instance is
// rejected: no demotion transition exists for confirmed reservations.
func (s *EventService) UpdateSlotCapacity(ctx context.Context, organizerID, eventID, templateID string, capacity int) error {
	if capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	if err := s.authorize(ctx, organizerID, eventID); err != nil {
		return err
	}

	tpl, err := s.repo.GetSlotTemplate(ctx, templateID)
	if err != nil {
		return fmt.Errorf("get slot template: %w", err)
	}
	if tpl.EventID != eventID {
		return domain.ErrSlotNotFound
	}

	confirmed, err := s.repo.MaxConfirmed(ctx, templateID)
	if err != nil {
		return fmt.Errorf("max confirmed: %w", err)
	}
	if capacity < confirmed {
		return fmt.Errorf("%w: %d confirmed", domain.ErrCapacityBelowConfirmed, confirmed)
	}

	return s.repo.UpdateSlotCapacity(ctx, templateID, capacity)
}

func occursOn(dates []time.Time, d time.Time) bool {
	day := recurrence.ToDate(d)
	for _, occ := range dates {
		if occ.Equal(day) {
			return true
		}
	}
	return false
}

// authorize checks event ownership when the event records an organizer.
// Events created without one accept any acting organizer.
func (s *EventService) authorize(ctx context.Context, organizerID, eventID string) error {
	event, err := s.repo.GetByID(ctx, eventID)
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}

	if event.OrganizerID != "" && event.OrganizerID != organizerID {
		return domain.ErrNotOrganizer
	}

	return nil
}
