package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/recurrence"
	"github.com/stpnv0/SlotBooker/internal/service/ports"
	"github.com/stpnv0/SlotBooker/internal/token"
)

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	eventRepo       ports.EventRepo
	notifier        ports.ReservationNotifier
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	eventRepo ports.EventRepo,
	notifier ports.ReservationNotifier,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		eventRepo:       eventRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// SignUp admits a participant into a slot instance: confirmed while capacity
// remains, waitlisted after. The capacity decision itself happens atomically
// in the repository; this layer resolves the slot instance, guards against
// duplicate identities and mints the manage token.
func (s *ReservationService) SignUp(ctx context.Context, input domain.SignupInput) (*domain.ReservationDetails, error) {
	email := domain.NormalizeEmail(input.Email)
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.Status == domain.EventStatusClosed {
		return nil, domain.ErrEventClosed
	}

	tpl, err := s.eventRepo.GetSlotTemplate(ctx, input.SlotTemplateID)
	if err != nil {
		return nil, fmt.Errorf("get slot template: %w", err)
	}
	if tpl.EventID != event.ID {
		return nil, domain.ErrSlotNotFound
	}

	date, err := resolveOccurrenceDate(event, tpl, input.OccurrenceDate)
	if err != nil {
		return nil, err
	}

	instance, err := s.eventRepo.ResolveSlotInstance(ctx, tpl.ID, date)
	if err != nil {
		return nil, fmt.Errorf("resolve slot instance: %w", err)
	}

	// Duplicate guard. The partial unique index backstops the race between
	// this check and the insert.
	existing, err := s.reservationRepo.GetActive(ctx, instance.ID, email)
	if err != nil && !errors.Is(err, domain.ErrReservationNotFound) {
		return nil, fmt.Errorf("check active reservation: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w (status: %s)", domain.ErrDuplicateSignup, existing.Status)
	}

	manageToken, err := token.New()
	if err != nil {
		return nil, fmt.Errorf("issue manage token: %w", err)
	}

	now := time.Now().UTC()
	res := &domain.Reservation{
		ID:             uuid.New().String(),
		SlotInstanceID: instance.ID,
		Name:           input.Name,
		Email:          email,
		Phone:          input.Phone,
		ManageToken:    manageToken,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err = s.reservationRepo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", res.ID),
		logger.String("slot_instance_id", instance.ID),
		logger.String("status", string(res.Status)),
		logger.Int("position", res.Position),
	)

	details := &domain.ReservationDetails{
		Reservation:    *res,
		EventID:        event.ID,
		EventTitle:     event.Title,
		SlotName:       tpl.Name,
		OccurrenceDate: instance.OccurrenceDate,
	}

	if res.Status == domain.ReservationStatusConfirmed {
		go s.notifier.NotifyReservationConfirmed(context.WithoutCancel(ctx), details)
	} else {
		go s.notifier.NotifyReservationWaitlisted(context.WithoutCancel(ctx), details)
	}

	return details, nil
}

func (s *ReservationService) GetByToken(ctx context.Context, manageToken string) (*domain.ReservationDetails, error) {
	return s.reservationRepo.GetDetailsByToken(ctx, manageToken)
}

func (s *ReservationService) UpdateContact(ctx context.Context, manageToken, name, phone string) (*domain.ReservationDetails, error) {
	current, err := s.reservationRepo.GetDetailsByToken(ctx, manageToken)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	if name == "" {
		name = current.Reservation.Name
	}
	if phone == "" {
		phone = current.Reservation.Phone
	}

	if err = s.reservationRepo.UpdateContact(ctx, manageToken, name, phone); err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}

	return s.reservationRepo.GetDetailsByToken(ctx, manageToken)
}

// CancelByToken removes a reservation via its manage token. Cancelling a
// confirmed reservation frees a spot and triggers waitlist promotion.
func (s *ReservationService) CancelByToken(ctx context.Context, manageToken string) (*domain.RemovalResult, error) {
	cancelled, err := s.reservationRepo.CancelByToken(ctx, manageToken)
	if err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	return s.afterRemoval(ctx, cancelled), nil
}

// CancelByEmail removes a participant's reservation identified by event and
// email. When the email holds several active reservations on the event, the
// caller must disambiguate with a reservation id.
func (s *ReservationService) CancelByEmail(ctx context.Context, input domain.CancelByEmailInput) (*domain.RemovalResult, error) {
	email := domain.NormalizeEmail(input.Email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	matches, err := s.reservationRepo.ListActiveByEventAndEmail(ctx, input.EventID, email)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	var target *domain.Reservation
	switch {
	case len(matches) == 0:
		return nil, domain.ErrReservationNotFound
	case input.ReservationID != "":
		for _, m := range matches {
			if m.ID == input.ReservationID {
				target = m
				break
			}
		}
		if target == nil {
			return nil, domain.ErrReservationNotFound
		}
	case len(matches) > 1:
		return nil, domain.ErrAmbiguousIdentity
	default:
		target = matches[0]
	}

	cancelled, err := s.reservationRepo.CancelByID(ctx, target.ID)
	if err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	return s.afterRemoval(ctx, cancelled), nil
}

// RemoveByOrganizer removes any reservation of the event on behalf of the
// acting organizer.
func (s *ReservationService) RemoveByOrganizer(ctx context.Context, organizerID, eventID, reservationID string) (*domain.RemovalResult, error) {
	if organizerID == "" {
		return nil, fmt.Errorf("%w: organizer id is required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OrganizerID != "" && event.OrganizerID != organizerID {
		return nil, domain.ErrNotOrganizer
	}

	details, err := s.reservationRepo.GetDetailsByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if details.EventID != eventID {
		return nil, domain.ErrReservationNotFound
	}

	cancelled, err := s.reservationRepo.CancelByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("cancel reservation: %w", err)
	}

	s.logger.Info("reservation removed by organizer",
		logger.String("reservation_id", reservationID),
		logger.String("event_id", eventID),
		logger.String("organizer_id", organizerID),
	)

	return s.afterRemoval(ctx, cancelled), nil
}

func (s *ReservationService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByEvent(ctx, eventID)
}

// PromoteEligible is the periodic safety net: it promotes waitlisted
// reservations on every slot instance with a free confirmed spot. Inline
// promotion after a cancel normally keeps this a no-op.
func (s *ReservationService) PromoteEligible(ctx context.Context) ([]*domain.Reservation, error) {
	slotIDs, err := s.reservationRepo.ListPromotableSlots(ctx)
	if err != nil {
		return nil, fmt.Errorf("list promotable slots: %w", err)
	}

	var promoted []*domain.Reservation
	for _, slotID := range slotIDs {
		for {
			p := s.promote(ctx, slotID)
			if p == nil {
				break
			}
			promoted = append(promoted, p)
		}
	}

	return promoted, nil
}

// afterRemoval runs promotion when a confirmed spot freed up. Promotion
// failures are logged, never surfaced: from the remover's point of view the
// removal already succeeded.
func (s *ReservationService) afterRemoval(ctx context.Context, cancelled *domain.Reservation) *domain.RemovalResult {
	result := &domain.RemovalResult{Removed: true}

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", cancelled.ID),
		logger.String("slot_instance_id", cancelled.SlotInstanceID),
		logger.String("was", string(cancelled.Status)),
	)

	if details, err := s.reservationRepo.GetDetailsByID(ctx, cancelled.ID); err == nil {
		go s.notifier.NotifyReservationCancelled(context.WithoutCancel(ctx), details)
	}

	if cancelled.Status != domain.ReservationStatusConfirmed {
		return result
	}

	if p := s.promote(ctx, cancelled.SlotInstanceID); p != nil {
		result.Promoted = true
	}

	return result
}

func (s *ReservationService) promote(ctx context.Context, slotInstanceID string) *domain.Reservation {
	promoted, err := s.reservationRepo.PromoteNext(ctx, slotInstanceID)
	if err != nil {
		s.logger.Error("waitlist promotion failed",
			logger.String("slot_instance_id", slotInstanceID),
			logger.String("error", err.Error()),
		)
		return nil
	}
	if promoted == nil {
		return nil
	}

	s.logger.Info("reservation promoted",
		logger.String("reservation_id", promoted.ID),
		logger.String("slot_instance_id", slotInstanceID),
	)

	details, err := s.reservationRepo.GetDetailsByID(ctx, promoted.ID)
	if err != nil {
		s.logger.Error("failed to load promoted reservation for notification",
			logger.String("reservation_id", promoted.ID),
			logger.String("error", err.Error()),
		)
		return promoted
	}

	go s.notifier.NotifyReservationPromoted(context.WithoutCancel(ctx), details)

	return promoted
}

// resolveOccurrenceDate picks the occurrence a signup targets. An explicitly
// supplied date must match the template's own date when the template is a
// one-off; recurring events require an explicit date for template-wide slots.
func resolveOccurrenceDate(event *domain.Event, tpl *domain.SlotTemplate, requested *time.Time) (time.Time, error) {
	if tpl.OccurrenceDate != nil {
		tplDate := recurrence.ToDate(*tpl.OccurrenceDate)
		if requested != nil && !recurrence.ToDate(*requested).Equal(tplDate) {
			return time.Time{}, fmt.Errorf("%w: occurrence date does not match slot date", domain.ErrValidation)
		}
		return tplDate, nil
	}

	if requested != nil {
		return recurrence.ToDate(*requested), nil
	}

	if event.Recurrence != nil {
		return time.Time{}, fmt.Errorf("%w: occurrence date is required for recurring events", domain.ErrValidation)
	}

	return recurrence.ToDate(event.StartDate), nil
}
