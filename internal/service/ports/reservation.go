package ports

import (
	"context"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

type ReservationRepo interface {
	// Create performs the atomic admission: capacity recount and insert in
	// one transaction scoped to the reservation's slot instance. On return
	// the reservation carries its decided status and waitlist position.
	Create(ctx context.Context, r *domain.Reservation) error
	GetActive(ctx context.Context, slotInstanceID, email string) (*domain.Reservation, error)
	GetDetailsByToken(ctx context.Context, token string) (*domain.ReservationDetails, error)
	GetDetailsByID(ctx context.Context, id string) (*domain.ReservationDetails, error)
	UpdateContact(ctx context.Context, token, name, phone string) error
	// CancelByID / CancelByToken mark the reservation cancelled and return
	// its pre-cancel state, so callers know whether a confirmed spot freed up.
	CancelByID(ctx context.Context, id string) (*domain.Reservation, error)
	CancelByToken(ctx context.Context, token string) (*domain.Reservation, error)
	ListActiveByEventAndEmail(ctx context.Context, eventID, email string) ([]*domain.Reservation, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Reservation, error)
	// PromoteNext promotes the earliest waitlisted reservation of the slot
	// instance if a confirmed spot is free. Returns nil when nothing is
	// promotable.
	PromoteNext(ctx context.Context, slotInstanceID string) (*domain.Reservation, error)
	ListPromotableSlots(ctx context.Context) ([]string, error)
}
