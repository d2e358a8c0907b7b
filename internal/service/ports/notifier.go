package ports

import (
	"context"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationConfirmed(ctx context.Context, d *domain.ReservationDetails)
	NotifyReservationWaitlisted(ctx context.Context, d *domain.ReservationDetails)
	NotifyReservationPromoted(ctx context.Context, d *domain.ReservationDetails)
	NotifyReservationCancelled(ctx context.Context, d *domain.ReservationDetails)
}
