package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

type waitlistPromoter interface {
	PromoteEligible(ctx context.Context) ([]*domain.Reservation, error)
}

// Scheduler periodically sweeps slot instances for promotable waitlist
// entries. Promotions normally happen inline when a confirmed reservation is
// cancelled; the sweep catches vacancies those paths missed, such as a crash
// between cancel and promote or an organizer raising capacity.
type Scheduler struct {
	reservationService waitlistPromoter
	interval           time.Duration
	logger             logger.Logger
}

func New(
	reservationService waitlistPromoter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reservationService: reservationService,
		interval:           interval,
		logger:             logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("promotion sweep started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("promotion sweep stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	promoted, err := s.reservationService.PromoteEligible(ctx)
	if err != nil {
		s.logger.Error("promotion sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, p := range promoted {
		s.logger.Info("reservation promoted by sweep",
			logger.String("reservation_id", p.ID),
			logger.String("slot_instance_id", p.SlotInstanceID),
		)
	}
}
