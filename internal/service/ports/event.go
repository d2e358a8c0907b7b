package ports

import (
	"context"
	"time"

	"github.com/stpnv0/SlotBooker/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event, templates []domain.SlotTemplate, instances []domain.SlotInstance) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	Update(ctx context.Context, id string, input domain.UpdateEventInput) error
	Delete(ctx context.Context, id string) error
	DeleteOccurrence(ctx context.Context, eventID string, date time.Time) error
	GetSlotTemplate(ctx context.Context, id string) (*domain.SlotTemplate, error)
	UpdateSlotCapacity(ctx context.Context, templateID string, capacity int) error
	ResolveSlotInstance(ctx context.Context, templateID string, date time.Time) (*domain.SlotInstance, error)
	MaxConfirmed(ctx context.Context, templateID string) (int, error)
}
