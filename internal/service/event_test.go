package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/service/ports/mocks"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEventService_CreateEvent_Recurring(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	var gotTemplates []domain.SlotTemplate
	var gotInstances []domain.SlotInstance
	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, e *domain.Event, templates []domain.SlotTemplate, instances []domain.SlotInstance) {
			gotTemplates = templates
			gotInstances = instances
		}).
		Return(nil)

	input := domain.CreateEventInput{
		OrganizerID: "org1",
		Title:       "Yoga",
		StartDate:   day(2025, 1, 6),
		Recurrence:  &domain.RecurrenceRule{Frequency: domain.FrequencyWeekly, Count: 3},
		Slots: []domain.CreateSlotInput{
			{Name: "Morning", Kind: domain.SlotKindRegular, Capacity: 10},
			{Name: "Overflow", Kind: domain.SlotKindWaitlist},
		},
	}

	event, err := svc.CreateEvent(context.Background(), input)

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, domain.EventStatusOpen, event.Status)
	assert.Equal(t, day(2025, 1, 6), event.StartDate)

	require.Len(t, gotTemplates, 2)
	assert.Len(t, gotInstances, 6) // 3 occurrences x 2 templates
	for _, inst := range gotInstances {
		assert.Equal(t, event.ID, inst.EventID)
	}
}

func TestEventService_CreateEvent_TitleRequired(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		StartDate: day(2025, 1, 6),
		Slots:     []domain.CreateSlotInput{{Name: "A", Kind: domain.SlotKindRegular, Capacity: 5}},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_SlotsRequired(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:     "Yoga",
		StartDate: day(2025, 1, 6),
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_UnknownSlotKind(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:     "Yoga",
		StartDate: day(2025, 1, 6),
		Slots:     []domain.CreateSlotInput{{Name: "A", Kind: "vip", Capacity: 5}},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_RegularNeedsCapacity(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:     "Yoga",
		StartDate: day(2025, 1, 6),
		Slots:     []domain.CreateSlotInput{{Name: "A", Kind: domain.SlotKindRegular}},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_BadRecurrence(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:      "Yoga",
		StartDate:  day(2025, 1, 6),
		Recurrence: &domain.RecurrenceRule{Frequency: "hourly"},
		Slots:      []domain.CreateSlotInput{{Name: "A", Kind: domain.SlotKindRegular, Capacity: 5}},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_OneOffSlotOutsideSchedule(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	// weekly from Jan 6, count 2 -> Jan 6 and Jan 13; Jan 20 never occurs
	outside := day(2025, 1, 20)
	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:      "Yoga",
		StartDate:  day(2025, 1, 6),
		Recurrence: &domain.RecurrenceRule{Frequency: domain.FrequencyWeekly, Count: 2},
		Slots: []domain.CreateSlotInput{
			{Name: "Morning", Kind: domain.SlotKindRegular, Capacity: 10},
			{Name: "Special", Kind: domain.SlotKindRegular, Capacity: 5, OccurrenceDate: &outside},
		},
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_CreateEvent_OneOffSlotOnSchedule(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	var gotInstances []domain.SlotInstance
	repo.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, e *domain.Event, templates []domain.SlotTemplate, instances []domain.SlotInstance) {
			gotInstances = instances
		}).
		Return(nil)

	second := day(2025, 1, 13)
	_, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:      "Yoga",
		StartDate:  day(2025, 1, 6),
		Recurrence: &domain.RecurrenceRule{Frequency: domain.FrequencyWeekly, Count: 2},
		Slots: []domain.CreateSlotInput{
			{Name: "Morning", Kind: domain.SlotKindRegular, Capacity: 10},
			{Name: "Special", Kind: domain.SlotKindRegular, Capacity: 5, OccurrenceDate: &second},
		},
	})

	require.NoError(t, err)
	assert.Len(t, gotInstances, 3) // Morning twice, Special once
}

func TestEventService_PreviewOccurrences(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	dates, err := svc.PreviewOccurrences(
		context.Background(),
		day(2025, 1, 6),
		&domain.RecurrenceRule{Frequency: domain.FrequencyWeekly, Count: 2},
	)

	require.NoError(t, err)
	assert.Equal(t, []time.Time{day(2025, 1, 6), day(2025, 1, 13)}, dates)
}

func TestEventService_Update_NotOrganizer(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", OrganizerID: "org1"}, nil)

	err := svc.Update(context.Background(), "org2", "e1", domain.UpdateEventInput{})

	assert.ErrorIs(t, err, domain.ErrNotOrganizer)
}

func TestEventService_Update_UnownedEventAllowsAnyone(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1"}, nil)
	repo.EXPECT().Update(mock.Anything, "e1", mock.Anything).Return(nil)

	err := svc.Update(context.Background(), "anyone", "e1", domain.UpdateEventInput{})

	assert.NoError(t, err)
}

func TestEventService_Update_BadStatus(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	bad := domain.EventStatus("archived")
	err := svc.Update(context.Background(), "org1", "e1", domain.UpdateEventInput{Status: &bad})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Update_Close(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	closed := domain.EventStatusClosed
	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", OrganizerID: "org1"}, nil)
	repo.EXPECT().Update(mock.Anything, "e1", domain.UpdateEventInput{Status: &closed}).Return(nil)

	err := svc.Update(context.Background(), "org1", "e1", domain.UpdateEventInput{Status: &closed})

	assert.NoError(t, err)
}

func TestEventService_Delete_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	err := svc.Delete(context.Background(), "org1", "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_DeleteOccurrence_TruncatesDate(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", OrganizerID: "org1"}, nil)
	repo.EXPECT().DeleteOccurrence(mock.Anything, "e1", day(2025, 1, 13)).Return(nil)

	err := svc.DeleteOccurrence(
		context.Background(), "org1", "e1",
		time.Date(2025, 1, 13, 18, 0, 0, 0, time.UTC),
	)

	assert.NoError(t, err)
}

func TestEventService_UpdateSlotCapacity_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", OrganizerID: "org1"}, nil)
	repo.EXPECT().GetSlotTemplate(mock.Anything, "t1").
		Return(&domain.SlotTemplate{ID: "t1", EventID: "e1", Capacity: 10}, nil)
	repo.EXPECT().MaxConfirmed(mock.Anything, "t1").Return(7, nil)
	repo.EXPECT().UpdateSlotCapacity(mock.Anything, "t1", 8).Return(nil)

	err := svc.UpdateSlotCapacity(context.Background(), "org1", "e1", "t1", 8)

	assert.NoError(t, err)
}

func TestEventService_UpdateSlotCapacity_BelowConfirmed(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", OrganizerID: "org1"}, nil)
	repo.EXPECT().GetSlotTemplate(mock.Anything, "t1").
		Return(&domain.SlotTemplate{ID: "t1", EventID: "e1", Capacity: 10}, nil)
	repo.EXPECT().MaxConfirmed(mock.Anything, "t1").Return(7, nil)

	err := svc.UpdateSlotCapacity(context.Background(), "org1", "e1", "t1", 5)

	assert.ErrorIs(t, err, domain.ErrCapacityBelowConfirmed)
}

func TestEventService_UpdateSlotCapacity_WrongEvent(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", OrganizerID: "org1"}, nil)
	repo.EXPECT().GetSlotTemplate(mock.Anything, "t1").
		Return(&domain.SlotTemplate{ID: "t1", EventID: "other"}, nil)

	err := svc.UpdateSlotCapacity(context.Background(), "org1", "e1", "t1", 5)

	assert.ErrorIs(t, err, domain.ErrSlotNotFound)
}

func TestEventService_UpdateSlotCapacity_NonPositive(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	err := svc.UpdateSlotCapacity(context.Background(), "org1", "e1", "t1", 0)

	assert.ErrorIs(t, err, domain.ErrValidation)
}
