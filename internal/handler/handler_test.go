package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/handler/dto"
	hmocks "github.com/stpnv0/SlotBooker/internal/handler/mocks"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockReservationSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	reservationSvc := hmocks.NewMockReservationSvc(t)

	h := NewHandler(eventSvc, reservationSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/events", h.CreateEvent)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.PATCH("/events/:id", h.UpdateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.DELETE("/events/:id/occurrences/:date", h.DeleteOccurrence)
		api.PATCH("/events/:id/slots/:slotID", h.UpdateSlotCapacity)
		api.POST("/occurrences/preview", h.PreviewOccurrences)
		api.POST("/events/:id/signup", h.SignUp)
		api.POST("/events/:id/cancel", h.CancelByEmail)
		api.GET("/events/:id/reservations", h.ListEventReservations)
		api.DELETE("/events/:id/reservations/:resID", h.RemoveReservation)
		api.GET("/reservations/:token", h.GetReservation)
		api.PATCH("/reservations/:token", h.UpdateReservation)
		api.DELETE("/reservations/:token", h.CancelReservation)
	}

	return eventSvc, reservationSvc, r
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	event := &domain.Event{
		ID:        uuid.New().String(),
		Title:     "Yoga",
		StartDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		Status:    domain.EventStatusOpen,
		CreatedAt: time.Now(),
	}

	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Title:     "Yoga",
		StartDate: "2025-01-06",
		Recurrence: &dto.RecurrenceRuleRequest{
			Frequency: "weekly",
			Count:     4,
		},
		Slots: []dto.CreateSlotRequest{
			{Name: "Morning", Kind: "regular", Capacity: 10},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(OrganizerHeader, "org1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Yoga", resp.Title)
	assert.Equal(t, "2025-01-06", resp.StartDate)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"title":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"title":"X","start_date":"06.01.2025","slots":[{"name":"A","capacity":5}]}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	occ := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	details := &domain.EventDetails{
		Event:       domain.Event{ID: eventID, Title: "Yoga", StartDate: occ, Status: domain.EventStatusOpen, CreatedAt: time.Now()},
		Occurrences: []time.Time{occ},
		Slots: []domain.SlotAvailability{
			{
				Instance:  domain.SlotInstance{ID: "s1", SlotTemplateID: "t1", OccurrenceDate: occ, Capacity: 10},
				Name:      "Morning",
				Kind:      domain.SlotKindRegular,
				Confirmed: 4,
				Available: 6,
			},
		},
	}

	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, 6, resp.Slots[0].Available)
}

func TestHandler_GetEvent_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_UpdateEvent_Forbidden(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().Update(mock.Anything, "org2", eventID, mock.Anything).Return(domain.ErrNotOrganizer)

	body := []byte(`{"status":"closed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/events/"+eventID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(OrganizerHeader, "org2")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_DeleteOccurrence_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	date := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)
	eventSvc.EXPECT().DeleteOccurrence(mock.Anything, "org1", eventID, date).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+eventID+"/occurrences/2025-01-13", nil)
	req.Header.Set(OrganizerHeader, "org1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteOccurrence_BadDate(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+uuid.New().String()+"/occurrences/13-01-2025", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateSlotCapacity_Conflict(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	slotID := uuid.New().String()
	eventSvc.EXPECT().UpdateSlotCapacity(mock.Anything, "org1", eventID, slotID, 3).
		Return(domain.ErrCapacityBelowConfirmed)

	body := []byte(`{"capacity":3}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/events/"+eventID+"/slots/"+slotID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(OrganizerHeader, "org1")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_PreviewOccurrences_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	dates := []time.Time{
		time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC),
	}
	eventSvc.EXPECT().PreviewOccurrences(mock.Anything, mock.Anything, mock.Anything).Return(dates, nil)

	body := []byte(`{"start_date":"2025-01-06","recurrence":{"frequency":"weekly","count":2}}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/occurrences/preview", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.OccurrencesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"2025-01-06", "2025-01-13"}, resp.Dates)
}

// --- Signups ---

func TestHandler_SignUp_Created(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	eventID := uuid.New().String()
	details := &domain.ReservationDetails{
		Reservation: domain.Reservation{
			ID:          uuid.New().String(),
			Status:      domain.ReservationStatusWaitlisted,
			Position:    3,
			ManageToken: "tok123",
		},
		EventID: eventID,
	}

	reservationSvc.EXPECT().SignUp(mock.Anything, mock.Anything).Return(details, nil)

	body, _ := json.Marshal(dto.SignupRequest{
		SlotTemplateID: uuid.New().String(),
		Name:           "Alice",
		Email:          "alice@example.com",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.SignupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "waitlisted", resp.Status)
	assert.Equal(t, 3, resp.Position)
	assert.Equal(t, "tok123", resp.ManageToken)
}

func TestHandler_SignUp_Duplicate(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	eventID := uuid.New().String()
	reservationSvc.EXPECT().SignUp(mock.Anything, mock.Anything).Return(nil, domain.ErrDuplicateSignup)

	body, _ := json.Marshal(dto.SignupRequest{
		SlotTemplateID: uuid.New().String(),
		Name:           "Alice",
		Email:          "alice@example.com",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SignUp_EventClosed(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	eventID := uuid.New().String()
	reservationSvc.EXPECT().SignUp(mock.Anything, mock.Anything).Return(nil, domain.ErrEventClosed)

	body, _ := json.Marshal(dto.SignupRequest{
		SlotTemplateID: uuid.New().String(),
		Name:           "Alice",
		Email:          "alice@example.com",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SignUp_BadEmail(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"slot_template_id":"` + uuid.New().String() + `","name":"Alice","email":"not-an-email"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+uuid.New().String()+"/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CancelByEmail_Ambiguous(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	eventID := uuid.New().String()
	reservationSvc.EXPECT().CancelByEmail(mock.Anything, mock.Anything).Return(nil, domain.ErrAmbiguousIdentity)

	body := []byte(`{"email":"alice@example.com"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/cancel", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Self-service ---

func TestHandler_GetReservation_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	details := &domain.ReservationDetails{
		Reservation: domain.Reservation{
			ID:     "r1",
			Name:   "Alice",
			Email:  "alice@example.com",
			Status: domain.ReservationStatusConfirmed,
		},
		EventID:        "e1",
		EventTitle:     "Yoga",
		SlotName:       "Morning",
		OccurrenceDate: time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC),
	}

	reservationSvc.EXPECT().GetByToken(mock.Anything, "tok123").Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/tok123", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Yoga", resp.EventTitle)
	assert.Equal(t, "confirmed", resp.Status)
}

func TestHandler_GetReservation_NotFound(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	reservationSvc.EXPECT().GetByToken(mock.Anything, "unknown").Return(nil, domain.ErrReservationNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations/unknown", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CancelReservation_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	reservationSvc.EXPECT().CancelByToken(mock.Anything, "tok123").
		Return(&domain.RemovalResult{Removed: true, Promoted: true}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/reservations/tok123", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RemovalResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Removed)
	assert.True(t, resp.Promoted)
}

// --- Organizer roster ---

func TestHandler_ListEventReservations_Success(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	eventID := uuid.New().String()
	reservations := []*domain.Reservation{
		{ID: "r1", SlotInstanceID: "s1", Name: "Alice", Email: "alice@example.com", Status: domain.ReservationStatusConfirmed, CreatedAt: time.Now()},
		{ID: "r2", SlotInstanceID: "s1", Name: "Bob", Email: "bob@example.com", Status: domain.ReservationStatusWaitlisted, CreatedAt: time.Now()},
	}

	reservationSvc.EXPECT().ListByEvent(mock.Anything, eventID).Return(reservations, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID+"/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RosterEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_RemoveReservation_Forbidden(t *testing.T) {
	_, reservationSvc, r := setupRouter(t)

	eventID := uuid.New().String()
	resID := uuid.New().String()
	reservationSvc.EXPECT().RemoveByOrganizer(mock.Anything, "org2", eventID, resID).
		Return(nil, domain.ErrNotOrganizer)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+eventID+"/reservations/"+resID, nil)
	req.Header.Set(OrganizerHeader, "org2")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_RemoveReservation_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+uuid.New().String()+"/reservations/bad-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().GetDetails(mock.Anything, eventID).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
