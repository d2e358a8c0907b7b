package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/handler/dto"
)

// OrganizerHeader carries the acting organizer's identifier, supplied by the
// identity collaborator in front of this service.
const OrganizerHeader = "X-Organizer-ID"

type EventSvc interface {
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	PreviewOccurrences(ctx context.Context, start time.Time, rule *domain.RecurrenceRule) ([]time.Time, error)
	GetDetails(ctx context.Context, id string) (*domain.EventDetails, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, organizerID, id string, input domain.UpdateEventInput) error
	Delete(ctx context.Context, organizerID, id string) error
	DeleteOccurrence(ctx context.Context, organizerID, eventID string, date time.Time) error
	UpdateSlotCapacity(ctx context.Context, organizerID, eventID, templateID string, capacity int) error
}

type ReservationSvc interface {
	SignUp(ctx context.Context, input domain.SignupInput) (*domain.ReservationDetails, error)
	GetByToken(ctx context.Context, manageToken string) (*domain.ReservationDetails, error)
	UpdateContact(ctx context.Context, manageToken, name, phone string) (*domain.ReservationDetails, error)
	CancelByToken(ctx context.Context, manageToken string) (*domain.RemovalResult, error)
	CancelByEmail(ctx context.Context, input domain.CancelByEmailInput) (*domain.RemovalResult, error)
	RemoveByOrganizer(ctx context.Context, organizerID, eventID, reservationID string) (*domain.RemovalResult, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Reservation, error)
}

type Handler struct {
	eventService       EventSvc
	reservationService ReservationSvc
}

func NewHandler(eventService EventSvc, reservationService ReservationSvc) *Handler {
	return &Handler{
		eventService:       eventService,
		reservationService: reservationService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rule, err := dto.ToRecurrenceRule(req.Recurrence)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slots := make([]domain.CreateSlotInput, 0, len(req.Slots))
	for _, s := range req.Slots {
		kind := domain.SlotKind(s.Kind)
		if kind == "" {
			kind = domain.SlotKindRegular
		}

		occDate, err := dto.ParseOptionalDate(s.OccurrenceDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
			return
		}

		slots = append(slots, domain.CreateSlotInput{
			Name:           s.Name,
			Kind:           kind,
			Capacity:       s.Capacity,
			OccurrenceDate: occDate,
		})
	}

	input := domain.CreateEventInput{
		OrganizerID: c.GetHeader(OrganizerHeader),
		Title:       req.Title,
		Description: req.Description,
		StartDate:   startDate,
		Recurrence:  rule,
		Slots:       slots,
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	details, err := h.eventService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventDetailsResponse(details))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var status *domain.EventStatus
	if req.Status != nil {
		s := domain.EventStatus(*req.Status)
		status = &s
	}

	input := domain.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
	}

	if err := h.eventService.Update(c.Request.Context(), c.GetHeader(OrganizerHeader), id, input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), c.GetHeader(OrganizerHeader), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) DeleteOccurrence(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	date, err := dto.ParseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.eventService.DeleteOccurrence(c.Request.Context(), c.GetHeader(OrganizerHeader), id, date); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) UpdateSlotCapacity(c *ginext.Context) {
	eventID := c.Param("id")
	slotID := c.Param("slotID")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}
	if _, err := uuid.Parse(slotID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid slot id"})
		return
	}

	var req dto.UpdateSlotCapacityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	err := h.eventService.UpdateSlotCapacity(
		c.Request.Context(), c.GetHeader(OrganizerHeader), eventID, slotID, req.Capacity,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "updated"})
}

func (h *Handler) PreviewOccurrences(c *ginext.Context) {
	var req dto.PreviewOccurrencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startDate, err := dto.ParseDate(req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	rule, err := dto.ToRecurrenceRule(req.Recurrence)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	dates, err := h.eventService.PreviewOccurrences(c.Request.Context(), startDate, rule)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOccurrencesResponse(dates))
}

// Reservations

func (h *Handler) SignUp(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	occDate, err := dto.ParseOptionalDate(req.OccurrenceDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.SignupInput{
		EventID:        eventID,
		SlotTemplateID: req.SlotTemplateID,
		OccurrenceDate: occDate,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
	}

	details, err := h.reservationService.SignUp(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSignupResponse(details))
}

func (h *Handler) CancelByEmail(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.CancelByEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CancelByEmailInput{
		EventID:       eventID,
		Email:         req.Email,
		ReservationID: req.ReservationID,
	}

	result, err := h.reservationService.CancelByEmail(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRemovalResponse(result))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid manage token"})
		return
	}

	details, err := h.reservationService.GetByToken(c.Request.Context(), token)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(details))
}

func (h *Handler) UpdateReservation(c *ginext.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid manage token"})
		return
	}

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	details, err := h.reservationService.UpdateContact(c.Request.Context(), token, req.Name, req.Phone)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(details))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid manage token"})
		return
	}

	result, err := h.reservationService.CancelByToken(c.Request.Context(), token)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRemovalResponse(result))
}

func (h *Handler) ListEventReservations(c *ginext.Context) {
	eventID := c.Param("id")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	reservations, err := h.reservationService.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RosterEntryResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToRosterEntryResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RemoveReservation(c *ginext.Context) {
	eventID := c.Param("id")
	resID := c.Param("resID")
	if _, err := uuid.Parse(eventID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}
	if _, err := uuid.Parse(resID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	result, err := h.reservationService.RemoveByOrganizer(
		c.Request.Context(), c.GetHeader(OrganizerHeader), eventID, resID,
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRemovalResponse(result))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrSlotNotFound),
		errors.Is(err, domain.ErrOccurrenceNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDuplicateSignup),
		errors.Is(err, domain.ErrAmbiguousIdentity),
		errors.Is(err, domain.ErrEventClosed),
		errors.Is(err, domain.ErrCapacityBelowConfirmed):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrNotOrganizer):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
