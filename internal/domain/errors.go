package domain

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrSlotNotFound        = errors.New("slot not found")
	ErrOccurrenceNotFound  = errors.New("occurrence not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrDuplicateSignup        = errors.New("active reservation already exists for this email")
	ErrAmbiguousIdentity      = errors.New("multiple active reservations match this email")
	ErrEventClosed            = errors.New("event is closed for signups")
	ErrCapacityBelowConfirmed = errors.New("capacity cannot go below the confirmed count")
)

var (
	ErrNotOrganizer = errors.New("acting organizer does not own this event")
)

var (
	ErrValidation = errors.New("validation error")
)
