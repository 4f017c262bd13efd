package domain

import "errors"

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrClientNotFound      = errors.New("client not found")
	ErrClientExists        = errors.New("client already exists")
	// ErrEmailInUse is returned when another client already has the email.
	ErrEmailInUse = errors.New("email already in use")
	// ErrClientHasAppointments is returned when deleting a client that is still
	// referenced by at least one appointment.
	ErrClientHasAppointments = errors.New("client has appointments")
	// ErrUnknownClient is returned when an appointment write references a CPF
	// with no matching client row.
	ErrUnknownClient = errors.New("client does not exist")

	// ErrIdempotencyInProgress is returned while another create holds the
	// same Idempotency-Key.
	ErrIdempotencyInProgress = errors.New("request with this idempotency key is in progress")

	ErrInvalidInput     = errors.New("invalid input")
	ErrNoFieldsToUpdate = errors.New("no fields to update")

	// ErrStoreUnavailable wraps any failure to reach the relational store.
	ErrStoreUnavailable = errors.New("database connection error")
	ErrAuditUnavailable = errors.New("audit log unavailable")
)
