package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrSlotTaken        = errors.New("time slot is already booked")
	ErrSlotBlocked      = errors.New("time slot is reserved for a break")
	ErrUnknownBarber    = errors.New("unknown barber")
	ErrInvalidRange     = errors.New("start date is after end date")
	ErrInvalidInput     = errors.New("invalid input")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrBookingModified  = errors.New("booking was modified concurrently")
)

// MissingFieldsError names the required request fields that were absent.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// DateClosedError is returned when a booking targets a closed date.
type DateClosedError struct {
	Reason string
}

func (e *DateClosedError) Error() string {
	if e.Reason == "" {
		return "date is closed for bookings"
	}
	return "date is closed for bookings: " + e.Reason
}

// QuotaExceededError carries how long the device has to wait before it
// may book again.
type QuotaExceededError struct {
	RetryAfter time.Duration
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("booking limit reached, retry after %s", e.RetryAfter.Round(time.Second))
}

// OverlapConflictError carries the closure ranges that collide with the
// one being created.
type OverlapConflictError struct {
	Ranges []ClosedDate
}

func (e *OverlapConflictError) Error() string {
	return fmt.Sprintf("date range overlaps %d existing closure(s)", len(e.Ranges))
}

// IsUniqueViolation reports whether err is a Postgres unique-index
// violation. The slot claim and the revenue ledger both lean on unique
// indexes, so insert races surface through here.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
