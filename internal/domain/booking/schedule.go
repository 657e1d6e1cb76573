package booking

import (
	"time"

	"github.com/arkagme/meeting-room-api/internal/domain"
)

// Booking window limits. Bookings are restricted to the current calendar day
// between 09:00 and 22:00 in the server's local time.
const (
	OpeningHour = 9
	ClosingHour = 22

	MinDuration = 30 * time.Minute
	MaxDuration = 5 * time.Hour
)

// The distinct rule violations a booking request can be rejected with.
// Each maps to its own user-visible message.
var (
	ErrNotToday         = domain.NewValidationError("bookings are only allowed for today")
	ErrPastStart        = domain.NewValidationError("cannot book for past time slots")
	ErrEndNotAfterStart = domain.NewValidationError("end time must be after start time")
	ErrOutsideHours     = domain.NewValidationError("bookings are only allowed between 9 AM and 10 PM")
	ErrTooShort         = domain.NewValidationError("minimum booking duration is 30 minutes")
	ErrTooLong          = domain.NewValidationError("maximum booking duration is 5 hours")
	ErrConflict         = domain.NewConflictError("time slot conflicts with existing booking")
)

// Schedule enforces the booking window rules. It holds a Clock so "now" and
// "today" are injectable.
type Schedule struct {
	clock Clock
}

// NewSchedule creates a Schedule backed by the given clock.
func NewSchedule(clock Clock) *Schedule {
	return &Schedule{clock: clock}
}

// ValidateWindow checks a requested [start, end) interval against the booking
// window rules. Rules are evaluated in order and the first violation wins:
//
//  1. start must fall on the current calendar date
//  2. start must be strictly in the future
//  3. end must be strictly after start
//  4. the interval must fit within opening hours (09:00 to 22:00 inclusive)
//  5. duration must be between 30 minutes and 5 hours
//
// The conflict check against existing bookings is a repository concern and is
// evaluated separately.
func (s *Schedule) ValidateWindow(start, end time.Time) error {
	now := s.clock.Now()
	loc := now.Location()

	localStart := start.In(loc)
	localEnd := end.In(loc)

	if !sameDate(localStart, now) {
		return ErrNotToday
	}
	if !start.After(now) {
		return ErrPastStart
	}
	if !end.After(start) {
		return ErrEndNotAfterStart
	}

	closing := time.Date(localStart.Year(), localStart.Month(), localStart.Day(),
		ClosingHour, 0, 0, 0, loc)
	if localStart.Hour() < OpeningHour || localEnd.After(closing) {
		return ErrOutsideHours
	}

	duration := end.Sub(start)
	if duration < MinDuration {
		return ErrTooShort
	}
	if duration > MaxDuration {
		return ErrTooLong
	}
	return nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any instant. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
