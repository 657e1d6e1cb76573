package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserBooking is a read model pairing a booking with the name of its room,
// as returned by the per-user listing.
type UserBooking struct {
	Booking  *Booking
	RoomName string
}

// RoomDayBooking is a read model pairing a booking with its booker's
// identity, as returned by the room availability listing.
type RoomDayBooking struct {
	Booking   *Booking
	UserName  string
	UserEmail string
}

// DayBooking is a read model pairing a booking with both room and booker
// names, as returned by the whole-day listing.
type DayBooking struct {
	Booking  *Booking
	RoomName string
	UserName string
}

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// FindOverlapping retrieves bookings for the room whose half-open
	// intervals overlap [start, end).
	FindOverlapping(ctx context.Context, roomID uuid.UUID, start, end time.Time) ([]*Booking, error)

	// Create persists a new booking. The conflict check and the insert are
	// one atomic unit per room; Create returns ErrConflict if an overlapping
	// booking exists or appears concurrently.
	Create(ctx context.Context, b *Booking) error

	// FindByUser retrieves a user's bookings ordered by start time
	// descending, each with its room name.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]UserBooking, error)

	// FindByRoomAndDate retrieves a room's bookings on the given calendar
	// date ordered by start time ascending, each with its booker's identity.
	FindByRoomAndDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]RoomDayBooking, error)

	// FindByDate retrieves all bookings on the given calendar date ordered by
	// room then start time, each with room and booker names.
	FindByDate(ctx context.Context, date time.Time) ([]DayBooking, error)

	// DeleteByOwner deletes a booking if it belongs to the requesting user.
	// Returns a NotFoundError when the booking is absent or owned by someone
	// else.
	DeleteByOwner(ctx context.Context, bookingID, userID uuid.UUID) (*Booking, error)
}
