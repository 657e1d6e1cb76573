package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicBookingEvents is the Kafka topic all booking-domain events are
// published to.
const TopicBookingEvents = "booking.events"

// Event types published by this service.
const (
	BookingCreated   = "booking.created"
	BookingCancelled = "booking.cancelled"
	UserLoggedIn     = "user.logged_in"
)

// BookingCreatedEvent is published after a booking passes validation and is
// persisted.
type BookingCreatedEvent struct {
	BookingID      uuid.UUID `json:"booking_id"`
	UserID         uuid.UUID `json:"user_id"`
	RoomID         uuid.UUID `json:"room_id"`
	MeetingTitle   string    `json:"meeting_title"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	AttendeesCount int       `json:"attendees_count"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// BookingCancelledEvent is published after a booking is deleted by its owner.
type BookingCancelledEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	UserID     uuid.UUID `json:"user_id"`
	RoomID     uuid.UUID `json:"room_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	OccurredAt time.Time `json:"occurred_at"`
}

// UserLoggedInEvent is published on every successful login upsert.
type UserLoggedInEvent struct {
	UserID     uuid.UUID `json:"user_id"`
	Email      string    `json:"email"`
	NewUser    bool      `json:"new_user"`
	OccurredAt time.Time `json:"occurred_at"`
}
