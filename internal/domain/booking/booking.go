package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arkagme/meeting-room-api/internal/domain"
)

// Booking is the aggregate root for a meeting-room booking. Bookings are
// immutable after creation; the only lifecycle transition is deletion by the
// owning user.
type Booking struct {
	id                uuid.UUID
	userID            uuid.UUID
	roomID            uuid.UUID
	meetingTitle      string
	startTime         time.Time
	endTime           time.Time
	attendeesCount    int
	selectedEquipment []string
	createdAt         time.Time
}

// NewBooking creates a Booking with validated fields. Window and conflict
// rules are enforced separately by Schedule and the repository.
func NewBooking(
	userID, roomID uuid.UUID,
	meetingTitle string,
	startTime, endTime time.Time,
	attendeesCount int,
	selectedEquipment []string,
) (*Booking, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user ID is required")
	}
	if roomID == uuid.Nil {
		return nil, domain.NewValidationError("room ID is required")
	}
	if strings.TrimSpace(meetingTitle) == "" {
		return nil, domain.NewValidationError("meeting title is required")
	}
	if attendeesCount < 1 {
		return nil, domain.NewValidationError("attendees count must be at least 1")
	}
	if !endTime.After(startTime) {
		return nil, ErrEndNotAfterStart
	}

	if selectedEquipment == nil {
		selectedEquipment = []string{}
	}

	return &Booking{
		id:                uuid.New(),
		userID:            userID,
		roomID:            roomID,
		meetingTitle:      strings.TrimSpace(meetingTitle),
		startTime:         startTime,
		endTime:           endTime,
		attendeesCount:    attendeesCount,
		selectedEquipment: selectedEquipment,
		createdAt:         time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Booking from persistence data (no validation).
func Reconstruct(
	id, userID, roomID uuid.UUID,
	meetingTitle string,
	startTime, endTime time.Time,
	attendeesCount int,
	selectedEquipment []string,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:                id,
		userID:            userID,
		roomID:            roomID,
		meetingTitle:      meetingTitle,
		startTime:         startTime,
		endTime:           endTime,
		attendeesCount:    attendeesCount,
		selectedEquipment: selectedEquipment,
		createdAt:         createdAt,
	}
}

// --- Getters ---

func (b *Booking) ID() uuid.UUID               { return b.id }
func (b *Booking) UserID() uuid.UUID           { return b.userID }
func (b *Booking) RoomID() uuid.UUID           { return b.roomID }
func (b *Booking) MeetingTitle() string        { return b.meetingTitle }
func (b *Booking) StartTime() time.Time        { return b.startTime }
func (b *Booking) EndTime() time.Time          { return b.endTime }
func (b *Booking) AttendeesCount() int         { return b.attendeesCount }
func (b *Booking) SelectedEquipment() []string { return b.selectedEquipment }
func (b *Booking) CreatedAt() time.Time        { return b.createdAt }

// Duration returns the booked interval length.
func (b *Booking) Duration() time.Duration {
	return b.endTime.Sub(b.startTime)
}

// IsOwnedBy reports whether the booking belongs to the given user.
func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

// OverlapsWith reports whether this booking's interval overlaps the given
// half-open interval.
func (b *Booking) OverlapsWith(start, end time.Time) bool {
	return Overlaps(b.startTime, b.endTime, start, end)
}
