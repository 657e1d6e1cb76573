package room

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arkagme/meeting-room-api/internal/domain"
)

// Room is the aggregate root for a bookable meeting room. Rooms are seeded at
// startup and read-only through the API.
type Room struct {
	id        uuid.UUID
	name      string
	capacity  int
	equipment []string
	createdAt time.Time
}

// NewRoom creates a Room with validated fields.
func NewRoom(name string, capacity int, equipment []string) (*Room, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("room name is required")
	}
	if capacity < 1 {
		return nil, domain.NewValidationError("room capacity must be at least 1")
	}
	if equipment == nil {
		equipment = []string{}
	}

	return &Room{
		id:        uuid.New(),
		name:      strings.TrimSpace(name),
		capacity:  capacity,
		equipment: equipment,
		createdAt: time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Room from persistence data (no validation).
func Reconstruct(id uuid.UUID, name string, capacity int, equipment []string, createdAt time.Time) *Room {
	return &Room{
		id:        id,
		name:      name,
		capacity:  capacity,
		equipment: equipment,
		createdAt: createdAt,
	}
}

func (r *Room) ID() uuid.UUID        { return r.id }
func (r *Room) Name() string         { return r.name }
func (r *Room) Capacity() int        { return r.capacity }
func (r *Room) Equipment() []string  { return r.equipment }
func (r *Room) CreatedAt() time.Time { return r.createdAt }

// DefaultRooms returns the fixed set of rooms seeded when the rooms table is
// empty.
func DefaultRooms() []*Room {
	seed := []struct {
		name      string
		capacity  int
		equipment []string
	}{
		{"Conference Room A", 10, []string{"Projector", "Whiteboard", "Video Conference", "Sound System"}},
		{"Conference Room B", 8, []string{"Projector", "Whiteboard", "Video Conference"}},
		{"Meeting Room C", 6, []string{"Whiteboard", "TV Screen"}},
		{"Board Room", 12, []string{"Projector", "Whiteboard", "Video Conference", "Sound System", "Phone"}},
	}

	rooms := make([]*Room, len(seed))
	for i, s := range seed {
		r, _ := NewRoom(s.name, s.capacity, s.equipment)
		rooms[i] = r
	}
	return rooms
}
