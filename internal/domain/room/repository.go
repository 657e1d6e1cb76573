package room

import (
	"context"

	"github.com/google/uuid"
)

// RoomRepository defines the persistence contract for room aggregates.
type RoomRepository interface {
	// FindByID retrieves a room by its unique identifier.
	FindByID(ctx context.Context, id uuid.UUID) (*Room, error)

	// ListAll retrieves all rooms ordered by name.
	ListAll(ctx context.Context) ([]*Room, error)

	// Count returns the number of rooms.
	Count(ctx context.Context) (int64, error)

	// Save persists a new room.
	Save(ctx context.Context, r *Room) error
}
