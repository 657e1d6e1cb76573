package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/arkagme/meeting-room-api/internal/domain"
	roomDomain "github.com/arkagme/meeting-room-api/internal/domain/room"
)

// RoomModel is the GORM model for the rooms table.
type RoomModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"not null;size:255"`
	Capacity  int            `gorm:"not null"`
	Equipment pq.StringArray `gorm:"type:text[]"`
	CreatedAt time.Time      `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (RoomModel) TableName() string {
	return "rooms"
}

// GormRoomRepository is the GORM-based implementation of RoomRepository.
type GormRoomRepository struct {
	db *gorm.DB
}

// NewGormRoomRepository creates a new GormRoomRepository.
func NewGormRoomRepository(db *gorm.DB) *GormRoomRepository {
	return &GormRoomRepository{db: db}
}

// FindByID retrieves a room by its unique identifier.
func (r *GormRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*roomDomain.Room, error) {
	var model RoomModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Room", id.String())
		}
		return nil, fmt.Errorf("failed to find room by ID: %w", err)
	}
	return toDomainRoom(&model), nil
}

// ListAll retrieves all rooms ordered by name.
func (r *GormRoomRepository) ListAll(ctx context.Context) ([]*roomDomain.Room, error) {
	var models []RoomModel
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	rooms := make([]*roomDomain.Room, len(models))
	for i, m := range models {
		rooms[i] = toDomainRoom(&m)
	}
	return rooms, nil
}

// Count returns the number of rooms.
func (r *GormRoomRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&RoomModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return count, nil
}

// Save persists a new room.
func (r *GormRoomRepository) Save(ctx context.Context, rm *roomDomain.Room) error {
	model := &RoomModel{
		ID:        rm.ID(),
		Name:      rm.Name(),
		Capacity:  rm.Capacity(),
		Equipment: pq.StringArray(rm.Equipment()),
		CreatedAt: rm.CreatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}
	return nil
}

func toDomainRoom(m *RoomModel) *roomDomain.Room {
	return roomDomain.Reconstruct(m.ID, m.Name, m.Capacity, []string(m.Equipment), m.CreatedAt)
}
