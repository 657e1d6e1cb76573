package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingDomain "github.com/arkagme/meeting-room-api/internal/domain/booking"
	roomDomain "github.com/arkagme/meeting-room-api/internal/domain/room"
)

// RoomDTO is the API response representation of a room.
type RoomDTO struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Equipment []string  `json:"equipment"`
	CreatedAt time.Time `json:"createdAt"`
}

// RoomBookingDTO is a booking with its booker's identity, for the room
// availability view.
type RoomBookingDTO struct {
	BookingDTO
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// RoomService implements the room browsing and availability use cases.
type RoomService struct {
	rooms    roomDomain.RoomRepository
	bookings bookingDomain.BookingRepository
	logger   *zap.Logger
}

// NewRoomService creates a new RoomService.
func NewRoomService(rooms roomDomain.RoomRepository, bookings bookingDomain.BookingRepository, logger *zap.Logger) *RoomService {
	return &RoomService{rooms: rooms, bookings: bookings, logger: logger}
}

// ListRooms returns all rooms ordered by name.
func (s *RoomService) ListRooms(ctx context.Context) ([]RoomDTO, error) {
	rooms, err := s.rooms.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	dtos := make([]RoomDTO, len(rooms))
	for i, r := range rooms {
		dtos[i] = toRoomDTO(r)
	}
	return dtos, nil
}

// GetRoomAvailability returns a room's bookings on the given date with
// booker identities, earliest first.
func (s *RoomService) GetRoomAvailability(ctx context.Context, roomID uuid.UUID, date time.Time) ([]RoomBookingDTO, error) {
	if _, err := s.rooms.FindByID(ctx, roomID); err != nil {
		return nil, err
	}

	rows, err := s.bookings.FindByRoomAndDate(ctx, roomID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get room availability: %w", err)
	}

	dtos := make([]RoomBookingDTO, len(rows))
	for i, row := range rows {
		dtos[i] = RoomBookingDTO{
			BookingDTO: toBookingDTO(row.Booking),
			UserName:   row.UserName,
			UserEmail:  row.UserEmail,
		}
	}
	return dtos, nil
}

// SeedDefaultRooms inserts the fixed room set if the rooms table is empty.
// Called once at startup.
func (s *RoomService) SeedDefaultRooms(ctx context.Context) error {
	count, err := s.rooms.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count rooms: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, r := range roomDomain.DefaultRooms() {
		if err := s.rooms.Save(ctx, r); err != nil {
			return fmt.Errorf("failed to seed room %q: %w", r.Name(), err)
		}
	}

	s.logger.Info("seeded default rooms", zap.Int("count", len(roomDomain.DefaultRooms())))
	return nil
}

func toRoomDTO(r *roomDomain.Room) RoomDTO {
	return RoomDTO{
		ID:        r.ID(),
		Name:      r.Name(),
		Capacity:  r.Capacity(),
		Equipment: r.Equipment(),
		CreatedAt: r.CreatedAt(),
	}
}
