package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/arkagme/meeting-room-api/internal/domain"
)

func TestListRooms_OrderedByName(t *testing.T) {
	f := newBookingFixture(t)
	svc := NewRoomService(f.service.rooms, f.bookings, zap.NewNop())

	require.NoError(t, svc.SeedDefaultRooms(context.Background()))

	rooms, err := svc.ListRooms(context.Background())
	require.NoError(t, err)

	// The fixture room plus the default set would normally be seeded together;
	// here seeding is skipped because the fixture room already exists.
	require.Len(t, rooms, 1)
	assert.Equal(t, "Conference Room A", rooms[0].Name)
}

func TestSeedDefaultRooms(t *testing.T) {
	rooms := newMemRoomRepo()
	svc := NewRoomService(rooms, newMemBookingRepo(), zap.NewNop())

	require.NoError(t, svc.SeedDefaultRooms(context.Background()))
	listed, err := svc.ListRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 4)

	names := make([]string, len(listed))
	for i, r := range listed {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"Board Room", "Conference Room A", "Conference Room B", "Meeting Room C"}, names)

	// Seeding again is a no-op.
	require.NoError(t, svc.SeedDefaultRooms(context.Background()))
	again, err := svc.ListRooms(context.Background())
	require.NoError(t, err)
	assert.Len(t, again, 4)
}

func TestGetRoomAvailability(t *testing.T) {
	f := newBookingFixture(t)
	svc := NewRoomService(f.service.rooms, f.bookings, zap.NewNop())

	_, err := f.service.CreateBooking(context.Background(), f.request(f.at(14, 0), f.at(15, 0)))
	require.NoError(t, err)
	_, err = f.service.CreateBooking(context.Background(), f.request(f.at(10, 0), f.at(11, 0)))
	require.NoError(t, err)

	rows, err := svc.GetRoomAvailability(context.Background(), f.room.ID(), f.now)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Earliest first, with the booker's identity attached.
	assert.Equal(t, f.at(10, 0), rows[0].StartTime)
	assert.Equal(t, "Alice", rows[0].UserName)
	assert.Equal(t, "alice@example.com", rows[0].UserEmail)

	t.Run("empty on a free day", func(t *testing.T) {
		rows, err := svc.GetRoomAvailability(context.Background(), f.room.ID(), f.now.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("unknown room gets not found", func(t *testing.T) {
		_, err := svc.GetRoomAvailability(context.Background(), uuid.New(), f.now)

		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})
}
