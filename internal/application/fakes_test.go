package application

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/arkagme/meeting-room-api/internal/domain"
	bookingDomain "github.com/arkagme/meeting-room-api/internal/domain/booking"
	roomDomain "github.com/arkagme/meeting-room-api/internal/domain/room"
	userDomain "github.com/arkagme/meeting-room-api/internal/domain/user"
	"github.com/arkagme/meeting-room-api/internal/platform/kafka"
)

type stubClock struct {
	now time.Time
}

func (c stubClock) Now() time.Time { return c.now }

// memBookingRepo is an in-memory BookingRepository honoring the same ordering
// and conflict contract as the Postgres implementation.
type memBookingRepo struct {
	bookings  []*bookingDomain.Booking
	roomNames map[uuid.UUID]string
	users     map[uuid.UUID]*userDomain.User
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{
		roomNames: make(map[uuid.UUID]string),
		users:     make(map[uuid.UUID]*userDomain.User),
	}
}

func (r *memBookingRepo) FindOverlapping(_ context.Context, roomID uuid.UUID, start, end time.Time) ([]*bookingDomain.Booking, error) {
	var out []*bookingDomain.Booking
	for _, b := range r.bookings {
		if b.RoomID() == roomID && b.OverlapsWith(start, end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) Create(_ context.Context, b *bookingDomain.Booking) error {
	for _, existing := range r.bookings {
		if existing.RoomID() == b.RoomID() && existing.OverlapsWith(b.StartTime(), b.EndTime()) {
			return bookingDomain.ErrConflict
		}
	}
	r.bookings = append(r.bookings, b)
	return nil
}

func (r *memBookingRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]bookingDomain.UserBooking, error) {
	var out []bookingDomain.UserBooking
	for _, b := range r.bookings {
		if b.UserID() == userID {
			out = append(out, bookingDomain.UserBooking{
				Booking:  b,
				RoomName: r.roomNames[b.RoomID()],
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Booking.StartTime().After(out[j].Booking.StartTime())
	})
	return out, nil
}

func (r *memBookingRepo) FindByRoomAndDate(_ context.Context, roomID uuid.UUID, date time.Time) ([]bookingDomain.RoomDayBooking, error) {
	var out []bookingDomain.RoomDayBooking
	for _, b := range r.bookings {
		if b.RoomID() != roomID || !sameCalendarDate(b.StartTime(), date) {
			continue
		}
		row := bookingDomain.RoomDayBooking{Booking: b}
		if u, ok := r.users[b.UserID()]; ok {
			row.UserName = u.Name()
			row.UserEmail = u.Email()
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Booking.StartTime().Before(out[j].Booking.StartTime())
	})
	return out, nil
}

func (r *memBookingRepo) FindByDate(_ context.Context, date time.Time) ([]bookingDomain.DayBooking, error) {
	var out []bookingDomain.DayBooking
	for _, b := range r.bookings {
		if !sameCalendarDate(b.StartTime(), date) {
			continue
		}
		row := bookingDomain.DayBooking{
			Booking:  b,
			RoomName: r.roomNames[b.RoomID()],
		}
		if u, ok := r.users[b.UserID()]; ok {
			row.UserName = u.Name()
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RoomName != out[j].RoomName {
			return out[i].RoomName < out[j].RoomName
		}
		return out[i].Booking.StartTime().Before(out[j].Booking.StartTime())
	})
	return out, nil
}

func (r *memBookingRepo) DeleteByOwner(_ context.Context, bookingID, userID uuid.UUID) (*bookingDomain.Booking, error) {
	for i, b := range r.bookings {
		if b.ID() == bookingID && b.IsOwnedBy(userID) {
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return b, nil
		}
	}
	return nil, domain.NewNotFoundError("Booking", bookingID.String())
}

func sameCalendarDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

type memRoomRepo struct {
	rooms map[uuid.UUID]*roomDomain.Room
}

func newMemRoomRepo() *memRoomRepo {
	return &memRoomRepo{rooms: make(map[uuid.UUID]*roomDomain.Room)}
}

func (r *memRoomRepo) FindByID(_ context.Context, id uuid.UUID) (*roomDomain.Room, error) {
	if room, ok := r.rooms[id]; ok {
		return room, nil
	}
	return nil, domain.NewNotFoundError("Room", id.String())
}

func (r *memRoomRepo) ListAll(_ context.Context) ([]*roomDomain.Room, error) {
	out := make([]*roomDomain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, room)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out, nil
}

func (r *memRoomRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.rooms)), nil
}

func (r *memRoomRepo) Save(_ context.Context, room *roomDomain.Room) error {
	r.rooms[room.ID()] = room
	return nil
}

type memUserRepo struct {
	users map[uuid.UUID]*userDomain.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*userDomain.User)}
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*userDomain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.NewNotFoundError("User", id.String())
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*userDomain.User, error) {
	for _, u := range r.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, domain.NewNotFoundError("User", email)
}

func (r *memUserRepo) Save(_ context.Context, u *userDomain.User) error {
	for _, existing := range r.users {
		if existing.Email() == u.Email() {
			return domain.NewConflictError("email already registered")
		}
	}
	r.users[u.ID()] = u
	return nil
}

func (r *memUserRepo) Update(_ context.Context, u *userDomain.User) error {
	if _, ok := r.users[u.ID()]; !ok {
		return domain.NewNotFoundError("User", u.ID().String())
	}
	r.users[u.ID()] = u
	return nil
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	published []kafka.CloudEvent
}

func (p *recordingPublisher) PublishEvent(_ context.Context, _ string, event kafka.CloudEvent) error {
	p.published = append(p.published, event)
	return nil
}

func (p *recordingPublisher) eventTypes() []string {
	types := make([]string, len(p.published))
	for i, e := range p.published {
		types[i] = e.Type
	}
	return types
}
