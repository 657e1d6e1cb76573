package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/arkagme/meeting-room-api/internal/domain"
	bookingDomain "github.com/arkagme/meeting-room-api/internal/domain/booking"
)

// BookingModel is the GORM model for the bookings table.
type BookingModel struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index"`
	RoomID            uuid.UUID      `gorm:"type:uuid;not null;index:idx_bookings_room_start,priority:1"`
	MeetingTitle      string         `gorm:"not null;size:255"`
	StartTime         time.Time      `gorm:"not null;index:idx_bookings_room_start,priority:2"`
	EndTime           time.Time      `gorm:"not null"`
	AttendeesCount    int            `gorm:"not null"`
	SelectedEquipment pq.StringArray `gorm:"type:text[]"`
	CreatedAt         time.Time      `gorm:"not null"`

	User *UserModel `gorm:"foreignKey:UserID"`
	Room *RoomModel `gorm:"foreignKey:RoomID"`
}

// TableName returns the table name for the GORM model.
func (BookingModel) TableName() string {
	return "bookings"
}

// GormBookingRepository is the GORM-based implementation of BookingRepository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// overlapCondition is the half-open interval overlap predicate: an existing
// booking [S', E') overlaps the requested [S, E) iff S' < E AND E' > S.
// Touching endpoints are not a conflict.
const overlapCondition = "room_id = ? AND start_time < ? AND end_time > ?"

// FindOverlapping retrieves bookings for the room overlapping [start, end).
func (r *GormBookingRepository) FindOverlapping(ctx context.Context, roomID uuid.UUID, start, end time.Time) ([]*bookingDomain.Booking, error) {
	var models []BookingModel
	if err := r.db.WithContext(ctx).
		Where(overlapCondition, roomID, end, start).
		Order("start_time ASC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find overlapping bookings: %w", err)
	}

	bookings := make([]*bookingDomain.Booking, len(models))
	for i, m := range models {
		bookings[i] = toDomainBooking(&m)
	}
	return bookings, nil
}

// Create persists a new booking. The overlap re-check and the insert run in
// one transaction serialized per room with a Postgres advisory lock, so two
// concurrent requests for the same room cannot both pass the check.
func (r *GormBookingRepository) Create(ctx context.Context, b *bookingDomain.Booking) error {
	model := toBookingModel(b)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Released automatically at transaction end.
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", model.RoomID.String()).Error; err != nil {
			return fmt.Errorf("failed to acquire room lock: %w", err)
		}

		var count int64
		if err := tx.Model(&BookingModel{}).
			Where(overlapCondition, model.RoomID, model.EndTime, model.StartTime).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check for conflicts: %w", err)
		}
		if count > 0 {
			return bookingDomain.ErrConflict
		}

		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to save booking: %w", err)
		}
		return nil
	})
}

// FindByUser retrieves a user's bookings with room names, newest start first.
func (r *GormBookingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]bookingDomain.UserBooking, error) {
	type row struct {
		BookingModel
		RoomName string
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.*, rooms.name AS room_name").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Where("bookings.user_id = ?", userID).
		Order("bookings.start_time DESC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find user bookings: %w", err)
	}

	result := make([]bookingDomain.UserBooking, len(rows))
	for i, rw := range rows {
		result[i] = bookingDomain.UserBooking{
			Booking:  toDomainBooking(&rw.BookingModel),
			RoomName: rw.RoomName,
		}
	}
	return result, nil
}

// FindByRoomAndDate retrieves a room's bookings on the given calendar date
// with booker identities, earliest start first.
func (r *GormBookingRepository) FindByRoomAndDate(ctx context.Context, roomID uuid.UUID, date time.Time) ([]bookingDomain.RoomDayBooking, error) {
	type row struct {
		BookingModel
		UserName  string
		UserEmail string
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.*, users.name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = bookings.user_id").
		Where("bookings.room_id = ? AND DATE(bookings.start_time) = ?", roomID, date.Format("2006-01-02")).
		Order("bookings.start_time ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find room bookings: %w", err)
	}

	result := make([]bookingDomain.RoomDayBooking, len(rows))
	for i, rw := range rows {
		result[i] = bookingDomain.RoomDayBooking{
			Booking:   toDomainBooking(&rw.BookingModel),
			UserName:  rw.UserName,
			UserEmail: rw.UserEmail,
		}
	}
	return result, nil
}

// FindByDate retrieves all bookings on the given calendar date with room and
// booker names, ordered by room then start time.
func (r *GormBookingRepository) FindByDate(ctx context.Context, date time.Time) ([]bookingDomain.DayBooking, error) {
	type row struct {
		BookingModel
		RoomName string
		UserName string
	}

	var rows []row
	if err := r.db.WithContext(ctx).
		Table("bookings").
		Select("bookings.*, rooms.name AS room_name, users.name AS user_name").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Joins("JOIN users ON users.id = bookings.user_id").
		Where("DATE(bookings.start_time) = ?", date.Format("2006-01-02")).
		Order("rooms.name, bookings.start_time").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find bookings by date: %w", err)
	}

	result := make([]bookingDomain.DayBooking, len(rows))
	for i, rw := range rows {
		result[i] = bookingDomain.DayBooking{
			Booking:  toDomainBooking(&rw.BookingModel),
			RoomName: rw.RoomName,
			UserName: rw.UserName,
		}
	}
	return result, nil
}

// DeleteByOwner deletes a booking owned by the given user and returns it.
func (r *GormBookingRepository) DeleteByOwner(ctx context.Context, bookingID, userID uuid.UUID) (*bookingDomain.Booking, error) {
	var model BookingModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", bookingID, userID).First(&model).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return domain.NewNotFoundError("Booking", bookingID.String())
			}
			return fmt.Errorf("failed to find booking for deletion: %w", err)
		}
		if err := tx.Delete(&BookingModel{}, "id = ?", bookingID).Error; err != nil {
			return fmt.Errorf("failed to delete booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toDomainBooking(&model), nil
}

// --- Conversion Helpers ---

func toBookingModel(b *bookingDomain.Booking) *BookingModel {
	return &BookingModel{
		ID:                b.ID(),
		UserID:            b.UserID(),
		RoomID:            b.RoomID(),
		MeetingTitle:      b.MeetingTitle(),
		StartTime:         b.StartTime(),
		EndTime:           b.EndTime(),
		AttendeesCount:    b.AttendeesCount(),
		SelectedEquipment: pq.StringArray(b.SelectedEquipment()),
		CreatedAt:         b.CreatedAt(),
	}
}

func toDomainBooking(m *BookingModel) *bookingDomain.Booking {
	return bookingDomain.Reconstruct(
		m.ID,
		m.UserID,
		m.RoomID,
		m.MeetingTitle,
		m.StartTime,
		m.EndTime,
		m.AttendeesCount,
		[]string(m.SelectedEquipment),
		m.CreatedAt,
	)
}
