package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingDomain "github.com/arkagme/meeting-room-api/internal/domain/booking"
	roomDomain "github.com/arkagme/meeting-room-api/internal/domain/room"
	userDomain "github.com/arkagme/meeting-room-api/internal/domain/user"
	"github.com/arkagme/meeting-room-api/internal/events"
	"github.com/arkagme/meeting-room-api/internal/platform/kafka"
)

const eventSource = "meeting-room-api"

// EventPublisher publishes CloudEvents. Satisfied by *kafka.Producer.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic string, event kafka.CloudEvent) error
}

// CreateBookingRequest holds the data needed to create a new booking.
type CreateBookingRequest struct {
	UserID            uuid.UUID `json:"userId" binding:"required"`
	RoomID            uuid.UUID `json:"roomId" binding:"required"`
	MeetingTitle      string    `json:"meetingTitle" binding:"required"`
	StartTime         time.Time `json:"startTime" binding:"required"`
	EndTime           time.Time `json:"endTime" binding:"required"`
	AttendeesCount    int       `json:"attendeesCount" binding:"required,min=1"`
	SelectedEquipment []string  `json:"selectedEquipment"`
}

// BookingDTO is the API response representation of a booking.
type BookingDTO struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"userId"`
	RoomID            uuid.UUID `json:"roomId"`
	MeetingTitle      string    `json:"meetingTitle"`
	StartTime         time.Time `json:"startTime"`
	EndTime           time.Time `json:"endTime"`
	AttendeesCount    int       `json:"attendeesCount"`
	SelectedEquipment []string  `json:"selectedEquipment"`
	CreatedAt         time.Time `json:"createdAt"`
}

// UserBookingDTO is a booking with its room name, for per-user listings.
type UserBookingDTO struct {
	BookingDTO
	RoomName string `json:"roomName"`
}

// DayBookingDTO is a booking with room and booker names, for the daily
// overview.
type DayBookingDTO struct {
	BookingDTO
	RoomName string `json:"roomName"`
	UserName string `json:"userName"`
}

// BookingService orchestrates booking use cases: creation with schedule and
// conflict validation, cancellation, and the listing queries.
type BookingService struct {
	bookings  bookingDomain.BookingRepository
	rooms     roomDomain.RoomRepository
	users     userDomain.UserRepository
	schedule  *bookingDomain.Schedule
	clock     bookingDomain.Clock
	publisher EventPublisher
	logger    *zap.Logger
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings bookingDomain.BookingRepository,
	rooms roomDomain.RoomRepository,
	users userDomain.UserRepository,
	clock bookingDomain.Clock,
	publisher EventPublisher,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		rooms:     rooms,
		users:     users,
		schedule:  bookingDomain.NewSchedule(clock),
		clock:     clock,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateBooking validates a booking request against the schedule rules and
// existing bookings, then persists it. The repository re-checks for conflicts
// atomically with the insert, so a concurrent overlapping request cannot slip
// through between the check here and the write.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*BookingDTO, error) {
	if _, err := s.users.FindByID(ctx, req.UserID); err != nil {
		return nil, err
	}
	if _, err := s.rooms.FindByID(ctx, req.RoomID); err != nil {
		return nil, err
	}

	if err := s.schedule.ValidateWindow(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	overlapping, err := s.bookings.FindOverlapping(ctx, req.RoomID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("failed to check for conflicts: %w", err)
	}
	if len(overlapping) > 0 {
		return nil, bookingDomain.ErrConflict
	}

	b, err := bookingDomain.NewBooking(
		req.UserID,
		req.RoomID,
		req.MeetingTitle,
		req.StartTime,
		req.EndTime,
		req.AttendeesCount,
		req.SelectedEquipment,
	)
	if err != nil {
		return nil, err
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("booking created",
		zap.String("booking_id", b.ID().String()),
		zap.String("room_id", b.RoomID().String()),
		zap.Time("start_time", b.StartTime()),
	)

	publishServiceEvent(ctx, s.publisher, s.logger, events.BookingCreated, events.BookingCreatedEvent{
		BookingID:      b.ID(),
		UserID:         b.UserID(),
		RoomID:         b.RoomID(),
		MeetingTitle:   b.MeetingTitle(),
		StartTime:      b.StartTime(),
		EndTime:        b.EndTime(),
		AttendeesCount: b.AttendeesCount(),
		OccurredAt:     time.Now().UTC(),
	})

	result := toBookingDTO(b)
	return &result, nil
}

// CancelBooking deletes a booking if it belongs to the requesting user.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID, userID uuid.UUID) error {
	b, err := s.bookings.DeleteByOwner(ctx, bookingID, userID)
	if err != nil {
		return err
	}

	s.logger.Info("booking cancelled",
		zap.String("booking_id", bookingID.String()),
		zap.String("user_id", userID.String()),
	)

	publishServiceEvent(ctx, s.publisher, s.logger, events.BookingCancelled, events.BookingCancelledEvent{
		BookingID:  b.ID(),
		UserID:     b.UserID(),
		RoomID:     b.RoomID(),
		StartTime:  b.StartTime(),
		EndTime:    b.EndTime(),
		OccurredAt: time.Now().UTC(),
	})
	return nil
}

// GetUserBookings returns all bookings for a user, newest start first. An
// unknown user simply gets an empty list.
func (s *BookingService) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]UserBookingDTO, error) {
	rows, err := s.bookings.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user bookings: %w", err)
	}

	dtos := make([]UserBookingDTO, len(rows))
	for i, row := range rows {
		dtos[i] = UserBookingDTO{
			BookingDTO: toBookingDTO(row.Booking),
			RoomName:   row.RoomName,
		}
	}
	return dtos, nil
}

// GetTodayBookings returns all bookings on the current date across rooms,
// ordered by room then start time.
func (s *BookingService) GetTodayBookings(ctx context.Context) ([]DayBookingDTO, error) {
	rows, err := s.bookings.FindByDate(ctx, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to get today's bookings: %w", err)
	}

	dtos := make([]DayBookingDTO, len(rows))
	for i, row := range rows {
		dtos[i] = DayBookingDTO{
			BookingDTO: toBookingDTO(row.Booking),
			RoomName:   row.RoomName,
			UserName:   row.UserName,
		}
	}
	return dtos, nil
}

// --- Helpers ---

func toBookingDTO(b *bookingDomain.Booking) BookingDTO {
	return BookingDTO{
		ID:                b.ID(),
		UserID:            b.UserID(),
		RoomID:            b.RoomID(),
		MeetingTitle:      b.MeetingTitle(),
		StartTime:         b.StartTime(),
		EndTime:           b.EndTime(),
		AttendeesCount:    b.AttendeesCount(),
		SelectedEquipment: b.SelectedEquipment(),
		CreatedAt:         b.CreatedAt(),
	}
}

// publishServiceEvent publishes a domain event. Publication is best-effort:
// a failure is logged and never fails the request that triggered it.
func publishServiceEvent(ctx context.Context, publisher EventPublisher, logger *zap.Logger, eventType string, data interface{}) {
	cloudEvent, err := kafka.NewCloudEvent(eventSource, eventType, data)
	if err != nil {
		logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := publisher.PublishEvent(ctx, events.TopicBookingEvents, cloudEvent); err != nil {
		logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
