package bookings

import (
	"context"
	"fmt"
	"log"

	"stayvista/internal/domain"
	"stayvista/internal/kafka"
	"stayvista/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingUseCase interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.InsertAck, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	producer           Producer
	bookingTopic       string
	notificationsTopic string
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(bookings repository.BookingRepository, producer Producer, bookingTopic string, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		producer:     producer,
		bookingTopic: bookingTopic,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Create inserts the booking as given and publishes a booking_created
// event. Publish failures are logged but never fail the request.
func (s *BookingService) Create(ctx context.Context, booking *domain.Booking) (*domain.InsertAck, error) {
	ack, err := s.bookings.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	if err := s.publish(ctx, "booking_created", ack.InsertedID, booking); err != nil {
		log.Printf("WARNING: failed to publish booking_created event for room %s: %v", booking.RoomID, err)
	}
	return ack, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, insertedID any, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}

	key := eventKey(insertedID)
	event := kafka.BookingEvent{
		Type:       eventType,
		BookingID:  key,
		RoomID:     booking.RoomID,
		GuestEmail: booking.Guest.Email,
		Title:      booking.Title,
		Price:      booking.Price,
		From:       booking.From,
		To:         booking.To,
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, key, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, key, event)
	}
	return nil
}

func eventKey(insertedID any) string {
	if oid, ok := insertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprintf("%v", insertedID)
}

var _ BookingUseCase = (*BookingService)(nil)
