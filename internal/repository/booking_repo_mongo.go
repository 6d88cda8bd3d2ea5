package repository

import (
	"context"

	"stayvista/internal/domain"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.InsertAck, error)
}

type MongoBookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) BookingRepository {
	return &MongoBookingRepository{coll: db.Collection("bookings")}
}

func (r *MongoBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return nil, err
	}
	return &domain.InsertAck{InsertedID: res.InsertedID}, nil
}

var _ BookingRepository = (*MongoBookingRepository)(nil)
