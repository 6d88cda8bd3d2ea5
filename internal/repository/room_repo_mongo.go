package repository

import (
	"context"
	"errors"

	"stayvista/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RoomRepository interface {
	List(ctx context.Context) ([]domain.Room, error)
	ListByHostEmail(ctx context.Context, email string) ([]domain.Room, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) (*domain.InsertAck, error)
	SetBookedStatus(ctx context.Context, id primitive.ObjectID, booked bool) (*domain.UpdateAck, error)
}

type MongoRoomRepository struct {
	coll *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) RoomRepository {
	return &MongoRoomRepository{coll: db.Collection("rooms")}
}

func (r *MongoRoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoRoomRepository) ListByHostEmail(ctx context.Context, email string) ([]domain.Room, error) {
	return r.find(ctx, bson.M{"host.email": email})
}

func (r *MongoRoomRepository) find(ctx context.Context, filter bson.M) ([]domain.Room, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	rooms := make([]domain.Room, 0)
	if err := cur.All(ctx, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetByID returns (nil, nil) when no record matches.
func (r *MongoRoomRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Room, error) {
	var room domain.Room
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&room); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

func (r *MongoRoomRepository) Create(ctx context.Context, room *domain.Room) (*domain.InsertAck, error) {
	res, err := r.coll.InsertOne(ctx, room)
	if err != nil {
		return nil, err
	}
	return &domain.InsertAck{InsertedID: res.InsertedID}, nil
}

// SetBookedStatus updates only the booked flag of the room.
func (r *MongoRoomRepository) SetBookedStatus(ctx context.Context, id primitive.ObjectID, booked bool) (*domain.UpdateAck, error) {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"booked": booked}},
	)
	if err != nil {
		return nil, err
	}
	return &domain.UpdateAck{
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}, nil
}

var _ RoomRepository = (*MongoRoomRepository)(nil)
