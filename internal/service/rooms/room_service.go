package rooms

import (
	"context"

	"stayvista/internal/domain"
	"stayvista/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RoomUseCase interface {
	List(ctx context.Context) ([]domain.Room, error)
	ListByHostEmail(ctx context.Context, email string) ([]domain.Room, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Room, error)
	Create(ctx context.Context, room *domain.Room) (*domain.InsertAck, error)
	SetBookedStatus(ctx context.Context, id primitive.ObjectID, booked bool) (*domain.UpdateAck, error)
}

type Cache interface {
	GetRooms(ctx context.Context) ([]domain.Room, error)
	SetRooms(ctx context.Context, rooms []domain.Room) error
	InvalidateRooms(ctx context.Context) error
}

type RoomService struct {
	repo  repository.RoomRepository
	cache Cache
}

func NewRoomService(repo repository.RoomRepository, cache Cache) *RoomService {
	return &RoomService{repo: repo, cache: cache}
}

func (s *RoomService) List(ctx context.Context) ([]domain.Room, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetRooms(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetRooms(ctx, rooms)
	}
	return rooms, nil
}

func (s *RoomService) ListByHostEmail(ctx context.Context, email string) ([]domain.Room, error) {
	return s.repo.ListByHostEmail(ctx, email)
}

func (s *RoomService) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *RoomService) Create(ctx context.Context, room *domain.Room) (*domain.InsertAck, error) {
	ack, err := s.repo.Create(ctx, room)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateRooms(ctx)
	}
	return ack, nil
}

func (s *RoomService) SetBookedStatus(ctx context.Context, id primitive.ObjectID, booked bool) (*domain.UpdateAck, error) {
	ack, err := s.repo.SetBookedStatus(ctx, id, booked)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.InvalidateRooms(ctx)
	}
	return ack, nil
}

var _ RoomUseCase = (*RoomService)(nil)
