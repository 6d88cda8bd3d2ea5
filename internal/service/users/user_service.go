package users

import (
	"context"

	"stayvista/internal/domain"
	"stayvista/internal/repository"
)

type UserUseCase interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpsertByEmail(ctx context.Context, email string, fields map[string]any) (*UpsertResult, error)
}

// UpsertResult carries either the untouched pre-existing record or the
// acknowledgement of a fresh insert, never both.
type UpsertResult struct {
	Existing *domain.User
	Ack      *domain.UpdateAck
}

type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// UpsertByEmail is first-write-wins: when a record already exists it is
// returned unchanged and no write happens.
func (s *UserService) UpsertByEmail(ctx context.Context, email string, fields map[string]any) (*UpsertResult, error) {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &UpsertResult{Existing: existing}, nil
	}

	ack, err := s.repo.Upsert(ctx, email, fields)
	if err != nil {
		return nil, err
	}
	return &UpsertResult{Ack: ack}, nil
}

var _ UserUseCase = (*UserService)(nil)
