package locomotion

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Mode, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (Mode, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByCategory filtra por tipo (case-insensitive). Sin coincidencias => lista vacía.
// Un tipo solo con espacios es ErrInvalidInput; si no, se compara el texto tal cual.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]Mode, error) {
	if strings.TrimSpace(category) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByCategory(ctx, category)
}

func (s *Service) Create(ctx context.Context, in Input) (Mode, error) {
	return s.repo.Create(ctx, in)
}

// Update reemplaza el modo completo; el id del path manda.
func (s *Service) Update(ctx context.Context, id int, in Input) (Mode, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
