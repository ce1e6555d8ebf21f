package animals

import (
	"context"
	"errors"
	"strings"

	"animals-api/internal/domain/locomotion"
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

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (Animal, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (Animal, error) {
	return s.repo.Create(ctx, in)
}

// Update no verifica que LocomotionModeID exista.
func (s *Service) Update(ctx context.Context, id int, in Input) (Animal, error) {
	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

// LocomotionModesOf devuelve los modos de desplazamiento de los animales con ese nombre.
// Referencias a modos eliminados se omiten. Un nombre solo con espacios es
// ErrInvalidInput; si no, se compara el texto tal cual.
func (s *Service) LocomotionModesOf(ctx context.Context, animalName string) ([]locomotion.Mode, error) {
	if strings.TrimSpace(animalName) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.LocomotionModesOf(ctx, animalName)
}
