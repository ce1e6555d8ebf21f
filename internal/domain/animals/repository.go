package animals

import (
	"context"
	"errors"

	"animals-api/internal/domain/locomotion"
)

var (
	ErrNotFound = errors.New("animal not found")
)

type Repository interface {
	List(ctx context.Context) ([]Animal, error)
	GetByID(ctx context.Context, id int) (Animal, error)
	Create(ctx context.Context, in Input) (Animal, error)
	Update(ctx context.Context, id int, in Input) (Animal, error)
	Delete(ctx context.Context, id int) error

	// LocomotionModesOf resuelve los modos de todos los animales con ese nombre
	// leyendo ambas colecciones en una sola sección crítica.
	LocomotionModesOf(ctx context.Context, animalName string) ([]locomotion.Mode, error)
}
