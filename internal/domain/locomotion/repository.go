package locomotion

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("locomotion mode not found")
)

// Repository agrupa las operaciones atómicas sobre la colección de modos.
// Cada método es una sección crítica completa.
type Repository interface {
	List(ctx context.Context) ([]Mode, error)
	GetByID(ctx context.Context, id int) (Mode, error)
	ListByCategory(ctx context.Context, category string) ([]Mode, error)
	Create(ctx context.Context, in Input) (Mode, error)
	Update(ctx context.Context, id int, in Input) (Mode, error)
	Delete(ctx context.Context, id int) error
}
