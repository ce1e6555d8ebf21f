package memory

import (
	"context"
	"slices"

	"animals-api/internal/domain/locomotion"

	"golang.org/x/text/cases"
)

type modeRepo struct {
	s *Store
}

func (r *modeRepo) List(ctx context.Context) ([]locomotion.Mode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return slices.Clone(r.s.modes), nil
}

func (r *modeRepo) GetByID(ctx context.Context, id int) (locomotion.Mode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	idx := r.s.modeIndex(id)
	if idx < 0 {
		return locomotion.Mode{}, locomotion.ErrNotFound
	}
	return r.s.modes[idx], nil
}

func (r *modeRepo) ListByCategory(ctx context.Context, category string) ([]locomotion.Mode, error) {
	fold := cases.Fold()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]locomotion.Mode, 0)
	for _, m := range r.s.modes {
		if sameText(fold, m.Category, category) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *modeRepo) Create(ctx context.Context, in locomotion.Input) (locomotion.Mode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextModeID++
	m := locomotion.Mode{ID: r.s.nextModeID, Category: in.Category, Speed: in.Speed}
	r.s.modes = append(r.s.modes, m)
	return m, nil
}

func (r *modeRepo) Update(ctx context.Context, id int, in locomotion.Input) (locomotion.Mode, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	idx := r.s.modeIndex(id)
	if idx < 0 {
		return locomotion.Mode{}, locomotion.ErrNotFound
	}

	m := locomotion.Mode{ID: id, Category: in.Category, Speed: in.Speed}
	r.s.modes[idx] = m
	return m, nil
}

// Delete no toca animales que referencian el modo.
func (r *modeRepo) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	idx := r.s.modeIndex(id)
	if idx < 0 {
		return locomotion.ErrNotFound
	}
	r.s.modes = slices.Delete(r.s.modes, idx, idx+1)
	return nil
}
