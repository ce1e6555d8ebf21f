package memory

import (
	"context"
	"slices"

	"animals-api/internal/domain/animals"
	"animals-api/internal/domain/locomotion"

	"golang.org/x/text/cases"
)

type animalRepo struct {
	s *Store
}

func (r *animalRepo) List(ctx context.Context) ([]animals.Animal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return slices.Clone(r.s.animals), nil
}

func (r *animalRepo) GetByID(ctx context.Context, id int) (animals.Animal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	idx := r.s.animalIndex(id)
	if idx < 0 {
		return animals.Animal{}, animals.ErrNotFound
	}
	return r.s.animals[idx], nil
}

func (r *animalRepo) Create(ctx context.Context, in animals.Input) (animals.Animal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextAnimalID++
	a := newAnimal(r.s.nextAnimalID, in)
	r.s.animals = append(r.s.animals, a)
	return a, nil
}

func (r *animalRepo) Update(ctx context.Context, id int, in animals.Input) (animals.Animal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	idx := r.s.animalIndex(id)
	if idx < 0 {
		return animals.Animal{}, animals.ErrNotFound
	}

	// Mismo slot, mismo id.
	a := newAnimal(id, in)
	r.s.animals[idx] = a
	return a, nil
}

func (r *animalRepo) Delete(ctx context.Context, id int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	idx := r.s.animalIndex(id)
	if idx < 0 {
		return animals.ErrNotFound
	}
	r.s.animals = slices.Delete(r.s.animals, idx, idx+1)
	return nil
}

func (r *animalRepo) LocomotionModesOf(ctx context.Context, animalName string) ([]locomotion.Mode, error) {
	fold := cases.Fold()

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]locomotion.Mode, 0)
	for _, a := range r.s.animals {
		if !sameText(fold, a.Name, animalName) {
			continue
		}
		// Referencias colgantes (modo eliminado) se omiten.
		if idx := r.s.modeIndex(a.LocomotionModeID); idx >= 0 {
			out = append(out, r.s.modes[idx])
		}
	}
	return out, nil
}

func newAnimal(id int, in animals.Input) animals.Animal {
	return animals.Animal{
		ID:               id,
		Name:             in.Name,
		Species:          in.Species,
		Domesticable:     in.Domesticable,
		LocomotionModeID: in.LocomotionModeID,
	}
}
