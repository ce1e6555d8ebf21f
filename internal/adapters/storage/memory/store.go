package memory

import (
	"sync"

	"animals-api/internal/domain/animals"
	"animals-api/internal/domain/locomotion"

	"golang.org/x/text/cases"
)

// Store es el dueño único de ambas colecciones.
// Un solo mutex protege animales, modos y sus contadores: el join lee las dos
// colecciones en el mismo instante.
type Store struct {
	mu sync.Mutex

	animals      []animals.Animal
	nextAnimalID int

	modes      []locomotion.Mode
	nextModeID int
}

// Seed son los datos iniciales del proceso.
type Seed struct {
	Animals         []animals.Animal
	LocomotionModes []locomotion.Mode
}

// NewStore copia el seed y deja cada contador en el tamaño de su colección
// (pre-incremento: el primer alta recibe len+1). Si el seed trae ids mayores
// que su tamaño, el contador arranca en el máximo para no repetirlos.
func NewStore(seed Seed) *Store {
	s := &Store{
		animals: append(make([]animals.Animal, 0, len(seed.Animals)), seed.Animals...),
		modes:   append(make([]locomotion.Mode, 0, len(seed.LocomotionModes)), seed.LocomotionModes...),
	}

	s.nextAnimalID = len(s.animals)
	for _, a := range s.animals {
		s.nextAnimalID = max(s.nextAnimalID, a.ID)
	}
	s.nextModeID = len(s.modes)
	for _, m := range s.modes {
		s.nextModeID = max(s.nextModeID, m.ID)
	}

	return s
}

func (s *Store) Animals() animals.Repository {
	return &animalRepo{s: s}
}

func (s *Store) LocomotionModes() locomotion.Repository {
	return &modeRepo{s: s}
}

// Counts devuelve el tamaño de ambas colecciones en una sola lectura.
func (s *Store) Counts() (animalCount, modeCount int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.animals), len(s.modes)
}

// Los helpers *Index asumen el lock tomado.

func (s *Store) animalIndex(id int) int {
	for i, a := range s.animals {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) modeIndex(id int) int {
	for i, m := range s.modes {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// sameText compara sin distinguir mayúsculas usando case folding Unicode,
// independiente del locale del proceso.
func sameText(fold cases.Caser, a, b string) bool {
	return fold.String(a) == fold.String(b)
}
