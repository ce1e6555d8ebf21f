package memory

import (
	"animals-api/internal/domain/animals"
	"animals-api/internal/domain/locomotion"
)

// DefaultSeed son los datos con los que arranca el servicio.
func DefaultSeed() Seed {
	return Seed{
		LocomotionModes: []locomotion.Mode{
			{ID: 1, Category: locomotion.CategoryTerrestrial, Speed: 50.0},
			{ID: 2, Category: locomotion.CategoryAerial, Speed: 200.0},
			{ID: 3, Category: locomotion.CategoryAquatic, Speed: 30.0},
		},
		Animals: []animals.Animal{
			{ID: 1, Name: "Cholito", Species: "Perro", Domesticable: true, LocomotionModeID: 1},
			{ID: 2, Name: "Rui", Species: "Gato", Domesticable: true, LocomotionModeID: 1},
			{ID: 3, Name: "Nemo", Species: "Pez payaso", Domesticable: false, LocomotionModeID: 3},
			{ID: 4, Name: "Pájaro", Species: "Loro", Domesticable: true, LocomotionModeID: 2},
		},
	}
}
