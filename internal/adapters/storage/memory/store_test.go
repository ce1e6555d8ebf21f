package memory

import (
	"context"
	"sync"
	"testing"

	"animals-api/internal/domain/animals"
	"animals-api/internal/domain/locomotion"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateUsesPreIncrementFromSeedSize(t *testing.T) {
	ctx := context.Background()
	s := NewStore(DefaultSeed())

	a, err := s.Animals().Create(ctx, animals.Input{Name: "Luna", Species: "Gata", Domesticable: true, LocomotionModeID: 1})
	require.NoError(t, err)
	assert.Equal(t, 5, a.ID)

	m, err := s.LocomotionModes().Create(ctx, locomotion.Input{Category: "Reptante", Speed: 2})
	require.NoError(t, err)
	assert.Equal(t, 4, m.ID)
}

func TestStore_CounterStartsAboveSparseSeedIDs(t *testing.T) {
	s := NewStore(Seed{
		Animals: []animals.Animal{{ID: 10, Name: "Viejo"}},
	})

	a, err := s.Animals().Create(context.Background(), animals.Input{Name: "Nuevo"})
	require.NoError(t, err)
	assert.Equal(t, 11, a.ID)
}

func TestStore_IDsAreNeverReused(t *testing.T) {
	ctx := context.Background()
	repo := NewStore(DefaultSeed()).Animals()

	seen := map[int]bool{1: true, 2: true, 3: true, 4: true}
	maxID := 4

	for i := 0; i < 5; i++ {
		a, err := repo.Create(ctx, animals.Input{Name: "tmp"})
		require.NoError(t, err)
		assert.False(t, seen[a.ID], "id %d reused", a.ID)
		assert.Greater(t, a.ID, maxID)
		seen[a.ID] = true
		maxID = a.ID

		// Borrar el recién creado no libera su id.
		require.NoError(t, repo.Delete(ctx, a.ID))
	}

	// Borrar ids bajos tampoco.
	require.NoError(t, repo.Delete(ctx, 1))
	a, err := repo.Create(ctx, animals.Input{Name: "after-delete"})
	require.NoError(t, err)
	assert.Equal(t, maxID+1, a.ID)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	ids := map[int]int{}
	for _, it := range items {
		ids[it.ID]++
	}
	for id, n := range ids {
		assert.Equal(t, 1, n, "duplicated id %d", id)
	}
}

func TestStore_UpdatePreservesIdentityAndPosition(t *testing.T) {
	ctx := context.Background()
	repo := NewStore(DefaultSeed()).Animals()

	in := animals.Input{Name: "Rui II", Species: "Gato montés", Domesticable: false, LocomotionModeID: 99}
	updated, err := repo.Update(ctx, 2, in)
	require.NoError(t, err)
	assert.Equal(t, animals.Animal{ID: 2, Name: "Rui II", Species: "Gato montés", Domesticable: false, LocomotionModeID: 99}, updated)

	got, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, updated, got)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, 2, items[1].ID)
	assert.Equal(t, "Rui II", items[1].Name)
}

func TestStore_UpdateMissingDoesNotMutate(t *testing.T) {
	ctx := context.Background()
	s := NewStore(DefaultSeed())

	before, _ := s.LocomotionModes().List(ctx)

	_, err := s.LocomotionModes().Update(ctx, 9999, locomotion.Input{Category: "x", Speed: 1})
	assert.ErrorIs(t, err, locomotion.ErrNotFound)

	after, _ := s.LocomotionModes().List(ctx)
	assert.Equal(t, before, after)
}

func TestStore_DeleteTwiceReportsNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewStore(DefaultSeed())

	require.NoError(t, s.LocomotionModes().Delete(ctx, 3))
	assert.ErrorIs(t, s.LocomotionModes().Delete(ctx, 3), locomotion.ErrNotFound)
	assert.ErrorIs(t, s.LocomotionModes().Delete(ctx, 9999), locomotion.ErrNotFound)
	assert.ErrorIs(t, s.Animals().Delete(ctx, 9999), animals.ErrNotFound)

	_, modes := s.Counts()
	assert.Equal(t, 2, modes)

	_, err := s.LocomotionModes().GetByID(ctx, 3)
	assert.ErrorIs(t, err, locomotion.ErrNotFound)
}

func TestStore_DeleteKeepsOrderOfRemaining(t *testing.T) {
	ctx := context.Background()
	repo := NewStore(DefaultSeed()).Animals()

	require.NoError(t, repo.Delete(ctx, 2))

	items, err := repo.List(ctx)
	require.NoError(t, err)
	ids := make([]int, 0, len(items))
	for _, a := range items {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int{1, 3, 4}, ids)
}

func TestStore_ListReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	s := NewStore(DefaultSeed())

	items, err := s.Animals().List(ctx)
	require.NoError(t, err)
	items[0].Name = "mutated"

	got, err := s.Animals().GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Cholito", got.Name)
}

func TestStore_LocomotionModesOf_Rui(t *testing.T) {
	s := NewStore(DefaultSeed())

	modes, err := s.Animals().LocomotionModesOf(context.Background(), "Rui")
	require.NoError(t, err)
	assert.Equal(t, []locomotion.Mode{{ID: 1, Category: "Terrestre", Speed: 50.0}}, modes)
}

func TestStore_LocomotionModesOf_CaseInsensitiveAndRepeatedNames(t *testing.T) {
	ctx := context.Background()
	s := NewStore(DefaultSeed())

	_, err := s.Animals().Create(ctx, animals.Input{Name: "rui", Species: "Pato", LocomotionModeID: 2})
	require.NoError(t, err)

	modes, err := s.Animals().LocomotionModesOf(ctx, "RUI")
	require.NoError(t, err)
	require.Len(t, modes, 2)
	assert.Equal(t, 1, modes[0].ID)
	assert.Equal(t, 2, modes[1].ID)

	// Con acentos también.
	modes, err = s.Animals().LocomotionModesOf(ctx, "PÁJARO")
	require.NoError(t, err)
	require.Len(t, modes, 1)
	assert.Equal(t, 2, modes[0].ID)
}

func TestStore_LocomotionModesOf_SkipsDanglingReferences(t *testing.T) {
	ctx := context.Background()
	s := NewStore(DefaultSeed())

	require.NoError(t, s.LocomotionModes().Delete(ctx, 3))

	modes, err := s.Animals().LocomotionModesOf(ctx, "Nemo")
	require.NoError(t, err)
	assert.Empty(t, modes)
	assert.NotNil(t, modes)

	modes, err = s.Animals().LocomotionModesOf(ctx, "nadie")
	require.NoError(t, err)
	assert.Empty(t, modes)
}

func TestStore_ListByCategory_CaseInsensitive(t *testing.T) {
	ctx := context.Background()
	repo := NewStore(DefaultSeed()).LocomotionModes()

	upper, err := repo.ListByCategory(ctx, "AÉREO")
	require.NoError(t, err)
	lower, err := repo.ListByCategory(ctx, "aéreo")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	require.Len(t, upper, 1)
	assert.Equal(t, 2, upper[0].ID)

	none, err := repo.ListByCategory(ctx, "Aereo")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_ConcurrentCreates(t *testing.T) {
	const k = 200

	ctx := context.Background()
	s := NewStore(Seed{})
	repo := s.LocomotionModes()

	var wg sync.WaitGroup
	ids := make(chan int, k)
	for i := 0; i < k; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m, err := repo.Create(ctx, locomotion.Input{Category: "Terrestre", Speed: 1})
			if err == nil {
				ids <- m.ID
			}
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicated id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, k)
	for id := 1; id <= k; id++ {
		assert.True(t, seen[id], "missing id %d", id)
	}

	_, modes := s.Counts()
	assert.Equal(t, k, modes)
}

func TestStore_JoinIsConsistentUnderConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s := NewStore(DefaultSeed())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			m, _ := s.LocomotionModes().Create(ctx, locomotion.Input{Category: "Aéreo", Speed: 10})
			_, _ = s.Animals().Create(ctx, animals.Input{Name: "Bandada", LocomotionModeID: m.ID})
		}()
		go func() {
			defer wg.Done()
			_, _ = s.Animals().LocomotionModesOf(ctx, "bandada")
		}()
		go func() {
			defer wg.Done()
			_, _ = s.LocomotionModes().ListByCategory(ctx, "aéreo")
		}()
	}
	wg.Wait()

	modes, err := s.Animals().LocomotionModesOf(ctx, "BANDADA")
	require.NoError(t, err)
	assert.Len(t, modes, 50)

	animalCount, modeCount := s.Counts()
	assert.Equal(t, 54, animalCount)
	assert.Equal(t, 53, modeCount)
}
