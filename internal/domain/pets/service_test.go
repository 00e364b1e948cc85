package pets_test

import (
	"context"
	"testing"

	"vet-clinic/internal/adapters/storage/memory"
	"vet-clinic/internal/domain/breeds"
	"vet-clinic/internal/domain/pets"
	"vet-clinic/internal/domain/users"
	"vet-clinic/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	svc     *pets.Service
	breedID int64
	ana     int64
	bob     int64
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()

	ur := memory.NewUserRepo(s)
	ana, err := ur.Create(ctx, users.User{Name: "Ana", Email: "ana@example.com", Role: users.RoleUser})
	require.NoError(t, err)
	bob, err := ur.Create(ctx, users.User{Name: "Bob", Email: "bob@example.com", Role: users.RoleUser})
	require.NoError(t, err)

	b, err := memory.NewBreedRepo(s).Create(ctx, breeds.Breed{Name: "Beagle"})
	require.NoError(t, err)

	return fixture{svc: pets.NewService(memory.NewPetRepo(s)), breedID: b.ID, ana: ana.ID, bob: bob.ID}
}

func TestCreate_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.ana, pets.Input{Name: "  ", Age: 1, BreedID: f.breedID})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = f.svc.Create(ctx, f.ana, pets.Input{Name: "Rex", Age: -1, BreedID: f.breedID})
	assert.ErrorIs(t, err, apperr.ErrInvalidInput)

	_, err = f.svc.Create(ctx, f.ana, pets.Input{Name: "Rex", Age: pets.MaxAge + 1, BreedID: f.breedID})
	require.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Equal(t, "age must be at most 100", apperr.Detail(err))

	_, err = f.svc.Create(ctx, f.ana, pets.Input{Name: "Rex", Age: 1, BreedID: 999})
	require.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Equal(t, "breed_id references a missing row", apperr.Detail(err))

	p, err := f.svc.Create(ctx, f.ana, pets.Input{Name: " Rex ", Age: 0, BreedID: f.breedID})
	require.NoError(t, err)
	assert.Equal(t, "Rex", p.Name)
	assert.Equal(t, f.ana, p.OwnerID)
	assert.Equal(t, "Beagle", p.Breed.Name)
	assert.Nil(t, p.Recommendations)
}

func TestOwnershipIsolation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	p, err := f.svc.Create(ctx, f.ana, pets.Input{Name: "Rex", Age: 2, BreedID: f.breedID})
	require.NoError(t, err)

	anaView := pets.Viewer{UserID: f.ana}
	bobView := pets.Viewer{UserID: f.bob}
	staffView := pets.Viewer{UserID: f.bob, ReadAll: true}

	// ajena => 404
	_, err = f.svc.Get(ctx, bobView, p.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	_, err = f.svc.Update(ctx, bobView, p.ID, pets.Input{Name: "Stolen", Age: 2, BreedID: f.breedID})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, f.svc.Delete(ctx, bobView, p.ID), apperr.ErrNotFound)

	list, err := f.svc.List(ctx, bobView, false)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = f.svc.List(ctx, anaView, true)
	assert.ErrorIs(t, err, pets.ErrReadAllDenied)

	all, err := f.svc.List(ctx, staffView, true)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	got, err := f.svc.Get(ctx, staffView, p.ID)
	require.NoError(t, err)
	assert.Equal(t, f.ana, got.OwnerID)
}

func TestUpdate_KeepsOwnerAndReplacesRecommendations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rec := "less food"

	p, err := f.svc.Create(ctx, f.ana, pets.Input{Name: "Rex", Age: 2, BreedID: f.breedID, Recommendations: &rec})
	require.NoError(t, err)

	// el personal edita; el dueño sigue siendo Ana
	staff := pets.Viewer{UserID: f.bob, ReadAll: true}
	up, err := f.svc.Update(ctx, staff, p.ID, pets.Input{Name: "Rex", Age: 3, BreedID: f.breedID})
	require.NoError(t, err)
	assert.Equal(t, f.ana, up.OwnerID)
	assert.Equal(t, 3, up.Age)
	assert.Nil(t, up.Recommendations)
}
