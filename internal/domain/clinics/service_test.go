package clinics_test

import (
	"context"
	"testing"

	"vet-clinic/internal/adapters/storage/memory"
	"vet-clinic/internal/domain/clinics"
	"vet-clinic/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_Validation(t *testing.T) {
	svc := clinics.NewService(memory.NewClinicRepo(memory.NewStore()))
	ctx := context.Background()

	cases := []struct {
		in     clinics.Input
		detail string
	}{
		{clinics.Input{Address: "Main St 1", Phone: "555"}, "name is required"},
		{clinics.Input{Name: "Central", Phone: "555"}, "address is required"},
		{clinics.Input{Name: "Central", Address: "Main St 1", Phone: "  "}, "phone is required"},
	}
	for _, tc := range cases {
		_, err := svc.Create(ctx, tc.in)
		require.ErrorIs(t, err, apperr.ErrInvalidInput)
		assert.Equal(t, tc.detail, apperr.Detail(err))
	}

	c, err := svc.Create(ctx, clinics.Input{Name: " Central ", Address: "Main St 1", Phone: "555"})
	require.NoError(t, err)
	assert.Equal(t, "Central", c.Name)

	u, err := svc.Update(ctx, c.ID, clinics.Input{Name: "Central", Address: "Main St 2", Phone: "555"})
	require.NoError(t, err)
	assert.Equal(t, "Main St 2", u.Address)

	require.NoError(t, svc.Delete(ctx, c.ID))
	assert.ErrorIs(t, svc.Delete(ctx, c.ID), apperr.ErrNotFound)
	_, err = svc.GetByID(ctx, c.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
