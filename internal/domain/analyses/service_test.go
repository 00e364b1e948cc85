package analyses_test

import (
	"context"
	"testing"

	"vet-clinic/internal/adapters/storage/memory"
	"vet-clinic/internal/domain/analyses"
	"vet-clinic/internal/platform/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService() *analyses.Service {
	s := memory.NewStore()
	return analyses.NewService(memory.NewAnalysisTypeRepo(s), memory.NewAnalysisRepo(s))
}

func TestCreateType_Validation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	cases := []struct {
		in     analyses.TypeInput
		detail string
	}{
		{analyses.TypeInput{Description: "CBC", Instructions: "fasting"}, "name is required"},
		{analyses.TypeInput{Name: "Blood", Instructions: "fasting"}, "description is required"},
		{analyses.TypeInput{Name: "Blood", Description: "CBC", Instructions: " "}, "instructions is required"},
	}
	for _, tc := range cases {
		_, err := svc.CreateType(ctx, tc.in)
		require.ErrorIs(t, err, apperr.ErrInvalidInput)
		assert.Equal(t, tc.detail, apperr.Detail(err))
	}

	typ, err := svc.CreateType(ctx, analyses.TypeInput{Name: "Blood", Description: " CBC ", Instructions: "fasting"})
	require.NoError(t, err)
	assert.Equal(t, "CBC", typ.Description)

	require.NoError(t, svc.DeleteType(ctx, typ.ID))
	assert.ErrorIs(t, svc.DeleteType(ctx, typ.ID), apperr.ErrNotFound)
}

func TestCreate_Validation(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.Create(ctx, analyses.Input{AnalysisTypeID: 1})
	require.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Equal(t, "appointment_id is required", apperr.Detail(err))

	_, err = svc.Create(ctx, analyses.Input{AppointmentID: 1})
	require.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Equal(t, "analysis_type_id is required", apperr.Detail(err))

	_, err = svc.Create(ctx, analyses.Input{AppointmentID: 1, AnalysisTypeID: 1})
	require.ErrorIs(t, err, apperr.ErrInvalidInput)
	assert.Equal(t, "appointment_id references a missing row", apperr.Detail(err))

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}
