package capabilities

import "context"

type Feature string

const (
	FeatureCatalogWrite       Feature = "catalog:write"
	FeaturePetsReadAll        Feature = "pets:read_all"
	FeatureAppointmentsReview Feature = "appointments:review"
)

type CapabilityCheck struct {
	Role    string
	Feature Feature
}

type CapabilitiesResolver interface {
	HasFeature(ctx context.Context, in CapabilityCheck) (bool, error)
}
