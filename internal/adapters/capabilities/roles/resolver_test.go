package roles

import (
	"context"
	"testing"

	"vet-clinic/internal/ports/capabilities"
)

func TestResolver_DefaultTable(t *testing.T) {
	r := NewResolver(DefaultTable())
	ctx := context.Background()

	cases := []struct {
		role    string
		feature capabilities.Feature
		want    bool
	}{
		{RoleService, capabilities.FeatureCatalogWrite, true},
		{RoleService, capabilities.FeaturePetsReadAll, true},
		{"SERVICE", capabilities.FeatureAppointmentsReview, true},
		{RoleUser, capabilities.FeatureCatalogWrite, false},
		{RoleUser, capabilities.FeaturePetsReadAll, false},
		{"", capabilities.FeatureCatalogWrite, false},
		{"admin", capabilities.FeatureCatalogWrite, false},
	}

	for _, tc := range cases {
		got, err := r.HasFeature(ctx, capabilities.CapabilityCheck{Role: tc.role, Feature: tc.feature})
		if err != nil {
			t.Fatalf("HasFeature(%q, %q): unexpected error %v", tc.role, tc.feature, err)
		}
		if got != tc.want {
			t.Fatalf("HasFeature(%q, %q) = %v, want %v", tc.role, tc.feature, got, tc.want)
		}
	}
}

func TestResolver_ExplicitFeature(t *testing.T) {
	r := NewResolver(map[string][]capabilities.Feature{
		"reception": {capabilities.FeatureAppointmentsReview},
	})

	ok, _ := r.HasFeature(context.Background(), capabilities.CapabilityCheck{Role: "reception", Feature: capabilities.FeatureAppointmentsReview})
	if !ok {
		t.Fatalf("expected reception to review appointments")
	}
	ok, _ = r.HasFeature(context.Background(), capabilities.CapabilityCheck{Role: "reception", Feature: capabilities.FeatureCatalogWrite})
	if ok {
		t.Fatalf("reception must not write catalog")
	}
	ok, _ = r.HasFeature(context.Background(), capabilities.CapabilityCheck{Role: "RECEPTION", Feature: capabilities.FeatureAppointmentsReview})
	if !ok {
		t.Fatalf("role lookup must be case-insensitive")
	}
}

func TestResolver_EmptyFeatureIsError(t *testing.T) {
	r := NewResolver(DefaultTable())
	if _, err := r.HasFeature(context.Background(), capabilities.CapabilityCheck{Role: RoleService}); err == nil {
		t.Fatalf("expected error for empty feature")
	}
}
