package appointments

import (
	"testing"
	"time"

	"vet-clinic/internal/domain/analyses"
	"vet-clinic/internal/domain/vaccines"
)

func TestDeriveProcedure(t *testing.T) {
	rabies := vaccines.Vaccination{ID: 7, Vaccine: vaccines.Vaccine{Name: "Rabies"}}
	parvo := vaccines.Vaccination{ID: 3, Vaccine: vaccines.Vaccine{Name: "Parvo"}}
	blood := analyses.Analysis{ID: 2, Type: analyses.Type{Name: "Blood panel"}}
	urine := analyses.Analysis{ID: 1, Type: analyses.Type{Name: "Urinalysis"}}

	cases := []struct {
		name     string
		vs       []vaccines.Vaccination
		as       []analyses.Analysis
		wantNil  bool
		wantType ProcedureType
		wantName string
	}{
		{name: "none", wantNil: true},
		{name: "vaccination wins over analysis", vs: []vaccines.Vaccination{rabies}, as: []analyses.Analysis{urine}, wantType: ProcedureVaccination, wantName: "Rabies"},
		{name: "only analysis", as: []analyses.Analysis{blood}, wantType: ProcedureAnalysis, wantName: "Blood panel"},
		{name: "lowest vaccination id", vs: []vaccines.Vaccination{rabies, parvo}, wantType: ProcedureVaccination, wantName: "Parvo"},
		{name: "lowest analysis id", as: []analyses.Analysis{blood, urine}, wantType: ProcedureAnalysis, wantName: "Urinalysis"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DeriveProcedure(tc.vs, tc.as)
			if tc.wantNil {
				if got != nil {
					t.Fatalf("expected nil procedure, got %+v", *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("expected procedure, got nil")
			}
			if got.Type != tc.wantType || got.Name != tc.wantName {
				t.Fatalf("got %s/%s, want %s/%s", got.Type, got.Name, tc.wantType, tc.wantName)
			}
		})
	}
}

func TestInputNormalize(t *testing.T) {
	in := Input{PetID: 1, ClinicID: 1, Status: " scheduled "}
	if _, err := in.normalize(); err == nil {
		t.Fatalf("expected error for zero scheduled_at")
	}

	loc := time.FixedZone("UTC-3", -3*60*60)
	in.ScheduledAt = time.Date(2024, 3, 10, 9, 30, 0, 0, loc)
	a, err := in.normalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Status != "scheduled" {
		t.Fatalf("expected trimmed status, got %q", a.Status)
	}
	if a.ConclusionStatus != DefaultConclusionStatus {
		t.Fatalf("expected default conclusion status, got %q", a.ConclusionStatus)
	}
	if a.ScheduledAt.Location() != time.UTC || a.ScheduledAt.Hour() != 12 {
		t.Fatalf("expected 12:30 UTC, got %v", a.ScheduledAt)
	}
}
