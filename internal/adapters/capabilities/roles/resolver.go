// Package roles resuelve capabilities a partir del rol del usuario, con una
// tabla estática en proceso.
package roles

import (
	"context"
	"errors"
	"strings"

	"vet-clinic/internal/ports/capabilities"
)

const (
	RoleUser    = "user"
	RoleService = "service"

	// wildcard: el rol tiene todas las features.
	all capabilities.Feature = "*"
)

// DefaultTable: service (personal de la clínica) => todo; user => nada extra.
func DefaultTable() map[string][]capabilities.Feature {
	return map[string][]capabilities.Feature{
		RoleService: {all},
		RoleUser:    {},
	}
}

type Resolver struct {
	byRole map[string]map[capabilities.Feature]bool
}

func NewResolver(table map[string][]capabilities.Feature) *Resolver {
	byRole := make(map[string]map[capabilities.Feature]bool, len(table))
	for role, feats := range table {
		set := make(map[capabilities.Feature]bool, len(feats))
		for _, f := range feats {
			set[f] = true
		}
		byRole[strings.ToLower(role)] = set
	}
	return &Resolver{byRole: byRole}
}

// HasFeature responde si el rol tiene la feature. Un rol desconocido no tiene
// ninguna (no es error).
func (r *Resolver) HasFeature(_ context.Context, in capabilities.CapabilityCheck) (bool, error) {
	if strings.TrimSpace(string(in.Feature)) == "" {
		return false, errors.New("feature required")
	}
	set, ok := r.byRole[strings.ToLower(strings.TrimSpace(in.Role))]
	if !ok {
		return false, nil
	}
	return set[all] || set[in.Feature], nil
}
