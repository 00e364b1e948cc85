package clinics

import (
	"net/http"

	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/httpx"
	"vet-clinic/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

const notFound = "Clinic not found"

func RegisterRoutes(r chi.Router, svc *Service, resolver capabilities.CapabilitiesResolver) {
	canWrite := middleware.RequireFeature(resolver, capabilities.FeatureCatalogWrite)

	r.Route("/clinics", func(cr chi.Router) {
		cr.Get("/", listHandler(svc))
		cr.Get("/{clinicID}", getHandler(svc))

		cr.With(canWrite).Post("/", createHandler(svc))
		cr.With(canWrite).Put("/{clinicID}", updateHandler(svc))
		cr.With(canWrite).Delete("/{clinicID}", deleteHandler(svc))
	})
}

type clinicRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
}

func (req clinicRequest) input() Input {
	return Input{Name: req.Name, Address: req.Address, Phone: req.Phone}
}

type clinicResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

func toResponse(c Clinic) clinicResponse {
	return clinicResponse{ID: c.ID, Name: c.Name, Address: c.Address, Phone: c.Phone}
}

// @Summary Crear clínica
// @Tags clinics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body clinicRequest true "Clínica"
// @Success 200 {object} clinicResponse
// @Failure 403 {object} httpx.DetailResponse "requiere catalog:write"
// @Router /clinics/ [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req clinicRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		c, err := svc.Create(r.Context(), req.input())
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(c))
	}
}

// @Summary Listar clínicas
// @Tags clinics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} clinicResponse
// @Router /clinics/ [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		out := make([]clinicResponse, 0, len(items))
		for _, c := range items {
			out = append(out, toResponse(c))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// @Summary Obtener clínica
// @Tags clinics
// @Produce json
// @Security BearerAuth
// @Param clinicID path int true "ID de la clínica"
// @Success 200 {object} clinicResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /clinics/{clinicID} [get]
func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "clinicID")
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		c, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(c))
	}
}

// @Summary Reemplazar clínica
// @Tags clinics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clinicID path int true "ID de la clínica"
// @Param payload body clinicRequest true "Clínica (todos los campos)"
// @Success 200 {object} clinicResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /clinics/{clinicID} [put]
func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "clinicID")
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		var req clinicRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		c, err := svc.Update(r.Context(), id, req.input())
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(c))
	}
}

// @Summary Borrar clínica
// @Description Falla con 400 si la clínica todavía tiene citas.
// @Tags clinics
// @Produce json
// @Security BearerAuth
// @Param clinicID path int true "ID de la clínica"
// @Success 200 {object} httpx.DetailResponse
// @Failure 400 {object} httpx.DetailResponse "clinic has appointments"
// @Failure 404 {object} httpx.DetailResponse
// @Router /clinics/{clinicID} [delete]
func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "clinicID")
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.Deleted(w, "Clinic")
	}
}
