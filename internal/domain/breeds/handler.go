package breeds

import (
	"net/http"

	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/httpx"
	"vet-clinic/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

const notFound = "Breed not found"

func RegisterRoutes(r chi.Router, svc *Service, resolver capabilities.CapabilitiesResolver) {
	canWrite := middleware.RequireFeature(resolver, capabilities.FeatureCatalogWrite)

	r.Route("/breeds", func(br chi.Router) {
		br.Get("/", listHandler(svc))
		br.Get("/{breedID}", getHandler(svc))

		br.With(canWrite).Post("/", createHandler(svc))
		br.With(canWrite).Put("/{breedID}", updateHandler(svc))
		br.With(canWrite).Delete("/{breedID}", deleteHandler(svc))
	})
}

type breedRequest struct {
	Name string `json:"name" validate:"required"`
}

// BreedResponse también se embebe en la respuesta de mascotas.
type BreedResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func ToResponse(b Breed) BreedResponse {
	return BreedResponse{ID: b.ID, Name: b.Name}
}

// @Summary Crear raza
// @Tags breeds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body breedRequest true "Raza"
// @Success 200 {object} BreedResponse
// @Failure 400 {object} httpx.DetailResponse
// @Failure 403 {object} httpx.DetailResponse "requiere catalog:write"
// @Router /breeds/ [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req breedRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		b, err := svc.Create(r.Context(), Input{Name: req.Name})
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToResponse(b))
	}
}

// @Summary Listar razas
// @Tags breeds
// @Produce json
// @Security BearerAuth
// @Success 200 {array} BreedResponse
// @Router /breeds/ [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		out := make([]BreedResponse, 0, len(items))
		for _, b := range items {
			out = append(out, ToResponse(b))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// @Summary Obtener raza
// @Tags breeds
// @Produce json
// @Security BearerAuth
// @Param breedID path int true "ID de la raza"
// @Success 200 {object} BreedResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /breeds/{breedID} [get]
func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "breedID")
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		b, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToResponse(b))
	}
}

// @Summary Reemplazar raza
// @Tags breeds
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param breedID path int true "ID de la raza"
// @Param payload body breedRequest true "Raza (todos los campos)"
// @Success 200 {object} BreedResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /breeds/{breedID} [put]
func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "breedID")
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		var req breedRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		b, err := svc.Update(r.Context(), id, Input{Name: req.Name})
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToResponse(b))
	}
}

// @Summary Borrar raza
// @Description Borra la raza y, en cascada, sus mascotas.
// @Tags breeds
// @Produce json
// @Security BearerAuth
// @Param breedID path int true "ID de la raza"
// @Success 200 {object} httpx.DetailResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /breeds/{breedID} [delete]
func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "breedID")
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.Deleted(w, "Breed")
	}
}
