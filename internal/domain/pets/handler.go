package pets

import (
	"net/http"
	"strconv"

	"vet-clinic/internal/domain/breeds"
	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/apperr"
	"vet-clinic/internal/platform/httpx"
	"vet-clinic/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

const notFound = "Pet not found"

func RegisterRoutes(r chi.Router, svc *Service, resolver capabilities.CapabilitiesResolver) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc))
		pr.Get("/", listPetsHandler(svc, resolver))

		// Dueño, o personal con pets:read_all
		pr.Get("/{petID}", getPetHandler(svc, resolver))
		pr.Put("/{petID}", updatePetHandler(svc, resolver))
		pr.Delete("/{petID}", deletePetHandler(svc, resolver))
	})
}

// petRequest se usa para POST y PUT. Age es puntero para distinguir 0 de
// "no enviado".
type petRequest struct {
	Name            string  `json:"name" validate:"required"`
	Age             *int    `json:"age" validate:"required,gte=0,lte=100"`
	BreedID         int64   `json:"breed_id" validate:"required,gt=0"`
	Recommendations *string `json:"recommendations"`
}

func (req petRequest) input() Input {
	in := Input{
		Name:            req.Name,
		BreedID:         req.BreedID,
		Recommendations: req.Recommendations,
	}
	if req.Age != nil {
		in.Age = *req.Age
	}
	return in
}

type petResponse struct {
	ID              int64                `json:"id"`
	Name            string               `json:"name"`
	Age             int                  `json:"age"`
	BreedID         int64                `json:"breed_id"`
	OwnerID         int64                `json:"owner_id"`
	Recommendations *string              `json:"recommendations"`
	Breed           breeds.BreedResponse `json:"breed"`
}

func viewerFrom(r *http.Request, resolver capabilities.CapabilitiesResolver) Viewer {
	claims, _ := middleware.GetClaims(r.Context())
	return Viewer{
		UserID:  claims.UserID,
		ReadAll: middleware.HasFeature(r.Context(), resolver, capabilities.FeaturePetsReadAll),
	}
}

// @Summary Crear mascota
// @Description Crea una mascota cuyo dueño es el usuario del token.
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body petRequest true "Mascota"
// @Success 200 {object} petResponse
// @Failure 400 {object} httpx.DetailResponse "validación / breed_id references a missing row"
// @Failure 401 {object} httpx.DetailResponse
// @Router /pets/ [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, _ := middleware.GetClaims(r.Context())

		var req petRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, req.input())
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// @Summary Listar mascotas
// @Description Por defecto solo las del usuario. `all=true` lista todas y requiere pets:read_all.
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param all query bool false "Listar todas (personal de la clínica)"
// @Success 200 {array} petResponse
// @Failure 403 {object} httpx.DetailResponse
// @Router /pets/ [get]
func listPetsHandler(svc *Service, resolver capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := false
		if raw := r.URL.Query().Get("all"); raw != "" {
			v, err := strconv.ParseBool(raw)
			if err != nil {
				httpx.WriteError(w, r, apperr.Invalid("all must be a boolean"), notFound)
				return
			}
			all = v
		}

		items, err := svc.List(r.Context(), viewerFrom(r, resolver), all)
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} petResponse
// @Failure 404 {object} httpx.DetailResponse "también si la mascota es de otro dueño"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service, resolver capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "petID")
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		p, err := svc.Get(r.Context(), viewerFrom(r, resolver), id)
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// @Summary Reemplazar mascota
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Param payload body petRequest true "Mascota (name, age y breed_id obligatorios)"
// @Success 200 {object} petResponse
// @Failure 400 {object} httpx.DetailResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service, resolver capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "petID")
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		var req petRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		p, err := svc.Update(r.Context(), viewerFrom(r, resolver), id, req.input())
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toPetResponse(p))
	}
}

// @Summary Borrar mascota
// @Description Borra la mascota con sus citas, vacunaciones y tomas de medicamentos.
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param petID path int true "ID de la mascota"
// @Success 200 {object} httpx.DetailResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service, resolver capabilities.CapabilitiesResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "petID")
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		if err := svc.Delete(r.Context(), viewerFrom(r, resolver), id); err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.Deleted(w, "Pet")
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:              p.ID,
		Name:            p.Name,
		Age:             p.Age,
		BreedID:         p.BreedID,
		OwnerID:         p.OwnerID,
		Recommendations: p.Recommendations,
		Breed:           breeds.ToResponse(p.Breed),
	}
}
