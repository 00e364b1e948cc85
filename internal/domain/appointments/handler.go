package appointments

import (
	"net/http"
	"time"

	"vet-clinic/internal/domain/analyses"
	"vet-clinic/internal/domain/vaccines"
	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/httpx"
	"vet-clinic/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

const notFound = "Appointment not found"

func RegisterRoutes(r chi.Router, svc *Service, resolver capabilities.CapabilitiesResolver) {
	canReview := middleware.RequireFeature(resolver, capabilities.FeatureAppointmentsReview)

	r.Route("/appointments", func(ar chi.Router) {
		ar.Post("/", createHandler(svc))
		ar.Get("/", listHandler(svc))
		ar.Get("/{appointmentID}", getHandler(svc))
		ar.Put("/{appointmentID}", updateHandler(svc))
		ar.Delete("/{appointmentID}", deleteHandler(svc))

		// Panel de la clínica
		ar.With(canReview).Patch("/{appointmentID}/status", statusHandler(svc))
		ar.With(canReview).Patch("/{appointmentID}/conclusion", conclusionHandler(svc))
	})
}

// createRequest: conclusion_status es opcional (default "pending").
type createRequest struct {
	PetID            int64   `json:"pet_id" validate:"required,gt=0"`
	ClinicID         int64   `json:"clinic_id" validate:"required,gt=0"`
	ScheduledAt      string  `json:"scheduled_at" validate:"required"`
	Status           string  `json:"status" validate:"required"`
	ConclusionStatus string  `json:"conclusion_status"`
	Conclusion       *string `json:"conclusion"`
}

// updateRequest: PUT reemplaza todo, así que conclusion_status es obligatorio.
type updateRequest struct {
	PetID            int64   `json:"pet_id" validate:"required,gt=0"`
	ClinicID         int64   `json:"clinic_id" validate:"required,gt=0"`
	ScheduledAt      string  `json:"scheduled_at" validate:"required"`
	Status           string  `json:"status" validate:"required"`
	ConclusionStatus string  `json:"conclusion_status" validate:"required"`
	Conclusion       *string `json:"conclusion"`
}

type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

type conclusionRequest struct {
	ConclusionStatus string  `json:"conclusion_status" validate:"required"`
	Conclusion       *string `json:"conclusion"`
}

func toInput(petID, clinicID int64, scheduledAt, status, conclusionStatus string, conclusion *string) (Input, error) {
	at, err := httpx.ParseTimestamp("scheduled_at", scheduledAt)
	if err != nil {
		return Input{}, err
	}
	return Input{
		PetID:            petID,
		ClinicID:         clinicID,
		ScheduledAt:      at,
		Status:           status,
		ConclusionStatus: conclusionStatus,
		Conclusion:       conclusion,
	}, nil
}

type petSummary struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	BreedID int64  `json:"breed_id"`
	OwnerID int64  `json:"owner_id"`
}

type procedureResponse struct {
	Type ProcedureType `json:"type"`
	Name string        `json:"name"`
}

type appointmentResponse struct {
	ID               int64                          `json:"id"`
	PetID            int64                          `json:"pet_id"`
	ClinicID         int64                          `json:"clinic_id"`
	ScheduledAt      time.Time                      `json:"scheduled_at"`
	Status           string                         `json:"status"`
	ConclusionStatus string                         `json:"conclusion_status"`
	Conclusion       *string                        `json:"conclusion"`
	Pet              petSummary                     `json:"pet"`
	Procedure        *procedureResponse             `json:"procedure"`
	Vaccinations     []vaccines.VaccinationResponse `json:"vaccinations"`
	Analyses         []analyses.AnalysisResponse    `json:"analyses"`
}

func toResponse(a Appointment) appointmentResponse {
	out := appointmentResponse{
		ID:               a.ID,
		PetID:            a.PetID,
		ClinicID:         a.ClinicID,
		ScheduledAt:      a.ScheduledAt.UTC(),
		Status:           a.Status,
		ConclusionStatus: a.ConclusionStatus,
		Conclusion:       a.Conclusion,
		Pet: petSummary{
			ID:      a.Pet.ID,
			Name:    a.Pet.Name,
			Age:     a.Pet.Age,
			BreedID: a.Pet.BreedID,
			OwnerID: a.Pet.OwnerID,
		},
		Vaccinations: make([]vaccines.VaccinationResponse, 0, len(a.Vaccinations)),
		Analyses:     make([]analyses.AnalysisResponse, 0, len(a.Analyses)),
	}
	if p := a.Procedure(); p != nil {
		out.Procedure = &procedureResponse{Type: p.Type, Name: p.Name}
	}
	for _, v := range a.Vaccinations {
		out.Vaccinations = append(out.Vaccinations, vaccines.ToVaccinationResponse(v))
	}
	for _, an := range a.Analyses {
		out.Analyses = append(out.Analyses, analyses.ToAnalysisResponse(an))
	}
	return out
}

// @Summary Crear cita
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body createRequest true "Cita; scheduled_at ISO-8601"
// @Success 200 {object} appointmentResponse
// @Failure 400 {object} httpx.DetailResponse "validación / pet_id o clinic_id inexistente"
// @Router /appointments/ [post]
func createHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		in, err := toInput(req.PetID, req.ClinicID, req.ScheduledAt, req.Status, req.ConclusionStatus, req.Conclusion)
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		a, err := svc.Create(r.Context(), in)
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(a))
	}
}

// @Summary Listar citas
// @Description Incluye la mascota, vacunaciones, análisis y el `procedure` derivado (vacunación tiene prioridad sobre análisis).
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} appointmentResponse
// @Router /appointments/ [get]
func listHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		out := make([]appointmentResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// @Summary Obtener cita
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param appointmentID path int true "ID de la cita"
// @Success 200 {object} appointmentResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /appointments/{appointmentID} [get]
func getHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "appointmentID")
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		a, err := svc.GetByID(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(a))
	}
}

// @Summary Reemplazar cita
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param appointmentID path int true "ID de la cita"
// @Param payload body updateRequest true "Cita (todos los campos)"
// @Success 200 {object} appointmentResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /appointments/{appointmentID} [put]
func updateHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "appointmentID")
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		var req updateRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		in, err := toInput(req.PetID, req.ClinicID, req.ScheduledAt, req.Status, req.ConclusionStatus, req.Conclusion)
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}

		a, err := svc.Update(r.Context(), id, in)
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(a))
	}
}

// @Summary Cambiar estado de la cita
// @Description Requiere appointments:review (rol service).
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param appointmentID path int true "ID de la cita"
// @Param payload body statusRequest true "Nuevo estado (p.ej. completed)"
// @Success 200 {object} appointmentResponse
// @Failure 403 {object} httpx.DetailResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /appointments/{appointmentID}/status [patch]
func statusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "appointmentID")
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		var req statusRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		a, err := svc.UpdateStatus(r.Context(), id, req.Status)
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(a))
	}
}

// @Summary Registrar conclusión de la cita
// @Description Requiere appointments:review (rol service).
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param appointmentID path int true "ID de la cita"
// @Param payload body conclusionRequest true "Conclusión"
// @Success 200 {object} appointmentResponse
// @Failure 403 {object} httpx.DetailResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /appointments/{appointmentID}/conclusion [patch]
func conclusionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "appointmentID")
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		var req conclusionRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		a, err := svc.UpdateConclusion(r.Context(), id, req.ConclusionStatus, req.Conclusion)
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toResponse(a))
	}
}

// @Summary Borrar cita
// @Description Borra también sus vacunaciones y análisis.
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param appointmentID path int true "ID de la cita"
// @Success 200 {object} httpx.DetailResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /appointments/{appointmentID} [delete]
func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "appointmentID")
		if err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			httpx.WriteError(w, r, err, notFound)
			return
		}
		httpx.Deleted(w, "Appointment")
	}
}
