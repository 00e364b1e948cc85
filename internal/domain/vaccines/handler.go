package vaccines

import (
	"net/http"

	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/httpx"
	"vet-clinic/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

const (
	vaccineNotFound     = "Vaccine not found"
	vaccinationNotFound = "Vaccination not found"
)

func RegisterRoutes(r chi.Router, svc *Service, resolver capabilities.CapabilitiesResolver) {
	canWrite := middleware.RequireFeature(resolver, capabilities.FeatureCatalogWrite)

	// Catálogo
	r.Route("/vaccines", func(vr chi.Router) {
		vr.Get("/", listVaccinesHandler(svc))
		vr.Get("/{vaccineID}", getVaccineHandler(svc))

		vr.With(canWrite).Post("/", createVaccineHandler(svc))
		vr.With(canWrite).Put("/{vaccineID}", updateVaccineHandler(svc))
		vr.With(canWrite).Delete("/{vaccineID}", deleteVaccineHandler(svc))
	})

	r.Route("/vaccinations", func(vr chi.Router) {
		vr.Post("/", createVaccinationHandler(svc))
		vr.Get("/", listVaccinationsHandler(svc))
		vr.Get("/{vaccinationID}", getVaccinationHandler(svc))
		vr.Put("/{vaccinationID}", updateVaccinationHandler(svc))
		vr.Delete("/{vaccinationID}", deleteVaccinationHandler(svc))
	})
}

type vaccineRequest struct {
	Name         string `json:"name" validate:"required"`
	Manufacturer string `json:"manufacturer" validate:"required"`
	Type         string `json:"type" validate:"required"`
}

func (req vaccineRequest) input() VaccineInput {
	return VaccineInput{Name: req.Name, Manufacturer: req.Manufacturer, Type: req.Type}
}

// VaccineResponse se embebe en vacunaciones.
type VaccineResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	Type         string `json:"type"`
}

func toVaccineResponse(v Vaccine) VaccineResponse {
	return VaccineResponse{ID: v.ID, Name: v.Name, Manufacturer: v.Manufacturer, Type: v.Type}
}

type vaccinationRequest struct {
	VaccineID     int64 `json:"vaccine_id" validate:"required,gt=0"`
	PetID         int64 `json:"pet_id" validate:"required,gt=0"`
	AppointmentID int64 `json:"appointment_id" validate:"required,gt=0"`
}

func (req vaccinationRequest) input() VaccinationInput {
	return VaccinationInput{VaccineID: req.VaccineID, PetID: req.PetID, AppointmentID: req.AppointmentID}
}

// VaccinationResponse también la usan las citas.
type VaccinationResponse struct {
	ID            int64           `json:"id"`
	VaccineID     int64           `json:"vaccine_id"`
	PetID         int64           `json:"pet_id"`
	AppointmentID int64           `json:"appointment_id"`
	Vaccine       VaccineResponse `json:"vaccine"`
}

func ToVaccinationResponse(v Vaccination) VaccinationResponse {
	return VaccinationResponse{
		ID:            v.ID,
		VaccineID:     v.VaccineID,
		PetID:         v.PetID,
		AppointmentID: v.AppointmentID,
		Vaccine:       toVaccineResponse(v.Vaccine),
	}
}

// @Summary Crear vacuna
// @Tags vaccines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body vaccineRequest true "Vacuna"
// @Success 200 {object} VaccineResponse
// @Failure 403 {object} httpx.DetailResponse "requiere catalog:write"
// @Router /vaccines/ [post]
func createVaccineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req vaccineRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, vaccineNotFound)
			return
		}
		v, err := svc.CreateVaccine(r.Context(), req.input())
		if err != nil {
			httpx.WriteError(w, r, err, vaccineNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toVaccineResponse(v))
	}
}

// @Summary Listar vacunas
// @Tags vaccines
// @Produce json
// @Security BearerAuth
// @Success 200 {array} VaccineResponse
// @Router /vaccines/ [get]
func listVaccinesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListVaccines(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err, vaccineNotFound)
			return
		}
		out := make([]VaccineResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVaccineResponse(v))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// @Summary Obtener vacuna
// @Tags vaccines
// @Produce json
// @Security BearerAuth
// @Param vaccineID path int true "ID de la vacuna"
// @Success 200 {object} VaccineResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /vaccines/{vaccineID} [get]
func getVaccineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "vaccineID")
		if err != nil {
			httpx.WriteError(w, r, err, vaccineNotFound)
			return
		}
		v, err := svc.GetVaccine(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err, vaccineNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toVaccineResponse(v))
	}
}

// @Summary Reemplazar vacuna
// @Tags vaccines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vaccineID path int true "ID de la vacuna"
// @Param payload body vaccineRequest true "Vacuna (todos los campos)"
// @Success 200 {object} VaccineResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /vaccines/{vaccineID} [put]
func updateVaccineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "vaccineID")
		if err != nil {
			httpx.WriteError(w, r, err, vaccineNotFound)
			return
		}
		var req vaccineRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, vaccineNotFound)
			return
		}
		v, err := svc.UpdateVaccine(r.Context(), id, req.input())
		if err != nil {
			httpx.WriteError(w, r, err, vaccineNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toVaccineResponse(v))
	}
}

// @Summary Borrar vacuna
// @Description Borra también sus vacunaciones.
// @Tags vaccines
// @Produce json
// @Security BearerAuth
// @Param vaccineID path int true "ID de la vacuna"
// @Success 200 {object} httpx.DetailResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /vaccines/{vaccineID} [delete]
func deleteVaccineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "vaccineID")
		if err != nil {
			httpx.WriteError(w, r, err, vaccineNotFound)
			return
		}
		if err := svc.DeleteVaccine(r.Context(), id); err != nil {
			httpx.WriteError(w, r, err, vaccineNotFound)
			return
		}
		httpx.Deleted(w, "Vaccine")
	}
}

// @Summary Registrar vacunación
// @Tags vaccinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body vaccinationRequest true "Vacunación"
// @Success 200 {object} VaccinationResponse
// @Failure 400 {object} httpx.DetailResponse "<campo> references a missing row"
// @Router /vaccinations/ [post]
func createVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req vaccinationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, vaccinationNotFound)
			return
		}
		v, err := svc.CreateVaccination(r.Context(), req.input())
		if err != nil {
			httpx.WriteError(w, r, err, vaccinationNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToVaccinationResponse(v))
	}
}

// @Summary Listar vacunaciones
// @Tags vaccinations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} VaccinationResponse
// @Router /vaccinations/ [get]
func listVaccinationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListVaccinations(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err, vaccinationNotFound)
			return
		}
		out := make([]VaccinationResponse, 0, len(items))
		for _, v := range items {
			out = append(out, ToVaccinationResponse(v))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// @Summary Obtener vacunación
// @Tags vaccinations
// @Produce json
// @Security BearerAuth
// @Param vaccinationID path int true "ID de la vacunación"
// @Success 200 {object} VaccinationResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /vaccinations/{vaccinationID} [get]
func getVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "vaccinationID")
		if err != nil {
			httpx.WriteError(w, r, err, vaccinationNotFound)
			return
		}
		v, err := svc.GetVaccination(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err, vaccinationNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToVaccinationResponse(v))
	}
}

// @Summary Reemplazar vacunación
// @Tags vaccinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param vaccinationID path int true "ID de la vacunación"
// @Param payload body vaccinationRequest true "Vacunación (todos los campos)"
// @Success 200 {object} VaccinationResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /vaccinations/{vaccinationID} [put]
func updateVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "vaccinationID")
		if err != nil {
			httpx.WriteError(w, r, err, vaccinationNotFound)
			return
		}
		var req vaccinationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, vaccinationNotFound)
			return
		}
		v, err := svc.UpdateVaccination(r.Context(), id, req.input())
		if err != nil {
			httpx.WriteError(w, r, err, vaccinationNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToVaccinationResponse(v))
	}
}

// @Summary Borrar vacunación
// @Tags vaccinations
// @Produce json
// @Security BearerAuth
// @Param vaccinationID path int true "ID de la vacunación"
// @Success 200 {object} httpx.DetailResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /vaccinations/{vaccinationID} [delete]
func deleteVaccinationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "vaccinationID")
		if err != nil {
			httpx.WriteError(w, r, err, vaccinationNotFound)
			return
		}
		if err := svc.DeleteVaccination(r.Context(), id); err != nil {
			httpx.WriteError(w, r, err, vaccinationNotFound)
			return
		}
		httpx.Deleted(w, "Vaccination")
	}
}
