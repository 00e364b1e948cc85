package medicines

import (
	"net/http"
	"time"

	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/httpx"
	"vet-clinic/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

const (
	medicineNotFound = "Medicine not found"
	takeNotFound     = "Medicine take not found"
)

func RegisterRoutes(r chi.Router, svc *Service, resolver capabilities.CapabilitiesResolver) {
	canWrite := middleware.RequireFeature(resolver, capabilities.FeatureCatalogWrite)

	r.Route("/medicines", func(mr chi.Router) {
		mr.Get("/", listMedicinesHandler(svc))
		mr.Get("/{medicineID}", getMedicineHandler(svc))

		mr.With(canWrite).Post("/", createMedicineHandler(svc))
		mr.With(canWrite).Put("/{medicineID}", updateMedicineHandler(svc))
		mr.With(canWrite).Delete("/{medicineID}", deleteMedicineHandler(svc))
	})

	r.Route("/medicine-takes", func(tr chi.Router) {
		tr.Post("/", createTakeHandler(svc))
		tr.Get("/", listTakesHandler(svc))
		tr.Get("/{takeID}", getTakeHandler(svc))
		tr.Put("/{takeID}", updateTakeHandler(svc))
		tr.Delete("/{takeID}", deleteTakeHandler(svc))
	})
}

type medicineRequest struct {
	Name        string `json:"name" validate:"required"`
	PeriodHours *int   `json:"period_hours" validate:"required,gte=0,lte=8760"`
}

func (req medicineRequest) input() MedicineInput {
	in := MedicineInput{Name: req.Name}
	if req.PeriodHours != nil {
		in.PeriodHours = *req.PeriodHours
	}
	return in
}

type medicineResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PeriodHours int    `json:"period_hours"`
}

func toMedicineResponse(m Medicine) medicineResponse {
	return medicineResponse{ID: m.ID, Name: m.Name, PeriodHours: m.PeriodHours}
}

// takeRequest: datetime en ISO-8601; sin zona se asume UTC.
type takeRequest struct {
	MedicineID int64  `json:"medicine_id" validate:"required,gt=0"`
	PetID      int64  `json:"pet_id" validate:"required,gt=0"`
	Datetime   string `json:"datetime" validate:"required"`
}

func (req takeRequest) input() (TakeInput, error) {
	at, err := httpx.ParseTimestamp("datetime", req.Datetime)
	if err != nil {
		return TakeInput{}, err
	}
	return TakeInput{MedicineID: req.MedicineID, PetID: req.PetID, TakenAt: at}, nil
}

type takeResponse struct {
	ID         int64            `json:"id"`
	MedicineID int64            `json:"medicine_id"`
	PetID      int64            `json:"pet_id"`
	Datetime   time.Time        `json:"datetime"`
	NextDue    *time.Time       `json:"next_due,omitempty"`
	Medicine   medicineResponse `json:"medicine"`
}

func toTakeResponse(t Take) takeResponse {
	out := takeResponse{
		ID:         t.ID,
		MedicineID: t.MedicineID,
		PetID:      t.PetID,
		Datetime:   t.TakenAt.UTC(),
		Medicine:   toMedicineResponse(t.Medicine),
	}
	if next := t.NextDue(); !next.IsZero() {
		next = next.UTC()
		out.NextDue = &next
	}
	return out
}

// @Summary Crear medicamento
// @Tags medicines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body medicineRequest true "Medicamento"
// @Success 200 {object} medicineResponse
// @Failure 403 {object} httpx.DetailResponse "requiere catalog:write"
// @Router /medicines/ [post]
func createMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req medicineRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, medicineNotFound)
			return
		}
		m, err := svc.CreateMedicine(r.Context(), req.input())
		if err != nil {
			httpx.WriteError(w, r, err, medicineNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toMedicineResponse(m))
	}
}

// @Summary Listar medicamentos
// @Tags medicines
// @Produce json
// @Security BearerAuth
// @Success 200 {array} medicineResponse
// @Router /medicines/ [get]
func listMedicinesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListMedicines(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err, medicineNotFound)
			return
		}
		out := make([]medicineResponse, 0, len(items))
		for _, m := range items {
			out = append(out, toMedicineResponse(m))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// @Summary Obtener medicamento
// @Tags medicines
// @Produce json
// @Security BearerAuth
// @Param medicineID path int true "ID del medicamento"
// @Success 200 {object} medicineResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /medicines/{medicineID} [get]
func getMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "medicineID")
		if err != nil {
			httpx.WriteError(w, r, err, medicineNotFound)
			return
		}
		m, err := svc.GetMedicine(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err, medicineNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toMedicineResponse(m))
	}
}

// @Summary Reemplazar medicamento
// @Tags medicines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param medicineID path int true "ID del medicamento"
// @Param payload body medicineRequest true "Medicamento (todos los campos)"
// @Success 200 {object} medicineResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /medicines/{medicineID} [put]
func updateMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "medicineID")
		if err != nil {
			httpx.WriteError(w, r, err, medicineNotFound)
			return
		}
		var req medicineRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, medicineNotFound)
			return
		}
		m, err := svc.UpdateMedicine(r.Context(), id, req.input())
		if err != nil {
			httpx.WriteError(w, r, err, medicineNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toMedicineResponse(m))
	}
}

// @Summary Borrar medicamento
// @Description Borra también sus tomas registradas.
// @Tags medicines
// @Produce json
// @Security BearerAuth
// @Param medicineID path int true "ID del medicamento"
// @Success 200 {object} httpx.DetailResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /medicines/{medicineID} [delete]
func deleteMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "medicineID")
		if err != nil {
			httpx.WriteError(w, r, err, medicineNotFound)
			return
		}
		if err := svc.DeleteMedicine(r.Context(), id); err != nil {
			httpx.WriteError(w, r, err, medicineNotFound)
			return
		}
		httpx.Deleted(w, "Medicine")
	}
}

// @Summary Registrar toma de medicamento
// @Tags medicine-takes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body takeRequest true "Toma; datetime ISO-8601"
// @Success 200 {object} takeResponse
// @Failure 400 {object} httpx.DetailResponse "datetime inválido / FK inexistente"
// @Router /medicine-takes/ [post]
func createTakeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req takeRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, takeNotFound)
			return
		}
		in, err := req.input()
		if err != nil {
			httpx.WriteError(w, r, err, takeNotFound)
			return
		}
		t, err := svc.CreateTake(r.Context(), in)
		if err != nil {
			httpx.WriteError(w, r, err, takeNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toTakeResponse(t))
	}
}

// @Summary Listar tomas
// @Tags medicine-takes
// @Produce json
// @Security BearerAuth
// @Success 200 {array} takeResponse
// @Router /medicine-takes/ [get]
func listTakesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListTakes(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err, takeNotFound)
			return
		}
		out := make([]takeResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTakeResponse(t))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// @Summary Obtener toma
// @Tags medicine-takes
// @Produce json
// @Security BearerAuth
// @Param takeID path int true "ID de la toma"
// @Success 200 {object} takeResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /medicine-takes/{takeID} [get]
func getTakeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "takeID")
		if err != nil {
			httpx.WriteError(w, r, err, takeNotFound)
			return
		}
		t, err := svc.GetTake(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err, takeNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toTakeResponse(t))
	}
}

// @Summary Reemplazar toma
// @Tags medicine-takes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param takeID path int true "ID de la toma"
// @Param payload body takeRequest true "Toma (todos los campos)"
// @Success 200 {object} takeResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /medicine-takes/{takeID} [put]
func updateTakeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "takeID")
		if err != nil {
			httpx.WriteError(w, r, err, takeNotFound)
			return
		}
		var req takeRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, takeNotFound)
			return
		}
		in, err := req.input()
		if err != nil {
			httpx.WriteError(w, r, err, takeNotFound)
			return
		}
		t, err := svc.UpdateTake(r.Context(), id, in)
		if err != nil {
			httpx.WriteError(w, r, err, takeNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toTakeResponse(t))
	}
}

// @Summary Borrar toma
// @Tags medicine-takes
// @Produce json
// @Security BearerAuth
// @Param takeID path int true "ID de la toma"
// @Success 200 {object} httpx.DetailResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /medicine-takes/{takeID} [delete]
func deleteTakeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "takeID")
		if err != nil {
			httpx.WriteError(w, r, err, takeNotFound)
			return
		}
		if err := svc.DeleteTake(r.Context(), id); err != nil {
			httpx.WriteError(w, r, err, takeNotFound)
			return
		}
		httpx.Deleted(w, "Medicine take")
	}
}
