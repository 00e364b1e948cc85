package analyses

import (
	"net/http"

	"vet-clinic/internal/middleware"
	"vet-clinic/internal/platform/httpx"
	"vet-clinic/internal/ports/capabilities"

	"github.com/go-chi/chi/v5"
)

const (
	typeNotFound     = "Analysis type not found"
	analysisNotFound = "Analysis not found"
)

func RegisterRoutes(r chi.Router, svc *Service, resolver capabilities.CapabilitiesResolver) {
	canWrite := middleware.RequireFeature(resolver, capabilities.FeatureCatalogWrite)

	r.Route("/analysis-types", func(tr chi.Router) {
		tr.Get("/", listTypesHandler(svc))
		tr.Get("/{typeID}", getTypeHandler(svc))

		tr.With(canWrite).Post("/", createTypeHandler(svc))
		tr.With(canWrite).Put("/{typeID}", updateTypeHandler(svc))
		tr.With(canWrite).Delete("/{typeID}", deleteTypeHandler(svc))
	})

	r.Route("/analyses", func(ar chi.Router) {
		ar.Post("/", createAnalysisHandler(svc))
		ar.Get("/", listAnalysesHandler(svc))
		ar.Get("/{analysisID}", getAnalysisHandler(svc))
		ar.Put("/{analysisID}", updateAnalysisHandler(svc))
		ar.Delete("/{analysisID}", deleteAnalysisHandler(svc))
	})
}

type typeRequest struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description" validate:"required"`
	Instructions string `json:"instructions" validate:"required"`
}

func (req typeRequest) input() TypeInput {
	return TypeInput{Name: req.Name, Description: req.Description, Instructions: req.Instructions}
}

type TypeResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Instructions string `json:"instructions"`
}

func toTypeResponse(t Type) TypeResponse {
	return TypeResponse{ID: t.ID, Name: t.Name, Description: t.Description, Instructions: t.Instructions}
}

type analysisRequest struct {
	AppointmentID  int64 `json:"appointment_id" validate:"required,gt=0"`
	AnalysisTypeID int64 `json:"analysis_type_id" validate:"required,gt=0"`
}

func (req analysisRequest) input() Input {
	return Input{AppointmentID: req.AppointmentID, AnalysisTypeID: req.AnalysisTypeID}
}

// AnalysisResponse también la usan las citas.
type AnalysisResponse struct {
	ID             int64        `json:"id"`
	AppointmentID  int64        `json:"appointment_id"`
	AnalysisTypeID int64        `json:"analysis_type_id"`
	AnalysisType   TypeResponse `json:"analysis_type"`
}

func ToAnalysisResponse(a Analysis) AnalysisResponse {
	return AnalysisResponse{
		ID:             a.ID,
		AppointmentID:  a.AppointmentID,
		AnalysisTypeID: a.AnalysisTypeID,
		AnalysisType:   toTypeResponse(a.Type),
	}
}

// @Summary Crear tipo de análisis
// @Tags analysis-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body typeRequest true "Tipo de análisis"
// @Success 200 {object} TypeResponse
// @Failure 403 {object} httpx.DetailResponse "requiere catalog:write"
// @Router /analysis-types/ [post]
func createTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req typeRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, typeNotFound)
			return
		}
		t, err := svc.CreateType(r.Context(), req.input())
		if err != nil {
			httpx.WriteError(w, r, err, typeNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toTypeResponse(t))
	}
}

// @Summary Listar tipos de análisis
// @Tags analysis-types
// @Produce json
// @Security BearerAuth
// @Success 200 {array} TypeResponse
// @Router /analysis-types/ [get]
func listTypesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListTypes(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err, typeNotFound)
			return
		}
		out := make([]TypeResponse, 0, len(items))
		for _, t := range items {
			out = append(out, toTypeResponse(t))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// @Summary Obtener tipo de análisis
// @Tags analysis-types
// @Produce json
// @Security BearerAuth
// @Param typeID path int true "ID del tipo"
// @Success 200 {object} TypeResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /analysis-types/{typeID} [get]
func getTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "typeID")
		if err != nil {
			httpx.WriteError(w, r, err, typeNotFound)
			return
		}
		t, err := svc.GetType(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err, typeNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toTypeResponse(t))
	}
}

// @Summary Reemplazar tipo de análisis
// @Tags analysis-types
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param typeID path int true "ID del tipo"
// @Param payload body typeRequest true "Tipo (todos los campos)"
// @Success 200 {object} TypeResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /analysis-types/{typeID} [put]
func updateTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "typeID")
		if err != nil {
			httpx.WriteError(w, r, err, typeNotFound)
			return
		}
		var req typeRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, typeNotFound)
			return
		}
		t, err := svc.UpdateType(r.Context(), id, req.input())
		if err != nil {
			httpx.WriteError(w, r, err, typeNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toTypeResponse(t))
	}
}

// @Summary Borrar tipo de análisis
// @Description Borra también los análisis de ese tipo.
// @Tags analysis-types
// @Produce json
// @Security BearerAuth
// @Param typeID path int true "ID del tipo"
// @Success 200 {object} httpx.DetailResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /analysis-types/{typeID} [delete]
func deleteTypeHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "typeID")
		if err != nil {
			httpx.WriteError(w, r, err, typeNotFound)
			return
		}
		if err := svc.DeleteType(r.Context(), id); err != nil {
			httpx.WriteError(w, r, err, typeNotFound)
			return
		}
		httpx.Deleted(w, "Analysis type")
	}
}

// @Summary Crear análisis
// @Tags analyses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body analysisRequest true "Análisis"
// @Success 200 {object} AnalysisResponse
// @Failure 400 {object} httpx.DetailResponse "<campo> references a missing row"
// @Router /analyses/ [post]
func createAnalysisHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req analysisRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, analysisNotFound)
			return
		}
		a, err := svc.Create(r.Context(), req.input())
		if err != nil {
			httpx.WriteError(w, r, err, analysisNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToAnalysisResponse(a))
	}
}

// @Summary Listar análisis
// @Tags analyses
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AnalysisResponse
// @Router /analyses/ [get]
func listAnalysesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.WriteError(w, r, err, analysisNotFound)
			return
		}
		out := make([]AnalysisResponse, 0, len(items))
		for _, a := range items {
			out = append(out, ToAnalysisResponse(a))
		}
		httpx.WriteJSON(w, http.StatusOK, out)
	}
}

// @Summary Obtener análisis
// @Tags analyses
// @Produce json
// @Security BearerAuth
// @Param analysisID path int true "ID del análisis"
// @Success 200 {object} AnalysisResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /analyses/{analysisID} [get]
func getAnalysisHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "analysisID")
		if err != nil {
			httpx.WriteError(w, r, err, analysisNotFound)
			return
		}
		a, err := svc.Get(r.Context(), id)
		if err != nil {
			httpx.WriteError(w, r, err, analysisNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToAnalysisResponse(a))
	}
}

// @Summary Reemplazar análisis
// @Tags analyses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param analysisID path int true "ID del análisis"
// @Param payload body analysisRequest true "Análisis (todos los campos)"
// @Success 200 {object} AnalysisResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /analyses/{analysisID} [put]
func updateAnalysisHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "analysisID")
		if err != nil {
			httpx.WriteError(w, r, err, analysisNotFound)
			return
		}
		var req analysisRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, r, err, analysisNotFound)
			return
		}
		a, err := svc.Update(r.Context(), id, req.input())
		if err != nil {
			httpx.WriteError(w, r, err, analysisNotFound)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, ToAnalysisResponse(a))
	}
}

// @Summary Borrar análisis
// @Tags analyses
// @Produce json
// @Security BearerAuth
// @Param analysisID path int true "ID del análisis"
// @Success 200 {object} httpx.DetailResponse
// @Failure 404 {object} httpx.DetailResponse
// @Router /analyses/{analysisID} [delete]
func deleteAnalysisHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := httpx.IDParam(r, "analysisID")
		if err != nil {
			httpx.WriteError(w, r, err, analysisNotFound)
			return
		}
		if err := svc.Delete(r.Context(), id); err != nil {
			httpx.WriteError(w, r, err, analysisNotFound)
			return
		}
		httpx.Deleted(w, "Analysis")
	}
}
