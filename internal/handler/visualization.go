package handler

import (
	"net/http"

	"github.com/dangerclosesec/vizboard/internal/serializer"
	"github.com/dangerclosesec/vizboard/internal/service"
)

type VisualizationHandler struct {
	visualizationService *service.VisualizationService
}

func NewVisualizationHandler(visualizationService *service.VisualizationService) *VisualizationHandler {
	return &VisualizationHandler{visualizationService: visualizationService}
}

func (h *VisualizationHandler) List(w http.ResponseWriter, r *http.Request) {
	datasetID, ok := queryUUID(w, r, "datasetId")
	if !ok {
		return
	}

	vizs, err := h.visualizationService.List(r.Context(), datasetID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.Many(vizs, serializer.Visualization))
}

func (h *VisualizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateVisualizationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	viz, err := h.visualizationService.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, serializer.Visualization(viz))
}

func (h *VisualizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "visualization")
	if !ok {
		return
	}

	viz, err := h.visualizationService.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.Visualization(viz))
}

func (h *VisualizationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "visualization")
	if !ok {
		return
	}

	var input service.UpdateVisualizationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	viz, err := h.visualizationService.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.Visualization(viz))
}

func (h *VisualizationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "visualization")
	if !ok {
		return
	}

	if err := h.visualizationService.Delete(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	respondOK(w)
}
