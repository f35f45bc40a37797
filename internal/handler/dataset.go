package handler

import (
	"net/http"
	"strings"

	"github.com/dangerclosesec/vizboard/internal/serializer"
	"github.com/dangerclosesec/vizboard/internal/service"
)

type DatasetHandler struct {
	datasetService       *service.DatasetService
	visualizationService *service.VisualizationService
}

func NewDatasetHandler(datasetService *service.DatasetService, visualizationService *service.VisualizationService) *DatasetHandler {
	return &DatasetHandler{
		datasetService:       datasetService,
		visualizationService: visualizationService,
	}
}

type FileLocationResponse struct {
	FileName    string `json:"fileName"`
	FileURL     string `json:"fileUrl"`
	ContentType string `json:"contentType"`
}

func (h *DatasetHandler) List(w http.ResponseWriter, r *http.Request) {
	teamID, ok := queryUUID(w, r, "teamId")
	if !ok {
		return
	}

	datasets, err := h.datasetService.List(r.Context(), teamID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.Many(datasets, serializer.Dataset))
}

func (h *DatasetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateDatasetInput
	if !decodeJSON(w, r, &input) {
		return
	}

	dataset, err := h.datasetService.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, serializer.Dataset(dataset))
}

func (h *DatasetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "dataset")
	if !ok {
		return
	}

	dataset, err := h.datasetService.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.Dataset(dataset))
}

func (h *DatasetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "dataset")
	if !ok {
		return
	}

	var input service.UpdateDatasetInput
	if !decodeJSON(w, r, &input) {
		return
	}

	dataset, err := h.datasetService.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.Dataset(dataset))
}

func (h *DatasetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "dataset")
	if !ok {
		return
	}

	if err := h.datasetService.Delete(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}
	respondOK(w)
}

// File redirects to the stored file. JSON clients get the location instead.
func (h *DatasetHandler) File(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "dataset")
	if !ok {
		return
	}

	loc, err := h.datasetService.FileLocation(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		respondWithJSON(w, http.StatusOK, FileLocationResponse{
			FileName:    loc.FileName,
			FileURL:     loc.FileURL,
			ContentType: loc.ContentType,
		})
		return
	}
	http.Redirect(w, r, loc.FileURL, http.StatusFound)
}

func (h *DatasetHandler) Visualizations(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id", "dataset")
	if !ok {
		return
	}

	vizs, err := h.visualizationService.List(r.Context(), &id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, serializer.Many(vizs, serializer.Visualization))
}
