package serializer

import (
	"encoding/json"

	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/google/uuid"
)

type VisualizationRecord struct {
	ID          uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Type        string          `json:"type"`
	Config      json.RawMessage `json:"config"`
	DatasetID   uuid.UUID       `json:"datasetId"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

func Visualization(v *model.Visualization) VisualizationRecord {
	config := json.RawMessage(v.Config)
	if len(config) == 0 {
		config = json.RawMessage("null")
	}
	return VisualizationRecord{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Type:        v.Type,
		Config:      config,
		DatasetID:   v.DatasetID,
		CreatedAt:   isoTime(v.CreatedAt),
		UpdatedAt:   isoTime(v.UpdatedAt),
	}
}
