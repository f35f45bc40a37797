package serializer

import (
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/google/uuid"
)

// DatasetRecord is the listing shape. The file URL is left out; clients
// fetch files through the dataset file endpoint.
type DatasetRecord struct {
	ID                 uuid.UUID        `json:"id"`
	Name               string           `json:"name"`
	Description        *string          `json:"description"`
	CreatedAt          string           `json:"createdAt"`
	Team               *string          `json:"team"`
	TeamID             *uuid.UUID       `json:"teamId"`
	Visibility         model.Visibility `json:"visibility"`
	VisualizationCount int64            `json:"visualizationCount"`
	Owner              string           `json:"owner"`
	OwnerID            uuid.UUID        `json:"ownerId"`
	FileName           string           `json:"fileName"`
}

func Dataset(ds *model.Dataset) DatasetRecord {
	record := DatasetRecord{
		ID:                 ds.ID,
		Name:               ds.Name,
		Description:        ds.Description,
		CreatedAt:          isoTime(ds.CreatedAt),
		TeamID:             ds.TeamID,
		Visibility:         ds.Visibility,
		VisualizationCount: ds.VisualizationCount,
		OwnerID:            ds.OwnerID,
		FileName:           ds.FileName,
	}
	if ds.Owner != nil {
		record.Owner = ds.Owner.Name
	}
	if ds.Team != nil {
		name := ds.Team.Name
		record.Team = &name
	}
	return record
}
