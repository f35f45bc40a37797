package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/dangerclosesec/vizboard/internal/handler"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/dangerclosesec/vizboard/internal/repository"
	"github.com/dangerclosesec/vizboard/internal/serializer"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListDatasets(t *testing.T) {
	callerID := uuid.New()

	t.Run("records are flattened", func(t *testing.T) {
		api := newTestAPI(t, callerID)
		api.datasets.EXPECT().List(gomock.Any(), repository.DatasetListFilter{CallerID: callerID}).
			Return([]model.Dataset{{
				ID:                 uuid.New(),
				Name:               "Sales",
				Visibility:         model.VisibilityPublic,
				VisualizationCount: 2,
				Owner:              &model.User{Name: "Jane Smith"},
			}}, nil)

		rec := api.do(t, http.MethodGet, "/api/datasets", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		records := decodeBody[[]serializer.DatasetRecord](t, rec)
		require.Len(t, records, 1)
		assert.Equal(t, "Jane Smith", records[0].Owner)
		assert.Nil(t, records[0].Team)
		assert.Equal(t, int64(2), records[0].VisualizationCount)
	})

	t.Run("empty listing is an array", func(t *testing.T) {
		api := newTestAPI(t, callerID)
		api.datasets.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		rec := api.do(t, http.MethodGet, "/api/datasets", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("malformed team filter", func(t *testing.T) {
		api := newTestAPI(t, callerID)

		rec := api.do(t, http.MethodGet, "/api/datasets?teamId=acme", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		api := newTestAPI(t, callerID)
		api.datasets.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		rec := api.do(t, http.MethodGet, "/api/datasets", nil)
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		body := decodeBody[handler.ErrorResponse](t, rec)
		assert.Equal(t, "Internal server error", body.Error)
	})
}

func TestCreateDataset(t *testing.T) {
	callerID := uuid.New()
	body := map[string]any{
		"name":       "Sales",
		"fileName":   "sales.csv",
		"fileUrl":    "https://bucket.s3.amazonaws.com/uploads/sales.csv",
		"ownerId":    uuid.New(),
		"visibility": "TEAM",
	}

	t.Run("team visibility without team", func(t *testing.T) {
		api := newTestAPI(t, callerID)

		rec := api.do(t, http.MethodPost, "/api/datasets", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("owner comes from the session", func(t *testing.T) {
		api := newTestAPI(t, callerID)
		datasetID := uuid.New()

		api.datasets.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ds *model.Dataset) error {
				assert.Equal(t, callerID, ds.OwnerID)
				ds.ID = datasetID
				return nil
			})
		api.datasets.EXPECT().FindByID(gomock.Any(), datasetID).
			Return(&model.Dataset{ID: datasetID, Name: "Sales", OwnerID: callerID, Visibility: model.VisibilityPrivate}, nil)

		private := map[string]any{}
		for k, v := range body {
			private[k] = v
		}
		private["visibility"] = "PRIVATE"

		rec := api.do(t, http.MethodPost, "/api/datasets", private)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, datasetID, decodeBody[serializer.DatasetRecord](t, rec).ID)
	})
}

func TestUpdateDatasetByNonOwner(t *testing.T) {
	callerID := uuid.New()
	datasetID := uuid.New()
	api := newTestAPI(t, callerID)

	api.datasets.EXPECT().FindByID(gomock.Any(), datasetID).
		Return(&model.Dataset{ID: datasetID, OwnerID: uuid.New(), Visibility: model.VisibilityPublic}, nil)

	rec := api.do(t, http.MethodPut, "/api/datasets/"+datasetID.String(), map[string]any{"name": "Mine"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDatasetFile(t *testing.T) {
	callerID := uuid.New()
	datasetID := uuid.New()
	dataset := &model.Dataset{
		ID:         datasetID,
		OwnerID:    callerID,
		Visibility: model.VisibilityPrivate,
		FileName:   "sales.csv",
		FileURL:    "https://bucket.s3.amazonaws.com/uploads/sales.csv",
	}

	api := newTestAPI(t, callerID)
	api.datasets.EXPECT().FindByID(gomock.Any(), datasetID).Return(dataset, nil)

	rec := api.do(t, http.MethodGet, "/api/datasets/"+datasetID.String()+"/file", nil)
	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, dataset.FileURL, rec.Header().Get("Location"))
}
