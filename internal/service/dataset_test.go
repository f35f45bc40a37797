package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/dangerclosesec/vizboard/internal/domain"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/dangerclosesec/vizboard/internal/repository"
	"github.com/dangerclosesec/vizboard/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validDatasetInput() service.CreateDatasetInput {
	return service.CreateDatasetInput{
		Name:     "Sales",
		FileName: "sales.csv",
		FileURL:  "https://bucket.s3.amazonaws.com/uploads/sales.csv",
	}
}

func TestDatasetCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	teamID := uuid.New()

	t.Run("defaults to private and owner is the caller", func(t *testing.T) {
		f := newFixture(ctrl)
		svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)
		datasetID := uuid.New()

		f.datasets.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ds *model.Dataset) error {
				assert.Equal(t, ownerID, ds.OwnerID)
				assert.Equal(t, model.VisibilityPrivate, ds.Visibility)
				assert.Nil(t, ds.TeamID)
				ds.ID = datasetID
				return nil
			})
		f.datasets.EXPECT().FindByID(gomock.Any(), datasetID).
			Return(&model.Dataset{ID: datasetID, Name: "Sales", OwnerID: ownerID, Visibility: model.VisibilityPrivate}, nil)

		ds, err := svc.Create(asCaller(ownerID), validDatasetInput())
		require.NoError(t, err)
		assert.Equal(t, datasetID, ds.ID)
	})

	t.Run("team visibility for a member", func(t *testing.T) {
		f := newFixture(ctrl)
		svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)

		input := validDatasetInput()
		input.Visibility = "team"
		input.TeamID = &teamID

		f.teams.EXPECT().FindByID(gomock.Any(), teamID).Return(&model.Team{ID: teamID, Name: "Acme Inc"}, nil)
		f.teams.EXPECT().FindMember(gomock.Any(), teamID, ownerID).Return(&model.TeamMember{Role: model.RoleMember}, nil)
		f.datasets.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ds *model.Dataset) error {
				assert.Equal(t, model.VisibilityTeam, ds.Visibility)
				require.NotNil(t, ds.TeamID)
				assert.Equal(t, teamID, *ds.TeamID)
				return nil
			})
		f.datasets.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(&model.Dataset{}, nil)

		_, err := svc.Create(asCaller(ownerID), input)
		require.NoError(t, err)
	})

	tests := []struct {
		name    string
		mutate  func(*service.CreateDatasetInput)
		setup   func(*fixture)
		wantErr error
		status  int
	}{
		{
			name:    "team visibility without team",
			mutate:  func(in *service.CreateDatasetInput) { in.Visibility = "TEAM" },
			wantErr: domain.ErrTeamRequired,
		},
		{
			name: "team visibility with unknown team",
			mutate: func(in *service.CreateDatasetInput) {
				in.Visibility = "TEAM"
				in.TeamID = &teamID
			},
			setup: func(f *fixture) {
				f.teams.EXPECT().FindByID(gomock.Any(), teamID).Return(nil, domain.ErrTeamNotFound)
			},
			wantErr: domain.ErrTeamRequired,
		},
		{
			name: "team visibility for a non-member",
			mutate: func(in *service.CreateDatasetInput) {
				in.Visibility = "TEAM"
				in.TeamID = &teamID
			},
			setup: func(f *fixture) {
				f.teams.EXPECT().FindByID(gomock.Any(), teamID).Return(&model.Team{ID: teamID}, nil)
				f.teams.EXPECT().FindMember(gomock.Any(), teamID, ownerID).Return(nil, domain.ErrMemberNotFound)
			},
			status: http.StatusForbidden,
		},
		{
			name: "public with a team",
			mutate: func(in *service.CreateDatasetInput) {
				in.Visibility = "PUBLIC"
				in.TeamID = &teamID
			},
			wantErr: domain.ErrTeamNotAllowed,
		},
		{
			name:    "unknown visibility",
			mutate:  func(in *service.CreateDatasetInput) { in.Visibility = "SECRET" },
			wantErr: domain.ErrInvalidVisibility,
		},
		{
			name:    "blank name",
			mutate:  func(in *service.CreateDatasetInput) { in.Name = "   " },
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "file url is not a url",
			mutate:  func(in *service.CreateDatasetInput) { in.FileURL = "sales.csv" },
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(ctrl)
			svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)
			if tt.setup != nil {
				tt.setup(f)
			}

			input := validDatasetInput()
			tt.mutate(&input)

			_, err := svc.Create(asCaller(ownerID), input)
			require.Error(t, err)
			if tt.status != 0 {
				assertDenied(t, err, tt.status)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("anonymous", func(t *testing.T) {
		f := newFixture(ctrl)
		svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)

		_, err := svc.Create(context.Background(), validDatasetInput())
		assertDenied(t, err, http.StatusUnauthorized)
	})
}

func TestDatasetUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	otherID := uuid.New()
	teamID := uuid.New()
	datasetID := uuid.New()

	private := func() *model.Dataset {
		return &model.Dataset{ID: datasetID, Name: "Sales", OwnerID: ownerID, Visibility: model.VisibilityPrivate}
	}

	t.Run("non-owner is rejected before any write", func(t *testing.T) {
		f := newFixture(ctrl)
		svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)
		f.datasets.EXPECT().FindByID(gomock.Any(), datasetID).Return(private(), nil)

		_, err := svc.Update(asCaller(otherID), datasetID, service.UpdateDatasetInput{Name: ptr("Mine now")})
		assertDenied(t, err, http.StatusForbidden)
	})

	t.Run("team without team id keeps the dataset untouched", func(t *testing.T) {
		f := newFixture(ctrl)
		svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)
		f.datasets.EXPECT().FindByID(gomock.Any(), datasetID).Return(private(), nil)

		_, err := svc.Update(asCaller(ownerID), datasetID, service.UpdateDatasetInput{Visibility: ptr("TEAM")})
		assert.ErrorIs(t, err, domain.ErrTeamRequired)
	})

	t.Run("owner shares with a team", func(t *testing.T) {
		f := newFixture(ctrl)
		svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)

		f.datasets.EXPECT().FindByID(gomock.Any(), datasetID).Return(private(), nil)
		f.teams.EXPECT().FindByID(gomock.Any(), teamID).Return(&model.Team{ID: teamID}, nil)
		f.teams.EXPECT().FindMember(gomock.Any(), teamID, ownerID).Return(&model.TeamMember{Role: model.RoleOwner}, nil)
		f.datasets.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ds *model.Dataset) error {
				assert.Equal(t, model.VisibilityTeam, ds.Visibility)
				require.NotNil(t, ds.TeamID)
				assert.Equal(t, teamID, *ds.TeamID)
				assert.True(t, ds.IsConsistent())
				return nil
			})
		f.datasets.EXPECT().FindByID(gomock.Any(), datasetID).Return(private(), nil)

		_, err := svc.Update(asCaller(ownerID), datasetID, service.UpdateDatasetInput{
			Visibility: ptr("TEAM"),
			TeamID:     &teamID,
		})
		require.NoError(t, err)
	})

	t.Run("switching to public clears the team", func(t *testing.T) {
		f := newFixture(ctrl)
		svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)

		shared := private()
		shared.Visibility = model.VisibilityTeam
		shared.TeamID = &teamID

		f.datasets.EXPECT().FindByID(gomock.Any(), datasetID).Return(shared, nil)
		f.datasets.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ds *model.Dataset) error {
				assert.Equal(t, model.VisibilityPublic, ds.Visibility)
				assert.Nil(t, ds.TeamID)
				assert.Equal(t, "Q3 Sales", ds.Name)
				return nil
			})
		f.datasets.EXPECT().FindByID(gomock.Any(), datasetID).Return(private(), nil)

		_, err := svc.Update(asCaller(ownerID), datasetID, service.UpdateDatasetInput{
			Name:       ptr(" Q3 Sales "),
			Visibility: ptr("PUBLIC"),
		})
		require.NoError(t, err)
	})

	t.Run("owner renames a team dataset after leaving the team", func(t *testing.T) {
		f := newFixture(ctrl)
		svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)

		shared := private()
		shared.Visibility = model.VisibilityTeam
		shared.TeamID = &teamID

		f.datasets.EXPECT().FindByID(gomock.Any(), datasetID).Return(shared, nil)
		f.teams.EXPECT().FindByID(gomock.Any(), teamID).Return(&model.Team{ID: teamID}, nil)
		f.teams.EXPECT().FindMember(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.datasets.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ds *model.Dataset) error {
				assert.Equal(t, "Renamed", ds.Name)
				assert.Equal(t, model.VisibilityTeam, ds.Visibility)
				require.NotNil(t, ds.TeamID)
				assert.Equal(t, teamID, *ds.TeamID)
				return nil
			})
		f.datasets.EXPECT().FindByID(gomock.Any(), datasetID).Return(shared, nil)

		_, err := svc.Update(asCaller(ownerID), datasetID, service.UpdateDatasetInput{Name: ptr("Renamed")})
		require.NoError(t, err)
	})

	t.Run("owner cannot move a team dataset to a team they left", func(t *testing.T) {
		f := newFixture(ctrl)
		svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)

		shared := private()
		shared.Visibility = model.VisibilityTeam
		shared.TeamID = &teamID
		otherTeamID := uuid.New()

		f.datasets.EXPECT().FindByID(gomock.Any(), datasetID).Return(shared, nil)
		f.teams.EXPECT().FindByID(gomock.Any(), otherTeamID).Return(&model.Team{ID: otherTeamID}, nil)
		f.teams.EXPECT().FindMember(gomock.Any(), otherTeamID, ownerID).Return(nil, domain.ErrMemberNotFound)

		_, err := svc.Update(asCaller(ownerID), datasetID, service.UpdateDatasetInput{TeamID: &otherTeamID})
		assertDenied(t, err, http.StatusForbidden)
	})

	t.Run("kept team that no longer exists is rejected", func(t *testing.T) {
		f := newFixture(ctrl)
		svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)

		shared := private()
		shared.Visibility = model.VisibilityTeam
		shared.TeamID = &teamID

		f.datasets.EXPECT().FindByID(gomock.Any(), datasetID).Return(shared, nil)
		f.teams.EXPECT().FindByID(gomock.Any(), teamID).Return(nil, domain.ErrTeamNotFound)

		_, err := svc.Update(asCaller(ownerID), datasetID, service.UpdateDatasetInput{Description: ptr("Q3")})
		assert.ErrorIs(t, err, domain.ErrTeamRequired)
	})

	t.Run("missing dataset", func(t *testing.T) {
		f := newFixture(ctrl)
		svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)
		f.datasets.EXPECT().FindByID(gomock.Any(), datasetID).Return(nil, domain.ErrDatasetNotFound)

		_, err := svc.Update(asCaller(ownerID), datasetID, service.UpdateDatasetInput{Name: ptr("x")})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestDatasetList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	acme := uuid.New()

	t.Run("member keeps the team filter", func(t *testing.T) {
		f := newFixture(ctrl)
		svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)

		f.teams.EXPECT().FindMember(gomock.Any(), acme, callerID).Return(&model.TeamMember{Role: model.RoleMember}, nil)
		f.datasets.EXPECT().List(gomock.Any(), repository.DatasetListFilter{CallerID: callerID, TeamID: &acme}).
			Return([]model.Dataset{{Name: "Sales"}}, nil)

		datasets, err := svc.List(asCaller(callerID), &acme)
		require.NoError(t, err)
		assert.Len(t, datasets, 1)
	})

	t.Run("non-member filter is dropped", func(t *testing.T) {
		f := newFixture(ctrl)
		svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)

		f.teams.EXPECT().FindMember(gomock.Any(), acme, callerID).Return(nil, domain.ErrMemberNotFound)
		f.datasets.EXPECT().List(gomock.Any(), repository.DatasetListFilter{CallerID: callerID}).Return(nil, nil)

		_, err := svc.List(asCaller(callerID), &acme)
		require.NoError(t, err)
	})

	t.Run("anonymous", func(t *testing.T) {
		f := newFixture(ctrl)
		svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)

		_, err := svc.List(context.Background(), nil)
		assertDenied(t, err, http.StatusUnauthorized)
	})
}

func TestDatasetGetAndFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	datasetID := uuid.New()
	dataset := &model.Dataset{
		ID:         datasetID,
		OwnerID:    ownerID,
		Visibility: model.VisibilityPrivate,
		FileName:   "Sales.XLSX",
		FileURL:    "https://bucket.s3.amazonaws.com/uploads/sales.xlsx",
	}

	t.Run("private dataset is hidden from others", func(t *testing.T) {
		f := newFixture(ctrl)
		svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)
		f.datasets.EXPECT().FindByID(gomock.Any(), datasetID).Return(dataset, nil)

		_, err := svc.Get(asCaller(uuid.New()), datasetID)
		assertDenied(t, err, http.StatusForbidden)
	})

	t.Run("owner gets the file location", func(t *testing.T) {
		f := newFixture(ctrl)
		svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)
		f.datasets.EXPECT().FindByID(gomock.Any(), datasetID).Return(dataset, nil)

		loc, err := svc.FileLocation(asCaller(ownerID), datasetID)
		require.NoError(t, err)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", loc.ContentType)
		assert.Equal(t, dataset.FileURL, loc.FileURL)
	})
}

func TestDatasetDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	datasetID := uuid.New()
	dataset := &model.Dataset{ID: datasetID, OwnerID: ownerID, Visibility: model.VisibilityPublic}

	f := newFixture(ctrl)
	svc := service.NewDatasetService(f.datasets, f.teams, f.authz, f.resolver)

	f.datasets.EXPECT().FindByID(gomock.Any(), datasetID).Return(dataset, nil)
	err := svc.Delete(asCaller(uuid.New()), datasetID)
	assertDenied(t, err, http.StatusForbidden)

	f.datasets.EXPECT().FindByID(gomock.Any(), datasetID).Return(dataset, nil)
	f.datasets.EXPECT().Delete(gomock.Any(), datasetID).Return(nil)
	require.NoError(t, svc.Delete(asCaller(ownerID), datasetID))
}
