//go:build integration

package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/dangerclosesec/vizboard"
	"github.com/dangerclosesec/vizboard/internal/domain"
	"github.com/dangerclosesec/vizboard/internal/migration"
	"github.com/dangerclosesec/vizboard/internal/model"
	"github.com/dangerclosesec/vizboard/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/lib/pq"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	os.Exit(run(m))
}

func run(m *testing.M) int {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("vizboard"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start PostgreSQL container: %v\n", err)
		return 1
	}
	defer container.Terminate(ctx)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to get connection string: %v\n", err)
		return 1
	}

	if err := migrate(ctx, dsn); err != nil {
		fmt.Fprintf(os.Stderr, "failed to migrate: %v\n", err)
		return 1
	}

	testDB, err = gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open database: %v\n", err)
		return 1
	}

	return m.Run()
}

func migrate(ctx context.Context, dsn string) error {
	migrations, err := migration.Load(vizboard.MigrationFS, "migrations")
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = migration.NewMigrator(db, migrations).Apply(ctx)
	return err
}

func createUser(t *testing.T, name string) *model.User {
	t.Helper()
	user := &model.User{Name: name, Email: uuid.NewString() + "@example.com"}
	require.NoError(t, repository.NewUserRepository(testDB).Create(context.Background(), user))
	return user
}

func createTeam(t *testing.T, owner *model.User, members ...*model.User) *model.Team {
	t.Helper()
	team := &model.Team{
		Name:    "Acme Inc",
		Members: []model.TeamMember{{UserID: owner.ID, Role: model.RoleOwner}},
	}
	for _, m := range members {
		team.Members = append(team.Members, model.TeamMember{UserID: m.ID, Role: model.RoleMember})
	}
	require.NoError(t, repository.NewTeamRepository(testDB).Create(context.Background(), team))
	return team
}

func createDataset(t *testing.T, owner *model.User, visibility model.Visibility, teamID *uuid.UUID) *model.Dataset {
	t.Helper()
	ds := &model.Dataset{
		Name:       "Sales",
		FileName:   "sales.csv",
		FileURL:    "https://example.com/uploads/sales.csv",
		OwnerID:    owner.ID,
		Visibility: visibility,
		TeamID:     teamID,
	}
	require.NoError(t, repository.NewDatasetRepository(testDB).Create(context.Background(), ds))
	return ds
}

func ids(datasets []model.Dataset) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(datasets))
	for _, ds := range datasets {
		out = append(out, ds.ID)
	}
	return out
}

func TestDatasetListingRule(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewDatasetRepository(testDB)

	alice := createUser(t, "Alice Johnson")
	bob := createUser(t, "Bob Builder")
	team := createTeam(t, alice, bob)

	public := createDataset(t, alice, model.VisibilityPublic, nil)
	private := createDataset(t, alice, model.VisibilityPrivate, nil)
	shared := createDataset(t, alice, model.VisibilityTeam, &team.ID)

	bobsView, err := repo.List(ctx, repository.DatasetListFilter{CallerID: bob.ID})
	require.NoError(t, err)
	assert.Contains(t, ids(bobsView), public.ID)
	assert.NotContains(t, ids(bobsView), private.ID)
	assert.NotContains(t, ids(bobsView), shared.ID)

	bobsTeamView, err := repo.List(ctx, repository.DatasetListFilter{CallerID: bob.ID, TeamID: &team.ID})
	require.NoError(t, err)
	assert.Contains(t, ids(bobsTeamView), shared.ID)

	alicesView, err := repo.List(ctx, repository.DatasetListFilter{CallerID: alice.ID})
	require.NoError(t, err)
	assert.Contains(t, ids(alicesView), private.ID)

	found, err := repo.FindByID(ctx, shared.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Team)
	assert.Equal(t, "Acme Inc", found.Team.Name)
	assert.Equal(t, "Alice Johnson", found.Owner.Name)
}

func TestTeamDatasetRequiresTeam(t *testing.T) {
	owner := createUser(t, "John Doe")
	ds := &model.Dataset{
		Name:       "Broken",
		FileName:   "broken.csv",
		FileURL:    "https://example.com/uploads/broken.csv",
		OwnerID:    owner.ID,
		Visibility: model.VisibilityTeam,
	}
	assert.ErrorIs(t, repository.NewDatasetRepository(testDB).Create(context.Background(), ds), domain.ErrTeamRequired)

	// Writes that bypass the repository still hit the check constraint.
	assert.Error(t, testDB.Omit("Owner", "Team").Create(ds).Error)
}

func TestAddMemberTwiceKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewTeamRepository(testDB)

	owner := createUser(t, "John Doe")
	jane := createUser(t, "Jane Smith")
	team := createTeam(t, owner)

	added, err := repo.AddMember(ctx, &model.TeamMember{TeamID: team.ID, UserID: jane.ID, Role: model.RoleMember})
	require.NoError(t, err)
	assert.True(t, added)

	added, err = repo.AddMember(ctx, &model.TeamMember{TeamID: team.ID, UserID: jane.ID, Role: model.RoleMember})
	require.NoError(t, err)
	assert.False(t, added)

	var count int64
	require.NoError(t, testDB.Model(&model.TeamMember{}).
		Where("team_id = ? AND user_id = ?", team.ID, jane.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDisbandMakesTeamDatasetsPrivate(t *testing.T) {
	ctx := context.Background()
	teams := repository.NewTeamRepository(testDB)
	datasets := repository.NewDatasetRepository(testDB)

	owner := createUser(t, "John Doe")
	member := createUser(t, "Jane Smith")
	team := createTeam(t, owner, member)
	shared := createDataset(t, member, model.VisibilityTeam, &team.ID)

	reassigned, err := teams.Disband(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), reassigned)

	ds, err := datasets.FindByID(ctx, shared.ID)
	require.NoError(t, err)
	assert.Equal(t, model.VisibilityPrivate, ds.Visibility)
	assert.Nil(t, ds.TeamID)
	assert.Equal(t, member.ID, ds.OwnerID)

	_, err = teams.FindByID(ctx, team.ID)
	assert.ErrorIs(t, err, domain.ErrTeamNotFound)
}

func TestDeleteDatasetCascades(t *testing.T) {
	ctx := context.Background()
	owner := createUser(t, "John Doe")
	ds := createDataset(t, owner, model.VisibilityPublic, nil)

	viz := &model.Visualization{Title: "Revenue", Type: "bar", Config: []byte(`{}`), DatasetID: ds.ID}
	require.NoError(t, repository.NewVisualizationRepository(testDB).Create(ctx, viz))

	comments := repository.NewCommentRepository(testDB)
	comment := &model.Comment{Content: "Nice", AuthorID: owner.ID, VizID: viz.ID}
	require.NoError(t, comments.Create(ctx, comment))

	require.NoError(t, repository.NewDatasetRepository(testDB).Delete(ctx, ds.ID))

	_, err := comments.FindByID(ctx, comment.ID)
	assert.ErrorIs(t, err, domain.ErrCommentNotFound)
}
