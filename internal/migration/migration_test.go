package migration

import (
	"testing"
	"testing/fstest"

	"github.com/dangerclosesec/vizboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrdersByVersion(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/010_add_index.sql": {Data: []byte("CREATE INDEX a ON b(c);")},
		"migrations/002_teams.sql":     {Data: []byte("CREATE TABLE teams();")},
		"migrations/001_init.sql":      {Data: []byte("CREATE TABLE users();")},
	}

	migrations, err := Load(fsys, "migrations")
	require.NoError(t, err)
	require.Len(t, migrations, 3)
	assert.Equal(t, []int{1, 2, 10}, []int{migrations[0].Version, migrations[1].Version, migrations[2].Version})
	assert.Equal(t, "add_index", migrations[2].Name)
	assert.Equal(t, "CREATE TABLE users();", migrations[0].SQL)
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := map[string]fstest.MapFS{
		"bad name": {
			"migrations/init.sql": {Data: []byte("")},
		},
		"zero version": {
			"migrations/000_init.sql": {Data: []byte("")},
		},
		"duplicate version": {
			"migrations/001_init.sql":  {Data: []byte("")},
			"migrations/0001_more.sql": {Data: []byte("")},
		},
	}

	for name, fsys := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(fsys, "migrations")
			assert.Error(t, err)
		})
	}
}

func TestPending(t *testing.T) {
	all := []Migration{{Version: 1}, {Version: 2}, {Version: 3}}

	assert.Len(t, Pending(all, 0), 3)
	assert.Equal(t, []Migration{{Version: 3}}, Pending(all, 2))
	assert.Empty(t, Pending(all, 3))
}

func TestEmbeddedMigrationsLoad(t *testing.T) {
	migrations, err := Load(vizboard.MigrationFS, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, migrations)
	assert.Equal(t, 1, migrations[0].Version)
	assert.Contains(t, migrations[0].SQL, "CREATE TYPE team_role")
}
