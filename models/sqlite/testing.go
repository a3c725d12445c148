package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ipfs-force-community/sophon-filsnap/filestore"
	"github.com/ipfs-force-community/sophon-filsnap/models/repo"
)

func setupRepo(t *testing.T) repo.Repo {
	fs := filestore.NewMockFileStore(t.TempDir())
	sqliteRepo, err := OpenSqlite(fs)
	assert.NoError(t, err)
	assert.NoError(t, sqliteRepo.AutoMigrate())
	t.Cleanup(func() {
		assert.NoError(t, sqliteRepo.DbClose())
	})

	return sqliteRepo
}
