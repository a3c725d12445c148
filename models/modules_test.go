package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipfs-force-community/sophon-filsnap/filestore"
)

func TestSetDataBase(t *testing.T) {
	t.Run("sqlite", func(t *testing.T) {
		fsRepo := filestore.NewMockFileStore(t.TempDir())
		r, err := SetDataBase(fsRepo)
		require.NoError(t, err)
		defer func() {
			assert.NoError(t, r.DbClose())
		}()
		require.NoError(t, AutoMigrate(r))

		assert.NoError(t, r.StateRepo().SaveState("npm:filsnap", []byte(`{}`)))
		res, err := r.StateRepo().GetState("npm:filsnap")
		assert.NoError(t, err)
		assert.Equal(t, []byte(`{}`), res)
	})

	t.Run("unknown db type", func(t *testing.T) {
		fsRepo := filestore.NewMockFileStore(t.TempDir())
		fsRepo.Config().DB.Type = "postgres"
		_, err := SetDataBase(fsRepo)
		assert.Error(t, err)
	})
}
