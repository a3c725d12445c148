package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ipfs-force-community/sophon-filsnap/config"
)

func TestSetLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filsnap.log")
	logger, err := SetLogger(&config.LogConfig{Path: path, Level: "debug"})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.Info("hello filsnap")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello filsnap")

	_, err = SetLogger(&config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}
