package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/config"
)

func TestNew_Stdout(t *testing.T) {
	for _, mode := range []string{"development", "production"} {
		t.Run(mode, func(t *testing.T) {
			log, err := New(&config.Config{LogMode: mode})
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestNew_FileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storefront.log")

	log, err := New(&config.Config{LogMode: "production", LogFile: path})
	require.NoError(t, err)
	log.Info("product created")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"product created"`)
}
