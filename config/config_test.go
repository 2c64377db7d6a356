package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv xóa các biến cho tới hết test, godotenv.Load không ghi đè biến đã tồn tại
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		old, ok := os.LookupEnv(k)
		require.NoError(t, os.Unsetenv(k))
		t.Cleanup(func() {
			if ok {
				os.Setenv(k, old)
			} else {
				os.Unsetenv(k)
			}
		})
	}
}

var configKeys = []string{"ENV_FILE", "MONGODB_URL", "MONGODB_DBNAME", "DEFAULT_VAR", "ADDRESS", "AMQP_URL"}

func TestNewConfig_Defaults(t *testing.T) {
	clearEnv(t, configKeys...)
	t.Chdir(t.TempDir())
	t.Setenv("MONGODB_URL", "mongodb://localhost:27017")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB_ConnectionURI)
	assert.Equal(t, "test", cfg.MongoDB_DBName)
	assert.Equal(t, "some default string value", cfg.DefaultVar)
	assert.Equal(t, ":8000", cfg.Address)
	assert.Equal(t, 10, cfg.MongoDB_ConnectTimeout)
	assert.Empty(t, cfg.AMQP_URL)
}

func TestNewConfig_LoadsEnvFileFromParentDir(t *testing.T) {
	clearEnv(t, configKeys...)
	root := t.TempDir()
	content := "MONGODB_URL=mongodb://file:27017\nDEFAULT_VAR=from-file\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte(content), 0o600))
	nested := filepath.Join(root, "cmd", "server")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	t.Chdir(nested)

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://file:27017", cfg.MongoDB_ConnectionURI)
	assert.Equal(t, "from-file", cfg.DefaultVar)
}

func TestNewConfig_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t, configKeys...)
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "crm.env"), []byte("MONGODB_URL=mongodb://file:27017\n"), 0o600))
	t.Chdir(root)
	t.Setenv("ENV_FILE", "crm.env")
	t.Setenv("MONGODB_URL", "mongodb://env:27017")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://env:27017", cfg.MongoDB_ConnectionURI)
}

func TestNewConfig_MissingMongoURL(t *testing.T) {
	clearEnv(t, configKeys...)
	t.Chdir(t.TempDir())

	_, err := NewConfig()
	assert.ErrorIs(t, err, ErrMissingMongoURL)
}

func TestNewConfig_EmptyMongoURL(t *testing.T) {
	clearEnv(t, configKeys...)
	t.Chdir(t.TempDir())
	t.Setenv("MONGODB_URL", "")

	_, err := NewConfig()
	assert.ErrorIs(t, err, ErrMissingMongoURL)
}
