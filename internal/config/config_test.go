package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "cadence.db"), cfg.DBPath)
	assert.Equal(t, "default", cfg.UserID)
	assert.True(t, cfg.Color)
}

func TestLoad_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "db_path = \"/tmp/elsewhere.db\"\nuser_id = \"alex\"\ncolor = false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/elsewhere.db", cfg.DBPath)
	assert.Equal(t, "alex", cfg.UserID)
	assert.False(t, cfg.Color)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("user_id = \"from-file\"\n"), 0o644))
	t.Setenv("CADENCE_USER_ID", "from-env")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.UserID)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("db_path = [unclosed\n"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
