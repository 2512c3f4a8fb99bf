package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "./data", config.DataDir)
	require.Len(t, config.Tables, 1)
	assert.Equal(t, "users", config.Tables[0].Name)
	assert.Equal(t, []string{"name", "age", "email"}, config.Tables[0].Qualifiers())
	assert.Equal(t, "string,i32,?string", config.Tables[0].TypeSpec())
}

func TestConfig_TableLookup(t *testing.T) {
	config := DefaultConfig()

	tbl, ok := config.Table("users")
	require.True(t, ok)
	assert.Equal(t, "users", tbl.Name)

	_, ok = config.Table("missing")
	assert.False(t, ok)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	expected := &Config{
		DataDir: "/custom/data",
		Tables: []Table{
			{
				Name: "events",
				Columns: []Column{
					{Qualifier: "ts", Type: "i64"},
					{Qualifier: "payload", Type: "?bytes"},
				},
			},
		},
	}

	require.NoError(t, SaveConfig(expected, configPath))

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, expected, loaded)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_Malformed(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("::: not yaml"), 0600))

	_, err := LoadConfig(configPath)
	assert.Error(t, err)
}

func TestBootstrapConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "nested", "config.yaml")

	config, err := BootstrapConfig(configPath, "/data/override")
	require.NoError(t, err)
	assert.Equal(t, "/data/override", config.DataDir)
	assert.True(t, ConfigExists(configPath))

	loaded, err := LoadConfig(configPath)
	require.NoError(t, err)
	assert.Equal(t, config, loaded)
}
