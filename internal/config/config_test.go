package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestNewConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := NewConfig()

	assert.Equal(t, DefaultDatabasePath, cfg.Database.Path)
	assert.Equal(t, DBLogSilent, cfg.Database.LogLevel)
	assert.Equal(t, 10, cfg.Shell.SuggestionLimit)
	assert.Equal(t, "2006-01-02 (Mon)", cfg.Shell.DateDisplayFormat)
	assert.Equal(t, DefaultExportDir, cfg.Export.Dir)
	assert.Equal(t, DefaultLogFile, cfg.Logging.File)
}

func TestNewConfig_Environment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BOOKSHELF_DATABASE_PATH", "/tmp/books.db")
	t.Setenv("BOOKSHELF_DB_LOG_LEVEL", "info")
	t.Setenv("BOOKSHELF_SUGGESTION_LIMIT", "5")

	cfg := NewConfig()

	assert.Equal(t, "/tmp/books.db", cfg.Database.Path)
	assert.Equal(t, DBLogInfo, cfg.Database.LogLevel)
	assert.Equal(t, 5, cfg.Shell.SuggestionLimit)
}

func TestNewConfig_NegativeSuggestionLimit(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BOOKSHELF_SUGGESTION_LIMIT", "-3")

	cfg := NewConfig()

	assert.Equal(t, 0, cfg.Shell.SuggestionLimit)
}

func TestNewConfig_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	content := "database_path: ./shelf.db\nexport_dir: ./notes\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg := NewConfig()

	assert.Equal(t, "./shelf.db", cfg.Database.Path)
	assert.Equal(t, "./notes", cfg.Export.Dir)
}
