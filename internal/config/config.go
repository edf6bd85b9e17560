package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type DBLogLevel string

const (
	DBLogSilent DBLogLevel = "silent" // No SQL logging (default)
	DBLogError  DBLogLevel = "error"
	DBLogWarn   DBLogLevel = "warn"
	DBLogInfo   DBLogLevel = "info" // Every statement
)

type (
	Config struct {
		Database
		Shell
		Export
		Logging
	}

	Database struct {
		Path     string
		LogLevel DBLogLevel
	}
	Shell struct {
		HistoryFile       string
		SuggestionLimit   int    // Max suggestions shown by the author picker
		DateDisplayFormat string // Go time layout used when printing dates
	}
	Export struct {
		Dir string
	}
	Logging struct {
		File string // Empty keeps logging on stderr
	}
)

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultHistoryFile)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "bookshelf"))
	}
	v.AddConfigPath(".")

	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("db_log_level", string(DBLogSilent))
	v.SetDefault("history_file", defaultHistoryFile())
	v.SetDefault("suggestion_limit", 10)
	v.SetDefault("date_display_format", "2006-01-02 (Mon)")
	v.SetDefault("export_dir", DefaultExportDir)
	v.SetDefault("log_file", DefaultLogFile)
	return v
}

// NewConfig reads configuration from BOOKSHELF_* environment variables and an
// optional config.yaml, falling back to defaults.
func NewConfig() *Config {
	v := newViper()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("[CONFIG] Ignoring unreadable config file: %v", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	limit := v.GetInt("suggestion_limit")
	if limit < 0 {
		limit = 0
	}

	return &Config{
		Database: Database{
			Path:     v.GetString("database_path"),
			LogLevel: DBLogLevel(v.GetString("db_log_level")),
		},
		Shell: Shell{
			HistoryFile:       v.GetString("history_file"),
			SuggestionLimit:   limit,
			DateDisplayFormat: v.GetString("date_display_format"),
		},
		Export: Export{
			Dir: v.GetString("export_dir"),
		},
		Logging: Logging{
			File: v.GetString("log_file"),
		},
	}
}
