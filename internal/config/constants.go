package config

// Default paths
const (
	// DefaultDatabasePath is the default path for the library database
	DefaultDatabasePath = "./book_library.db"

	// DefaultHistoryFile is the shell history file name, stored in the user's home directory
	DefaultHistoryFile = ".bookshelf_history"

	// DefaultLogFile receives log output while the interactive shell owns the terminal
	DefaultLogFile = "./bookshelf.log"

	// DefaultExportDir is where markdown exports land when no directory is given
	DefaultExportDir = "./export"
)

// EnvPrefix is prepended to every environment variable read by NewConfig.
const EnvPrefix = "BOOKSHELF"
