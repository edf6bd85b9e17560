package shell

import (
	"fmt"
	"os"
	"strings"

	"github.com/mrlokans/bookshelf/internal/apperr"
	"github.com/mrlokans/bookshelf/internal/entities"
	"github.com/mrlokans/bookshelf/internal/exporters"
	"github.com/mrlokans/bookshelf/internal/importers"
)

func (s *Shell) cmdExport(args []string) error {
	dir := strings.Join(args, " ")
	if dir == "" {
		var err error
		dir, err = s.stores.Settings.GetValue(entities.SettingKeyExportDir, s.cfg.Export.Dir)
		if err != nil {
			return err
		}
	}

	lib := library{
		BookStore:    s.stores.Books,
		SessionStore: s.stores.Sessions,
		NoteStore:    s.stores.Notes,
	}
	result, err := exporters.NewMarkdownExporter(lib, dir).ExportAll()
	if err != nil {
		return err
	}

	s.printf("Exported %d books (%d sessions, %d notes) to %s.\n",
		result.BooksProcessed, result.SessionsProcessed, result.NotesProcessed, dir)
	if result.BooksFailed > 0 {
		s.printf("%d books failed, see the log for details.\n", result.BooksFailed)
	}
	return nil
}

func (s *Shell) cmdImport(args []string) error {
	path := strings.Join(args, " ")
	if path == "" {
		var err error
		if path, err = s.ask("Path to My Clippings.txt", ""); err != nil {
			return err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open clippings: %w", err)
	}
	defer f.Close()

	result, err := importers.NewPipeline(s.stores.Books, s.stores.Notes).ImportKindle(f)
	if err != nil {
		return err
	}

	s.printf("Imported %d notes (%d already present) into %d new and %d existing books.\n",
		result.NotesImported, result.NotesSkipped, result.BooksCreated, result.BooksMatched)
	return nil
}

func (s *Shell) cmdSet(args []string) error {
	if len(args) == 0 {
		for _, key := range entities.SettingKeys {
			value, err := s.stores.Settings.GetValue(key, "")
			if err != nil {
				return err
			}
			if value == "" {
				value = "(default)"
			}
			s.printf("%-18s %s\n", key, value)
		}
		return nil
	}

	key := args[0]
	value := strings.Join(args[1:], " ")

	switch key {
	case entities.SettingKeyDefaultBookType:
		bookType, err := entities.ParseBookType(value)
		if err != nil {
			return err
		}
		value = string(bookType)
	case entities.SettingKeyExportDir:
		if value == "" {
			return apperr.Validation("export_dir needs a directory")
		}
	default:
		return apperr.Validation("unknown setting %q (known: %s)", key, strings.Join(entities.SettingKeys, ", "))
	}

	if err := s.stores.Settings.SetSetting(key, value); err != nil {
		return err
	}
	s.printf("%s = %s\n", key, value)
	return nil
}
