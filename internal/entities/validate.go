package entities

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mrlokans/bookshelf/internal/apperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON name so messages match what users type.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the struct tags of a book, session or note and returns an
// apperr.ErrValidation describing the first failing field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.Validation("%v", err)
	}
	return apperr.Validation("%s", describe(fieldErrs[0]))
}

func describe(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
	}
}

// ParseBookType maps user input (value or display name, any case) to a BookType.
func ParseBookType(s string) (BookType, error) {
	s = strings.TrimSpace(s)
	for _, t := range BookTypes {
		if strings.EqualFold(s, string(t)) || strings.EqualFold(s, t.DisplayName()) {
			return t, nil
		}
	}
	return "", apperr.Validation("unknown book type %q (want physical, ebook or audiobook)", s)
}

// ParseReadingStatus maps user input to a ReadingStatus.
func ParseReadingStatus(s string) (ReadingStatus, error) {
	s = strings.TrimSpace(s)
	for _, st := range ReadingStatuses {
		if strings.EqualFold(s, string(st)) || strings.EqualFold(s, st.DisplayName()) {
			return st, nil
		}
	}
	return "", apperr.Validation("unknown status %q (want unread, reading, finished or abandoned)", s)
}

// ParseNoteType maps user input to a NoteType.
func ParseNoteType(s string) (NoteType, error) {
	s = strings.TrimSpace(s)
	for _, t := range NoteTypes {
		if strings.EqualFold(s, string(t)) || strings.EqualFold(s, t.DisplayName()) {
			return t, nil
		}
	}
	return "", apperr.Validation("unknown note type %q (want review, highlight, thought or quote)", s)
}
