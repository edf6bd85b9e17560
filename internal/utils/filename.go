package utils

import (
	"fmt"
	"regexp"
	"strings"
)

const maxFilenameRunes = 200

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	multipleSpaces       = regexp.MustCompile(`\s+`)
)

// SanitizeFilename makes s safe to use as a file name on common
// filesystems and in Markdown vaults. Control characters become spaces,
// reserved characters are dropped and the result is capped at 200 runes.
func SanitizeFilename(s string) string {
	s = strings.NewReplacer("\r", " ", "\n", " ", "\t", " ").Replace(s)
	s = invalidFilenameChars.ReplaceAllString(s, "")
	s = multipleSpaces.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)

	// Markdown link syntax
	s = strings.ReplaceAll(s, "#", "")
	s = strings.ReplaceAll(s, "[", "(")
	s = strings.ReplaceAll(s, "]", ")")
	s = strings.TrimSpace(s)

	if runes := []rune(s); len(runes) > maxFilenameRunes {
		s = strings.TrimSpace(string(runes[:maxFilenameRunes]))
	}
	// Leading dots would hide the file.
	s = strings.TrimLeft(s, ".")

	if s == "" {
		return "Untitled"
	}
	return s
}

// BookFilename builds the Markdown file name for a book.
func BookFilename(title, author string) string {
	if strings.TrimSpace(author) == "" {
		return SanitizeFilename(title) + ".md"
	}
	return SanitizeFilename(fmt.Sprintf("%s - %s", title, author)) + ".md"
}
