// Package kindle reads the "My Clippings.txt" file a Kindle keeps in its
// documents folder and turns its entries into notes grouped by book.
//
// Highlights become highlight notes, Kindle notes become thought notes and
// bookmarks are dropped since they carry no text.
package kindle

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// UnknownAuthor is used for clippings whose title line names no author.
const UnknownAuthor = "Unknown"

// Entry types in Kindle clippings
type EntryType string

const (
	EntryTypeHighlight EntryType = "highlight"
	EntryTypeNote      EntryType = "note"
	EntryTypeBookmark  EntryType = "bookmark"
)

// Clipping is a single entry of My Clippings.txt.
type Clipping struct {
	Title       string
	Author      string
	Type        EntryType
	Page        int
	PageEnd     int
	Location    int
	LocationEnd int
	AddedAt     time.Time
	Text        string
}

// Book holds the notes parsed for one title, in file order.
type Book struct {
	Title  string
	Author string
	Notes  []entities.Note
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

const (
	entrySeparator = "=========="
	byteOrderMark  = "\ufeff"
)

var (
	// "- Your Highlight on page 8 | Location 64-64 | Added on Tuesday, April 15, 2025 10:16:21 PM"
	// "- Your Bookmark at location 346 | Added on Saturday, 26 March 2016 15:46:21"
	metadataPattern = regexp.MustCompile(`^- Your (Highlight|Note|Bookmark)`)

	pagePattern     = regexp.MustCompile(`(?i)(?:on )?page (\d+)(?:-(\d+))?`)
	locationPattern = regexp.MustCompile(`(?i)(?:at )?location (\d+)(?:-(\d+))?`)

	// US and European devices write different layouts.
	dateLayouts = []string{
		"Monday, January 2, 2006 3:04:05 PM",
		"Monday, January 2, 2006 15:04:05",
		"Monday, 2 January 2006 3:04:05 PM",
		"Monday, 2 January 2006 15:04:05",
	}

	// "Book Title (Author Name)"
	titleAuthorPattern = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)\s*$`)
)

// Parse reads a clippings file and groups its notes by book. Books keep the
// order in which they first appear.
func (p *Parser) Parse(r io.Reader) ([]Book, error) {
	clippings, err := p.ParseClippings(r)
	if err != nil {
		return nil, err
	}
	return groupByBook(clippings), nil
}

// ParseClippings returns every highlight and note entry. Malformed entries,
// empty highlights and bookmarks are skipped.
func (p *Parser) ParseClippings(r io.Reader) ([]Clipping, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var clippings []Clipping
	var block []string

	flush := func() {
		if len(block) == 0 {
			return
		}
		if c, ok := parseBlock(block); ok {
			clippings = append(clippings, c)
		}
		block = nil
	}

	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == entrySeparator {
			flush()
			continue
		}
		block = append(block, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading clippings: %w", err)
	}
	flush()

	return clippings, nil
}

func parseBlock(lines []string) (Clipping, bool) {
	// Devices insert a BOM before every title, not only at file start.
	for len(lines) > 0 && strings.TrimSpace(strings.TrimPrefix(lines[0], byteOrderMark)) == "" {
		lines = lines[1:]
	}
	if len(lines) < 2 {
		return Clipping{}, false
	}

	title, author := parseTitleAuthor(strings.TrimPrefix(lines[0], byteOrderMark))
	if title == "" {
		return Clipping{}, false
	}

	meta := strings.TrimSpace(lines[1])
	if !metadataPattern.MatchString(meta) {
		return Clipping{}, false
	}

	c := Clipping{
		Title:   title,
		Author:  author,
		Type:    parseEntryType(meta),
		AddedAt: parseDate(meta),
		Text:    strings.TrimSpace(strings.Join(lines[2:], "\n")),
	}
	if c.Type == EntryTypeBookmark || c.Text == "" {
		return Clipping{}, false
	}
	c.Page, c.PageEnd = parseRange(pagePattern, meta)
	c.Location, c.LocationEnd = parseRange(locationPattern, meta)

	return c, true
}

func parseTitleAuthor(line string) (title, author string) {
	line = strings.TrimSpace(line)
	if m := titleAuthorPattern.FindStringSubmatch(line); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return line, UnknownAuthor
}

func parseEntryType(line string) EntryType {
	m := metadataPattern.FindStringSubmatch(line)
	if m == nil {
		return EntryTypeHighlight
	}
	return EntryType(strings.ToLower(m[1]))
}

func parseRange(pattern *regexp.Regexp, line string) (start, end int) {
	m := pattern.FindStringSubmatch(line)
	if m == nil {
		return 0, 0
	}
	start, _ = strconv.Atoi(m[1])
	if m[2] != "" {
		end, _ = strconv.Atoi(m[2])
	}
	return start, end
}

func parseDate(line string) time.Time {
	idx := strings.Index(strings.ToLower(line), "added on ")
	if idx == -1 {
		return time.Time{}
	}
	value := strings.TrimSpace(line[idx+len("added on "):])

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func groupByBook(clippings []Clipping) []Book {
	index := make(map[string]int)
	var books []Book

	for _, c := range clippings {
		key := strings.ToLower(c.Title) + "|" + strings.ToLower(c.Author)
		i, ok := index[key]
		if !ok {
			i = len(books)
			index[key] = i
			books = append(books, Book{Title: c.Title, Author: c.Author})
		}
		books[i].Notes = append(books[i].Notes, c.Note())
	}
	return books
}

// Note converts the clipping into a note ready to be attached to its book.
func (c Clipping) Note() entities.Note {
	noteType := entities.NoteTypeHighlight
	if c.Type == EntryTypeNote {
		noteType = entities.NoteTypeThought
	}

	return entities.Note{
		Type:       noteType,
		Title:      c.position(),
		Content:    c.Text,
		PageNumber: c.Page,
		ExternalID: c.ExternalID(),
		CreatedAt:  c.AddedAt,
	}
}

// position renders where the clipping was taken, e.g. "page 8, location 64-66".
func (c Clipping) position() string {
	var parts []string
	if c.Page > 0 {
		parts = append(parts, "page "+span(c.Page, c.PageEnd))
	}
	if c.Location > 0 {
		parts = append(parts, "location "+span(c.Location, c.LocationEnd))
	}
	return strings.Join(parts, ", ")
}

func span(start, end int) string {
	if end == 0 || end == start {
		return strconv.Itoa(start)
	}
	return fmt.Sprintf("%d-%d", start, end)
}

// ExternalID identifies the clipping across repeated imports of the same
// file. It does not depend on the text, so a re-exported clippings file
// with fixed typos still maps to the same note.
func (c Clipping) ExternalID() string {
	loc := c.Location
	if loc == 0 {
		loc = c.Page
	}
	return fmt.Sprintf("kindle-%s-%s-%d-%d", c.Type, sanitizeForID(c.Title), loc, c.AddedAt.Unix())
}

func sanitizeForID(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
