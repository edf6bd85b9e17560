package shell

import (
	"io"
	"strconv"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/mrlokans/bookshelf/internal/entities"
)

const (
	titleWidth   = 40
	authorWidth  = 28
	contentWidth = 60
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetColumnSeparator(" ")
	table.SetCenterSeparator(" ")
	table.SetRowSeparator("-")
	return table
}

func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

func (s *Shell) renderBooks(list []entities.Book, noteCounts map[uint]int64) {
	if len(list) == 0 {
		s.printf("No books.\n")
		return
	}

	table := newTable(s.out, "ID", "Title", "Author", "Type", "Status", "Notes")
	for _, b := range list {
		table.Append([]string{
			strconv.FormatUint(uint64(b.ID), 10),
			truncate(b.Title, titleWidth),
			truncate(b.Author, authorWidth),
			b.Type.DisplayName(),
			b.Status.DisplayName(),
			strconv.FormatInt(noteCounts[b.ID], 10),
		})
	}
	table.Render()
}

func (s *Shell) renderSessions(list []entities.ReadingSession) {
	if len(list) == 0 {
		s.printf("No reading sessions.\n")
		return
	}

	table := newTable(s.out, "ID", "Started", "Ended", "Completed", "Notes")
	for _, rs := range list {
		ended := "in progress"
		if rs.EndDate != nil {
			ended = s.formatDate(*rs.EndDate)
		}
		completed := ""
		if rs.Completed {
			completed = "yes"
		}
		table.Append([]string{
			strconv.FormatUint(uint64(rs.ID), 10),
			s.formatDate(rs.StartDate),
			ended,
			completed,
			truncate(rs.SessionNotes, contentWidth),
		})
	}
	table.Render()
}

func (s *Shell) renderNotes(list []entities.Note) {
	if len(list) == 0 {
		s.printf("No notes.\n")
		return
	}

	table := newTable(s.out, "ID", "Type", "Title", "Page", "Content")
	for _, n := range list {
		page := ""
		if n.PageNumber > 0 {
			page = strconv.Itoa(n.PageNumber)
		}
		table.Append([]string{
			strconv.FormatUint(uint64(n.ID), 10),
			n.Type.DisplayName(),
			truncate(n.Title, authorWidth),
			page,
			truncate(oneLine(n.Content), contentWidth),
		})
	}
	table.Render()
}
