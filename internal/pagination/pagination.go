package pagination

import "fmt"

// Page is the resolved cursor state for one request. Start/End are 0-based
// slice bounds over the virtual range; Current is the 1-based page after
// clamping.
type Page struct {
	TotalItems int
	PerPage    int
	Current    int
	TotalPages int
	Start      int
	End        int
}

// Cursor resolves (total, page, perPage) into slice bounds and page state.
// An out-of-range page is clamped to the nearest valid page rather than
// rejected: navigation commands are generated by the app itself, so a stale
// page number is a dead link to repair, not a user error to report.
func Cursor(total, page, perPage int) Page {
	if total < 0 {
		total = 0
	}
	if perPage < 1 {
		perPage = 1
	}

	totalPages := (total + perPage - 1) / perPage
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}
	if start > total {
		start = total
	}

	return Page{
		TotalItems: total,
		PerPage:    perPage,
		Current:    page,
		TotalPages: totalPages,
		Start:      start,
		End:        end,
	}
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Current > 1 }

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool { return p.Current < p.TotalPages }

// Meta is the wire pagination block attached to a paged payload. The
// navigation commands are present iff the corresponding page exists.
type Meta struct {
	CurrentPage int    `json:"current_page"`
	TotalPages  int    `json:"total_pages"`
	TotalItems  int    `json:"total_items"`
	PrevPageCmd string `json:"prev_page_cmd,omitempty"`
	NextPageCmd string `json:"next_page_cmd,omitempty"`
}

// Meta derives the wire block. baseCmd is the derived command without a page
// argument (e.g. "${APP_BIN} list-large --count 1000 --per-page 50"); the
// page flag is appended per direction.
func (p Page) Meta(baseCmd string) Meta {
	m := Meta{
		CurrentPage: p.Current,
		TotalPages:  p.TotalPages,
		TotalItems:  p.TotalItems,
	}
	if p.HasPrev() {
		m.PrevPageCmd = fmt.Sprintf("%s --page %d", baseCmd, p.Current-1)
	}
	if p.HasNext() {
		m.NextPageCmd = fmt.Sprintf("%s --page %d", baseCmd, p.Current+1)
	}
	return m
}
