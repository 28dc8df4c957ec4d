package pagination

import (
	"fmt"
	"strings"
	"testing"
)

func TestCursor_Bounds(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		page       int
		perPage    int
		wantPage   int
		wantPages  int
		wantStart  int
		wantEnd    int
	}{
		{"first page", 1000, 1, 50, 1, 20, 0, 50},
		{"middle page", 1000, 10, 50, 10, 20, 450, 500},
		{"last page", 1000, 20, 50, 20, 20, 950, 1000},
		{"page below range clamps to 1", 1000, 0, 50, 1, 20, 0, 50},
		{"negative page clamps to 1", 1000, -5, 50, 1, 20, 0, 50},
		{"page above range clamps to last", 1000, 999, 50, 20, 20, 950, 1000},
		{"uneven final page", 10, 4, 3, 4, 4, 9, 10},
		{"single page", 5, 1, 50, 1, 1, 0, 5},
		{"total smaller than per_page, page out of range", 5, 3, 50, 1, 1, 0, 5},
		{"empty range", 0, 1, 50, 1, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Cursor(tt.total, tt.page, tt.perPage)
			if p.Current != tt.wantPage {
				t.Errorf("Current = %d, want %d", p.Current, tt.wantPage)
			}
			if p.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.wantPages)
			}
			if p.Start != tt.wantStart || p.End != tt.wantEnd {
				t.Errorf("bounds = [%d,%d), want [%d,%d)", p.Start, p.End, tt.wantStart, tt.wantEnd)
			}
			if p.End-p.Start > tt.perPage && tt.perPage >= 1 {
				t.Errorf("slice length %d exceeds per_page %d", p.End-p.Start, tt.perPage)
			}
		})
	}
}

func TestCursor_ClampMatchesValidPage(t *testing.T) {
	if Cursor(1000, 0, 50) != Cursor(1000, 1, 50) {
		t.Error("page=0 should behave identically to page=1")
	}
	if Cursor(1000, 999, 50) != Cursor(1000, 20, 50) {
		t.Error("page=999 should behave identically to the last page")
	}
}

// Concatenating every page in order must reconstruct item-1 … item-<total>
// with no gaps or duplicates.
func TestCursor_PagesReconstructFullRange(t *testing.T) {
	cases := []struct{ total, perPage int }{
		{1, 1},
		{5, 3},
		{10, 3},
		{100, 7},
		{1000, 50},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("total=%d per=%d", tc.total, tc.perPage), func(t *testing.T) {
			var ids []string
			first := Cursor(tc.total, 1, tc.perPage)
			for page := 1; page <= first.TotalPages; page++ {
				p := Cursor(tc.total, page, tc.perPage)
				for i := p.Start; i < p.End; i++ {
					ids = append(ids, fmt.Sprintf("item-%d", i+1))
				}
			}
			if len(ids) != tc.total {
				t.Fatalf("got %d ids, want %d", len(ids), tc.total)
			}
			for i, id := range ids {
				want := fmt.Sprintf("item-%d", i+1)
				if id != want {
					t.Fatalf("ids[%d] = %s, want %s", i, id, want)
				}
			}
		})
	}
}

func TestMeta_NavigationPresence(t *testing.T) {
	base := "${APP_BIN} list-large --count 1000 --per-page 50"

	tests := []struct {
		name     string
		total    int
		page     int
		perPage  int
		wantPrev bool
		wantNext bool
	}{
		{"first of many", 1000, 1, 50, false, true},
		{"middle", 1000, 10, 50, true, true},
		{"last of many", 1000, 20, 50, true, false},
		{"single page", 30, 1, 50, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Cursor(tt.total, tt.page, tt.perPage).Meta(base)
			if (m.PrevPageCmd != "") != tt.wantPrev {
				t.Errorf("PrevPageCmd = %q, want present=%v", m.PrevPageCmd, tt.wantPrev)
			}
			if (m.NextPageCmd != "") != tt.wantNext {
				t.Errorf("NextPageCmd = %q, want present=%v", m.NextPageCmd, tt.wantNext)
			}
		})
	}

	m := Cursor(1000, 10, 50).Meta(base)
	if !strings.HasSuffix(m.PrevPageCmd, "--page 9") {
		t.Errorf("PrevPageCmd = %q, want suffix --page 9", m.PrevPageCmd)
	}
	if !strings.HasSuffix(m.NextPageCmd, "--page 11") {
		t.Errorf("NextPageCmd = %q, want suffix --page 11", m.NextPageCmd)
	}
}

func TestCursor_Deterministic(t *testing.T) {
	a := Cursor(123456, 7, 42)
	b := Cursor(123456, 7, 42)
	if a != b {
		t.Errorf("identical inputs produced different pages: %+v vs %+v", a, b)
	}
}
