package tui

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/jask/gestion/internal/crud"
)

// TableState owns sorting, filtering, paging and the row cursor for one
// collection. The cursor is an index into the current page.
type TableState[E any] struct {
	spec   crud.TableSpec[E]
	sortBy string
	desc   bool
	filter string
	page   int
	cursor int
	rows   []E
}

func NewTableState[E any](spec crud.TableSpec[E]) *TableState[E] {
	t := &TableState[E]{sortBy: spec.DefaultSort}
	t.SetSpec(spec)
	return t
}

// SetSpec swaps in a fresh collection, keeping sort, filter and position.
func (t *TableState[E]) SetSpec(spec crud.TableSpec[E]) {
	if spec.PageSize <= 0 {
		spec.PageSize = crud.DefaultPageSize
	}
	t.spec = spec
	if t.column(t.sortBy) == nil {
		t.sortBy = spec.DefaultSort
	}
	t.rebuild()
}

func (t *TableState[E]) Filter() string { return t.filter }

func (t *TableState[E]) SetFilter(q string) {
	t.filter = strings.TrimSpace(q)
	t.page, t.cursor = 0, 0
	t.rebuild()
}

// Sort reports the active sort column and direction.
func (t *TableState[E]) Sort() (string, bool) { return t.sortBy, t.desc }

// SortBy sorts on key, flipping direction when key is already active.
// Unknown or unsortable columns are ignored.
func (t *TableState[E]) SortBy(key string) {
	c := t.column(key)
	if c == nil || !c.Sortable {
		return
	}
	if t.sortBy == key {
		t.desc = !t.desc
	} else {
		t.sortBy, t.desc = key, false
	}
	t.rebuild()
}

// CycleSort moves to the next sortable column, ascending.
func (t *TableState[E]) CycleSort() {
	var keys []string
	for _, c := range t.spec.Columns {
		if c.Sortable {
			keys = append(keys, c.Key)
		}
	}
	if len(keys) == 0 {
		return
	}
	i := slices.Index(keys, t.sortBy)
	t.sortBy, t.desc = keys[(i+1)%len(keys)], false
	t.rebuild()
}

func (t *TableState[E]) Reverse() {
	t.desc = !t.desc
	t.rebuild()
}

// Rows is the filtered, sorted collection.
func (t *TableState[E]) Rows() []E { return slices.Clone(t.rows) }

func (t *TableState[E]) Total() int { return len(t.spec.Items) }

func (t *TableState[E]) PageSize() int { return t.spec.PageSize }

func (t *TableState[E]) Page() int { return t.page }

func (t *TableState[E]) PageCount() int {
	if len(t.rows) == 0 {
		return 1
	}
	return (len(t.rows) + t.spec.PageSize - 1) / t.spec.PageSize
}

func (t *TableState[E]) PageItems() []E {
	start := t.page * t.spec.PageSize
	if start >= len(t.rows) {
		return nil
	}
	end := min(start+t.spec.PageSize, len(t.rows))
	return slices.Clone(t.rows[start:end])
}

func (t *TableState[E]) NextPage() {
	if t.page < t.PageCount()-1 {
		t.page++
		t.cursor = 0
	}
}

func (t *TableState[E]) PrevPage() {
	if t.page > 0 {
		t.page--
		t.cursor = 0
	}
}

func (t *TableState[E]) Cursor() int { return t.cursor }

// CursorDown moves one row, crossing onto the next page at the bottom.
func (t *TableState[E]) CursorDown() {
	if t.cursor < len(t.PageItems())-1 {
		t.cursor++
		return
	}
	if t.page < t.PageCount()-1 {
		t.page++
		t.cursor = 0
	}
}

func (t *TableState[E]) CursorUp() {
	if t.cursor > 0 {
		t.cursor--
		return
	}
	if t.page > 0 {
		t.page--
		t.cursor = len(t.PageItems()) - 1
	}
}

func (t *TableState[E]) Selected() (E, bool) {
	items := t.PageItems()
	if t.cursor < 0 || t.cursor >= len(items) {
		var zero E
		return zero, false
	}
	return items[t.cursor], true
}

func (t *TableState[E]) Headers() []string {
	out := make([]string, 0, len(t.spec.Columns))
	for _, c := range t.spec.Columns {
		label := c.Label
		if c.Key == t.sortBy {
			if t.desc {
				label += " ▼"
			} else {
				label += " ▲"
			}
		}
		out = append(out, label)
	}
	return out
}

// Cells renders the current page.
func (t *TableState[E]) Cells() [][]string {
	items := t.PageItems()
	out := make([][]string, 0, len(items))
	for _, e := range items {
		row := make([]string, 0, len(t.spec.Columns))
		for _, c := range t.spec.Columns {
			row = append(row, render(c, e))
		}
		out = append(out, row)
	}
	return out
}

func (t *TableState[E]) column(key string) *crud.Column[E] {
	for i := range t.spec.Columns {
		if t.spec.Columns[i].Key == key {
			return &t.spec.Columns[i]
		}
	}
	return nil
}

func (t *TableState[E]) rebuild() {
	rows := make([]E, 0, len(t.spec.Items))
	for _, e := range t.spec.Items {
		if MatchFilter(t.spec.Columns, e, t.filter) {
			rows = append(rows, e)
		}
	}
	if c := t.column(t.sortBy); c != nil && c.Sortable {
		compare := c.Compare
		if compare == nil {
			col := *c
			compare = func(a, b E) int {
				return cmp.Compare(strings.ToLower(render(col, a)), strings.ToLower(render(col, b)))
			}
		}
		slices.SortStableFunc(rows, func(a, b E) int {
			if t.desc {
				return compare(b, a)
			}
			return compare(a, b)
		})
	}
	t.rows = rows
	t.page = min(t.page, t.PageCount()-1)
	if n := len(t.PageItems()); t.cursor >= n {
		t.cursor = max(0, n-1)
	}
}

func render[E any](c crud.Column[E], e E) string {
	if c.Render == nil {
		return ""
	}
	return c.Render(e)
}

// MatchFilter reports whether any filterable cell of e contains q
// (case-insensitive) or, for queries of three or more runes, has a word
// within a Levenshtein distance of a third of the query length.
func MatchFilter[E any](cols []crud.Column[E], e E, q string) bool {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return true
	}
	qLen := utf8.RuneCountInString(q)
	for _, c := range cols {
		if !c.Filterable {
			continue
		}
		cell := strings.ToLower(render(c, e))
		if strings.Contains(cell, q) {
			return true
		}
		if qLen < 3 {
			continue
		}
		for _, word := range strings.Fields(cell) {
			if levenshtein.ComputeDistance(q, word) <= qLen/3 {
				return true
			}
		}
	}
	return false
}
