package tui

import (
	"cmp"
	"strconv"
	"testing"

	"github.com/jask/gestion/internal/crud"
)

type row struct {
	id   int
	name string
}

func rowSpec(n, pageSize int) crud.TableSpec[row] {
	names := []string{"Matemáticas", "Letras", "Historia", "Física", "Química"}
	items := make([]row, n)
	for i := range items {
		items[i] = row{id: i + 1, name: names[i%len(names)]}
	}
	return crud.TableSpec[row]{
		Columns: []crud.Column[row]{
			{
				Key: "id", Label: "ID", Sortable: true, Filterable: true,
				Render:  func(r row) string { return strconv.Itoa(r.id) },
				Compare: func(a, b row) int { return cmp.Compare(a.id, b.id) },
			},
			{Key: "name", Label: "Nombre", Sortable: true, Filterable: true, Render: func(r row) string { return r.name }},
			{Key: "acciones", Label: "Acciones"},
		},
		Items:       items,
		PageSize:    pageSize,
		DefaultSort: "id",
	}
}

func ids(rows []row) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.id
	}
	return out
}

func TestTablePaging(t *testing.T) {
	ts := NewTableState(rowSpec(23, 10))
	if ts.PageCount() != 3 {
		t.Fatalf("pages = %d, want 3", ts.PageCount())
	}
	ts.NextPage()
	ts.NextPage()
	ts.NextPage()
	if ts.Page() != 2 || len(ts.PageItems()) != 3 {
		t.Fatalf("last page = %d with %d items", ts.Page(), len(ts.PageItems()))
	}
	ts.PrevPage()
	if got := ids(ts.PageItems()); got[0] != 11 || len(got) != 10 {
		t.Fatalf("page 2 = %v", got)
	}
}

func TestTableCursorCrossesPages(t *testing.T) {
	ts := NewTableState(rowSpec(12, 5))
	for i := 0; i < 5; i++ {
		ts.CursorDown()
	}
	if ts.Page() != 1 || ts.Cursor() != 0 {
		t.Fatalf("page=%d cursor=%d, want 1/0", ts.Page(), ts.Cursor())
	}
	if sel, ok := ts.Selected(); !ok || sel.id != 6 {
		t.Fatalf("selected = %+v", sel)
	}
	ts.CursorUp()
	if sel, _ := ts.Selected(); sel.id != 5 || ts.Page() != 0 {
		t.Fatalf("cursor up should return to row 5 on page 0, got %+v page %d", sel, ts.Page())
	}
}

func TestTableSorting(t *testing.T) {
	ts := NewTableState(rowSpec(5, 10))
	if by, desc := ts.Sort(); by != "id" || desc {
		t.Fatalf("default sort = %s desc=%v", by, desc)
	}
	ts.SortBy("name")
	if got := ids(ts.Rows()); got[0] != 4 || got[4] != 5 {
		t.Fatalf("by name = %v", got) // Física, Historia, Letras, Matemáticas, Química
	}
	ts.SortBy("name")
	if got := ids(ts.Rows()); got[0] != 5 {
		t.Fatalf("by name desc = %v", got)
	}
	ts.SortBy("acciones")
	if by, _ := ts.Sort(); by != "name" {
		t.Fatalf("unsortable column must be ignored, got %s", by)
	}
	ts.CycleSort()
	if by, desc := ts.Sort(); by != "id" || desc {
		t.Fatalf("cycle should wrap to id asc, got %s %v", by, desc)
	}
	ts.Reverse()
	if got := ids(ts.Rows()); got[0] != 5 {
		t.Fatalf("reverse = %v", got)
	}
	if h := ts.Headers(); h[0] != "ID ▼" || h[1] != "Nombre" {
		t.Fatalf("headers = %v", h)
	}
}

func TestTableFilter(t *testing.T) {
	ts := NewTableState(rowSpec(5, 10))
	ts.SetFilter("LET")
	if got := ids(ts.Rows()); len(got) != 1 || got[0] != 2 {
		t.Fatalf("substring filter = %v", got)
	}
	ts.SetFilter("fisica")
	if got := ids(ts.Rows()); len(got) != 1 || got[0] != 4 {
		t.Fatalf("fuzzy filter = %v", got)
	}
	ts.SetFilter("zz")
	if len(ts.Rows()) != 0 || ts.PageCount() != 1 {
		t.Fatalf("expected no rows and one empty page")
	}
	if _, ok := ts.Selected(); ok {
		t.Fatalf("nothing to select")
	}
	ts.SetFilter("")
	if ts.Total() != 5 || len(ts.Rows()) != 5 {
		t.Fatalf("clearing the filter restores all rows")
	}
}

func TestTableSetSpecKeepsPositionInRange(t *testing.T) {
	ts := NewTableState(rowSpec(12, 5))
	ts.NextPage()
	ts.NextPage()
	ts.CursorDown()
	ts.SetSpec(rowSpec(6, 5))
	if ts.Page() != 1 || ts.Cursor() != 0 {
		t.Fatalf("page=%d cursor=%d after shrink", ts.Page(), ts.Cursor())
	}
	if cells := ts.Cells(); len(cells) != 1 || cells[0][0] != "6" || cells[0][2] != "" {
		t.Fatalf("cells = %v", cells)
	}
}
