package crud_test

import (
	"errors"
	"testing"

	"github.com/jask/gestion/internal/crud"
	"github.com/jask/gestion/internal/entity"
)

func areaReducer(strict bool) crud.Reducer[entity.Area] {
	return crud.NewReducer[entity.Area](entity.AreaSchema{}, crud.Policy{Strict: strict})
}

func reduce[E any](t *testing.T, r crud.Reducer[E], s crud.State[E], actions ...crud.Action) crud.State[E] {
	t.Helper()
	for _, a := range actions {
		next, _, err := r.Reduce(s, a)
		if err != nil {
			t.Fatalf("%s: %v", crud.ActionName(a), err)
		}
		s = next
	}
	return s
}

func TestCreateOnEmptyCollectionStartsAtOne(t *testing.T) {
	r := areaReducer(false)
	s := reduce(t, r, crud.State[entity.Area]{},
		crud.OpenCreate{},
		crud.SetField{Name: "nombre", Value: "Matemáticas"},
		crud.SetField{Name: "sede", Value: "Norte"},
		crud.Submit{},
	)
	if len(s.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(s.Items))
	}
	got := s.Items[0]
	want := entity.Area{Key: 1, IDArea: 1, Nombre: "Matemáticas", Sede: "Norte"}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if s.Open() || s.Editing != nil {
		t.Fatalf("modal should be closed after submit, mode=%s", s.Mode)
	}
	if s.Draft.Get("nombre") != "" || s.Draft.Get("sede") != "" {
		t.Fatalf("draft should be cleared, got %v", s.Draft)
	}
}

func TestSequentialCreatesYieldIncreasingKeys(t *testing.T) {
	r := areaReducer(false)
	s := crud.State[entity.Area]{}
	for i := 0; i < 6; i++ {
		s = reduce(t, r, s, crud.Create{Draft: crud.Draft{"nombre": "n", "sede": "s"}})
	}
	s = reduce(t, r, s, crud.RequestDelete[entity.Area]{Entity: s.Items[2]}, crud.ResolveDelete{Confirmed: true})
	s = reduce(t, r, s, crud.Create{Draft: crud.Draft{"nombre": "n", "sede": "s"}})

	seen := map[int]bool{}
	prev := 0
	for _, a := range s.Items {
		if a.Key <= prev {
			t.Fatalf("keys not strictly increasing: %d after %d", a.Key, prev)
		}
		if seen[a.Key] {
			t.Fatalf("duplicate key %d", a.Key)
		}
		if a.IDArea != a.Key {
			t.Fatalf("id_area %d does not mirror key %d", a.IDArea, a.Key)
		}
		seen[a.Key] = true
		prev = a.Key
	}
	if last := s.Items[len(s.Items)-1].Key; last != 7 {
		t.Fatalf("last key = %d, want 7", last)
	}
}

func TestKeySequenceRestartsAfterDeletingEverything(t *testing.T) {
	r := crud.NewReducer[entity.Area](entity.AreaSchema{}, crud.Policy{FirstKey: 100})
	s := reduce(t, r, crud.State[entity.Area]{}, crud.Create{Draft: crud.Draft{}})
	if s.Items[0].Key != 100 {
		t.Fatalf("first key = %d, want 100", s.Items[0].Key)
	}
	s = reduce(t, r, s, crud.RequestDelete[entity.Area]{Entity: s.Items[0]}, crud.ResolveDelete{Confirmed: true})
	s = reduce(t, r, s, crud.Create{Draft: crud.Draft{}})
	if len(s.Items) != 1 || s.Items[0].Key != 100 {
		t.Fatalf("items = %+v, want single key 100", s.Items)
	}
}

func seeded() crud.State[entity.Area] {
	return crud.State[entity.Area]{Items: []entity.Area{
		{Key: 1, IDArea: 1, Nombre: "Matemáticas", Sede: "Norte"},
		{Key: 2, IDArea: 2, Nombre: "Letras", Sede: "Sur"},
	}}
}

func TestEditReplacesOnlyTarget(t *testing.T) {
	r := areaReducer(false)
	before := seeded()
	s := reduce(t, r, before,
		crud.Edit[entity.Area]{Entity: before.Items[1]},
	)
	if s.Mode != crud.ModeEdit || s.Draft.Get("nombre") != "Letras" {
		t.Fatalf("edit should seed draft, got mode=%s draft=%v", s.Mode, s.Draft)
	}
	s = reduce(t, r, s, crud.SetField{Name: "nombre", Value: "Historia"}, crud.Submit{})

	if len(s.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(s.Items))
	}
	if s.Items[0] != before.Items[0] {
		t.Fatalf("key 1 changed: %+v", s.Items[0])
	}
	want := entity.Area{Key: 2, IDArea: 2, Nombre: "Historia", Sede: "Sur"}
	if s.Items[1] != want {
		t.Fatalf("got %+v, want %+v", s.Items[1], want)
	}
	if before.Items[1].Nombre != "Letras" {
		t.Fatalf("reducer mutated the previous state")
	}
}

func TestCancelLeavesCollectionUnchanged(t *testing.T) {
	r := areaReducer(false)
	before := seeded()
	for _, open := range []crud.Action{crud.OpenCreate{}, crud.Edit[entity.Area]{Entity: before.Items[0]}} {
		s := reduce(t, r, before, open, crud.SetField{Name: "nombre", Value: "zzz"}, crud.Cancel{})
		if len(s.Items) != 2 || s.Items[0] != before.Items[0] || s.Items[1] != before.Items[1] {
			t.Fatalf("%s then cancel changed items: %+v", crud.ActionName(open), s.Items)
		}
		if s.Open() || s.Draft.Get("nombre") != "" {
			t.Fatalf("cancel should close and clear, got mode=%s draft=%v", s.Mode, s.Draft)
		}
	}
}

func TestDeleteRemovesExactlyOne(t *testing.T) {
	r := areaReducer(false)
	before := seeded()
	s := reduce(t, r, before, crud.RequestDelete[entity.Area]{Entity: before.Items[0]})
	if s.Pending == nil || s.Pending.Key != 1 {
		t.Fatalf("expected pending delete for key 1")
	}
	next, out, err := r.Reduce(s, crud.ResolveDelete{Confirmed: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(next.Items) != 1 || next.Items[0].Key != 2 {
		t.Fatalf("items = %+v, want only key 2", next.Items)
	}
	if out.Change == nil || out.Change.Kind != crud.Deleted || out.Change.Key != 1 {
		t.Fatalf("change = %+v", out.Change)
	}
}

func TestConfirmedDeleteOfMissingKeyReportsNoChange(t *testing.T) {
	r := areaReducer(false)
	before := crud.State[entity.Area]{Items: []entity.Area{{Key: 1, IDArea: 1, Nombre: "A", Sede: "B"}}}
	s := reduce(t, r, before, crud.RequestDelete[entity.Area]{Entity: entity.Area{Key: 9}})
	next, out, err := r.Reduce(s, crud.ResolveDelete{Confirmed: true})
	if err != nil {
		t.Fatal(err)
	}
	if out.Change != nil {
		t.Fatalf("change = %+v, want none", out.Change)
	}
	if len(next.Items) != 1 || next.Items[0].Key != 1 || next.Pending != nil {
		t.Fatalf("state = %+v", next)
	}
}

func TestFirstKeyBelowOneUsesDefault(t *testing.T) {
	for _, first := range []int{0, -5} {
		r := crud.NewReducer[entity.Area](entity.AreaSchema{}, crud.Policy{FirstKey: first})
		s := reduce(t, r, crud.State[entity.Area]{}, crud.Create{Draft: crud.Draft{"nombre": "n", "sede": "s"}})
		if s.Items[0].Key != crud.DefaultFirstKey {
			t.Fatalf("first_key %d: key = %d", first, s.Items[0].Key)
		}
	}
}

func TestDeleteDeniedKeepsCollection(t *testing.T) {
	r := areaReducer(false)
	before := crud.State[entity.Area]{Items: []entity.Area{{Key: 1, IDArea: 1, Nombre: "A", Sede: "B"}}}
	s := reduce(t, r, before,
		crud.RequestDelete[entity.Area]{Entity: before.Items[0]},
		crud.ResolveDelete{Confirmed: false},
	)
	if len(s.Items) != 1 || s.Pending != nil {
		t.Fatalf("denied delete changed state: %+v", s)
	}
}

func TestEmptyFieldsAreCommittedInLenientMode(t *testing.T) {
	r := areaReducer(false)
	s := reduce(t, r, crud.State[entity.Area]{}, crud.OpenCreate{}, crud.Submit{})
	if len(s.Items) != 1 || s.Items[0].Nombre != "" {
		t.Fatalf("expected empty area committed, got %+v", s.Items)
	}
}

func TestLenientModeCoercesBadNumbers(t *testing.T) {
	r := crud.NewReducer[entity.Programa](entity.ProgramaSchema{}, crud.Policy{})
	s := reduce(t, r, crud.State[entity.Programa]{}, crud.OpenCreate{}, crud.SetField{Name: "tipo", Value: "dos"})
	next, out, err := r.Reduce(s, crud.Submit{})
	if err != nil {
		t.Fatal(err)
	}
	if next.Items[0].Tipo != 0 {
		t.Fatalf("tipo = %d, want 0", next.Items[0].Tipo)
	}
	var pe *crud.ParseError
	if !errors.As(out.Warning, &pe) {
		t.Fatalf("expected ParseError warning, got %v", out.Warning)
	}
}

func TestStrictModeRejectsAndKeepsFormOpen(t *testing.T) {
	r := crud.NewReducer[entity.Programa](entity.ProgramaSchema{}, crud.Policy{Strict: true})
	s := reduce(t, r, crud.State[entity.Programa]{}, crud.OpenCreate{},
		crud.SetField{Name: "nombre", Value: "Grado"},
		crud.SetField{Name: "tipo", Value: "dos"},
	)
	next, _, err := r.Reduce(s, crud.Submit{})
	var pe *crud.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if len(next.Items) != 0 || next.Mode != crud.ModeCreate || next.Draft.Get("tipo") != "dos" {
		t.Fatalf("strict rejection must keep form intact, got %+v", next)
	}

	s = reduce(t, r, s, crud.SetField{Name: "nombre", Value: ""}, crud.SetField{Name: "tipo", Value: "1"})
	_, _, err = r.Reduce(s, crud.Submit{})
	var ve *crud.ValidationError
	if !errors.As(err, &ve) || ve.Field != "nombre" {
		t.Fatalf("expected ValidationError on nombre, got %v", err)
	}
	if !crud.IsRecoverable(err) {
		t.Fatalf("validation errors are recoverable")
	}
}

func TestInvalidTransitions(t *testing.T) {
	r := areaReducer(false)
	s := seeded()
	if _, _, err := r.Reduce(s, crud.Submit{}); !errors.Is(err, crud.ErrModalClosed) {
		t.Fatalf("submit while closed: %v", err)
	}
	if _, _, err := r.Reduce(s, crud.SetField{Name: "nombre"}); !errors.Is(err, crud.ErrModalClosed) {
		t.Fatalf("set field while closed: %v", err)
	}
	if _, _, err := r.Reduce(s, crud.ResolveDelete{Confirmed: true}); !errors.Is(err, crud.ErrNoPendingDelete) {
		t.Fatalf("resolve without request: %v", err)
	}

	gone := entity.Area{Key: 9, IDArea: 9}
	s = reduce(t, r, s, crud.Edit[entity.Area]{Entity: gone})
	if _, _, err := r.Reduce(s, crud.Submit{}); !errors.Is(err, crud.ErrNotFound) {
		t.Fatalf("submit for missing target: %v", err)
	}
}

func TestNextKey(t *testing.T) {
	key := func(i int) int { return i }
	if got := crud.NextKey(nil, key, 1); got != 1 {
		t.Fatalf("empty = %d, want 1", got)
	}
	if got := crud.NextKey([]int{4, 9, 2}, key, 1); got != 10 {
		t.Fatalf("got %d, want 10", got)
	}
}
