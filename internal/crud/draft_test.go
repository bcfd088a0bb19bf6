package crud_test

import (
	"net/url"
	"testing"

	"github.com/jask/gestion/internal/crud"
)

func TestDraftValuesBridge(t *testing.T) {
	d := crud.Draft{"nombre": "Letras", "sede": ""}
	back := crud.DraftFromValues(d.Values())
	if len(back) != 2 || back.Get("nombre") != "Letras" || back.Get("sede") != "" {
		t.Fatalf("round trip = %v", back)
	}

	multi := crud.DraftFromValues(url.Values{"tipo": {"1", "2"}})
	if multi.Get("tipo") != "1" {
		t.Fatalf("first value should win, got %q", multi.Get("tipo"))
	}
}
