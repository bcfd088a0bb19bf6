package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type summaryTab struct{ routerTab }

func (t *summaryTab) Summary() string { return "orden: nombre asc" }

func TestFooterFoldsPairedActions(t *testing.T) {
	m := NewModel([]Tab{&routerTab{id: "areas"}}, NewKeyRegistry(DefaultKeyBindings()))
	m.width = 200
	footer := ansi.Strip(RenderFooter(m))
	for _, want := range []string{"n nuevo", "j/k filas", "]/[ página"} {
		if !strings.Contains(footer, want) {
			t.Fatalf("footer missing %q: %s", want, footer)
		}
	}
	if strings.Contains(footer, "arriba") {
		t.Fatalf("row-up should be folded into row-down: %s", footer)
	}
}

func TestFooterDropsEntriesThatDoNotFit(t *testing.T) {
	m := NewModel([]Tab{&routerTab{id: "areas"}}, NewKeyRegistry(DefaultKeyBindings()))
	m.width = 30
	footer := RenderFooter(m)
	if w := ansi.StringWidth(footer); w != 30 {
		t.Fatalf("footer width = %d", w)
	}
	if !strings.Contains(ansi.Strip(footer), "…") {
		t.Fatalf("footer should mark dropped entries: %s", ansi.Strip(footer))
	}

	empty := NewModel(nil, nil)
	if !strings.Contains(ansi.Strip(RenderFooter(empty)), "Sin atajos") {
		t.Fatalf("empty registry should say so")
	}
}

func TestStatusBarShowsCrumbsAndSummary(t *testing.T) {
	tab := &summaryTab{routerTab{id: "areas"}}
	m := push(NewModel([]Tab{tab}, nil), &fakeScreen{})
	m.width = 80
	bar := ansi.Strip(RenderStatusBar(m))
	for _, want := range []string{"AREAS › Screen", "Ready", "orden: nombre asc"} {
		if !strings.Contains(bar, want) {
			t.Fatalf("status bar missing %q: %s", want, bar)
		}
	}
	if w := ansi.StringWidth(bar); w != 80 {
		t.Fatalf("status bar width = %d", w)
	}
}
