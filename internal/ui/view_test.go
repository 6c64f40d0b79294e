package ui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nfielder/gistwatch/internal/gitapi"
)

func readyModel(t *testing.T, gists []gitapi.Gist) Model {
	t.Helper()
	m := newTestModel(t, &stubFetcher{gists: gists})
	next, _ := m.Update(snapshotMsg(m.controller.Refresh(context.Background())))
	return next.(Model)
}

func TestView_LoadingState(t *testing.T) {
	m := newTestModel(t, &stubFetcher{})
	if !strings.Contains(m.View(), "Loading gists") {
		t.Fatalf("view missing loading indicator:\n%s", m.View())
	}
}

func TestView_ErroredState(t *testing.T) {
	m := newTestModel(t, &stubFetcher{err: errors.New("boom")})
	next, _ := m.Update(snapshotMsg(m.controller.Refresh(context.Background())))
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, "Error:") || !strings.Contains(view, "boom") {
		t.Fatalf("view missing error message:\n%s", view)
	}
	if strings.Contains(view, "No gists") {
		t.Fatalf("errored view should not show list states:\n%s", view)
	}
}

func TestView_EmptyListShowsNoGistsFound(t *testing.T) {
	m := readyModel(t, []gitapi.Gist{})

	view := m.View()
	if !strings.Contains(view, "No gists found.") {
		t.Fatalf("view missing empty message:\n%s", view)
	}
	if strings.Contains(view, "match") {
		t.Fatalf("empty list must not show the filtered-out message:\n%s", view)
	}
}

func TestView_RowsAndPlaceholders(t *testing.T) {
	desc := "Foo Bar"
	m := readyModel(t, []gitapi.Gist{
		{
			ID:          "1",
			Description: &desc,
			Files:       map[string]gitapi.GistFile{"a.go": {}, "b.go": {}},
			UpdatedAt:   "2023-01-02T11:22:33Z",
		},
		{ID: "2", CreatedAt: "2022-03-04T00:00:00Z"},
	})

	view := m.View()
	for _, want := range []string{
		"Foo Bar",
		"2 files",
		"2023-01-02", // date portion only, no time
		"(no description)",
		"2022-03-04", // created_at fallback
		"0 files",
		"octocat",
		"since 2022-01-01",
		"2/2 shown",
	} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "11:22:33") {
		t.Fatalf("view should show only the date portion:\n%s", view)
	}
}

func TestView_FilterNarrowsRows(t *testing.T) {
	foo := "Foo Bar"
	baz := "Baz"
	m := readyModel(t, []gitapi.Gist{
		{ID: "1", Description: &foo, UpdatedAt: "2023-01-02T00:00:00Z"},
		{ID: "2", Description: &baz, UpdatedAt: "2023-05-01T00:00:00Z"},
	})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("foo")})
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, "Foo Bar") {
		t.Fatalf("view missing matching gist:\n%s", view)
	}
	if strings.Contains(view, "Baz") {
		t.Fatalf("view shows non-matching gist:\n%s", view)
	}
	if !strings.Contains(view, "1/2 shown") {
		t.Fatalf("header count wrong:\n%s", view)
	}
}

func TestView_AllFilteredOutShowsMatchMessage(t *testing.T) {
	baz := "Baz"
	m := readyModel(t, []gitapi.Gist{
		{ID: "2", Description: &baz, UpdatedAt: "2023-05-01T00:00:00Z"},
	})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zzz")})
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, `No gists match "zzz".`) {
		t.Fatalf("view missing filtered-out message:\n%s", view)
	}
	if strings.Contains(view, "No gists found.") {
		t.Fatalf("filtered-out view must not show the empty-list message:\n%s", view)
	}
}
