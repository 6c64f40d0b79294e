package ui

import (
	"testing"

	"github.com/nfielder/gistwatch/internal/gitapi"
)

func TestDatePortion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2023-01-02T11:22:33Z", "2023-01-02"},
		{"2023-01-02", "2023-01-02"},
		{"short", "short"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := datePortion(tt.in); got != tt.want {
			t.Fatalf("datePortion(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGistDate(t *testing.T) {
	g := gitapi.Gist{UpdatedAt: "2023-01-02T00:00:00Z", CreatedAt: "2022-01-01T00:00:00Z"}
	if got := gistDate(g); got != "2023-01-02" {
		t.Fatalf("gistDate = %q, want updated_at date", got)
	}

	g = gitapi.Gist{CreatedAt: "2022-01-01T00:00:00Z"}
	if got := gistDate(g); got != "2022-01-01" {
		t.Fatalf("gistDate = %q, want created_at fallback", got)
	}

	if got := gistDate(gitapi.Gist{}); got != datePlaceholder {
		t.Fatalf("gistDate = %q, want placeholder", got)
	}
}

func TestFileCountLabel(t *testing.T) {
	if got := fileCountLabel(1); got != "1 file" {
		t.Fatalf("fileCountLabel(1) = %q", got)
	}
	if got := fileCountLabel(0); got != "0 files" {
		t.Fatalf("fileCountLabel(0) = %q", got)
	}
	if got := fileCountLabel(3); got != "3 files" {
		t.Fatalf("fileCountLabel(3) = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 5, "hell…"},
		{"héllo wörld", 6, "héllo…"},
		{"x", 1, "x"},
		{"xy", 1, "…"},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
