package gitapi

import (
	"sort"
	"time"
)

// Gist mirrors a single entry of the GitHub gists list payload. Only the
// fields gistwatch renders are decoded; everything else is dropped.
type Gist struct {
	ID          string              `json:"id"`
	Description *string             `json:"description"`
	Files       map[string]GistFile `json:"files"`
	HTMLURL     string              `json:"html_url"`
	Public      bool                `json:"public"`
	UpdatedAt   string              `json:"updated_at"`
	CreatedAt   string              `json:"created_at"`
}

// GistFile describes one file inside a gist's files mapping.
type GistFile struct {
	Filename string `json:"filename"`
	Language string `json:"language"`
	Size     int    `json:"size"`
	RawURL   string `json:"raw_url"`
}

// DescriptionOrEmpty returns the description, treating an absent one as "".
func (g Gist) DescriptionOrEmpty() string {
	if g.Description == nil {
		return ""
	}
	return *g.Description
}

// FileCount returns the number of files in the gist, 0 when absent.
func (g Gist) FileCount() int {
	return len(g.Files)
}

// ParsedUpdatedAt returns the parsed UpdatedAt timestamp.
func (g Gist) ParsedUpdatedAt() time.Time {
	return parseTime(g.UpdatedAt)
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (g Gist) ParsedCreatedAt() time.Time {
	return parseTime(g.CreatedAt)
}

// SortByUpdatedDesc orders gists most recently updated first. The sort is
// stable, so gists with equal timestamps keep their API order.
func SortByUpdatedDesc(gists []Gist) {
	sort.SliceStable(gists, func(i, j int) bool {
		return gists[i].ParsedUpdatedAt().After(gists[j].ParsedUpdatedAt())
	})
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
