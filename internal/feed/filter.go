package feed

import "strings"

// Matches reports whether a gist description matches the live filter text.
// An empty filter matches everything; an absent description behaves as the
// empty string. The comparison is case-insensitive substring containment.
func Matches(description *string, filter string) bool {
	if filter == "" {
		return true
	}
	desc := ""
	if description != nil {
		desc = *description
	}
	return strings.Contains(strings.ToLower(desc), strings.ToLower(filter))
}
