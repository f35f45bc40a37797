// Package serializer shapes models into the flat records returned by the API.
// Joined rows (owner, team, author) are flattened to display names so the
// client never needs a second lookup.
package serializer

import "time"

// isoLayout matches JavaScript's Date.prototype.toISOString.
const isoLayout = "2006-01-02T15:04:05.000Z07:00"

func isoTime(t time.Time) string {
	return t.UTC().Format(isoLayout)
}

// Many applies fn to every item. It never returns nil, so empty results
// encode as [] rather than null.
func Many[T, R any](items []T, fn func(*T) R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, fn(&items[i]))
	}
	return out
}
