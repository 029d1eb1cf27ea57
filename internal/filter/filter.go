// Package filter derives the visible subset of a parsed registry from the
// current filter parameters. It holds no state of its own: the presentation
// layer keeps one Params value and re-applies it on every change.
package filter

import (
	"strings"

	"github.com/gerunddev/contractbook/internal/registry"
)

// Params holds the active filter parameters. Zero values mean "no filter".
type Params struct {
	Network  string
	Category string
	Query    string
}

// IsZero reports whether no filter is active
func (p Params) IsZero() bool {
	return p.Network == "" && p.Category == "" && p.Query == ""
}

// Apply returns the entries visible under the given parameters. When a
// network filter is set, each returned entry carries only the rows for that
// network. Entries left with no rows are suppressed here rather than in the
// parser.
func Apply(reg *registry.Registry, p Params) []registry.Entry {
	visible := []registry.Entry{}

	for _, entry := range reg.Entries {
		if p.Category != "" && entry.Category != p.Category {
			continue
		}
		if p.Query != "" && !strings.Contains(strings.ToLower(SearchText(entry)), strings.ToLower(p.Query)) {
			continue
		}

		if p.Network == "" {
			if len(entry.Rows) > 0 {
				visible = append(visible, entry)
			}
			continue
		}

		rows := []registry.Row{}
		for _, row := range entry.Rows {
			if row.Network == p.Network {
				rows = append(rows, row)
			}
		}
		if len(rows) == 0 {
			continue
		}
		entry.Rows = rows
		visible = append(visible, entry)
	}

	return visible
}

// SearchText returns the searchable surface of an entry: its title, category,
// and every row field, joined into one string for substring matching.
func SearchText(entry registry.Entry) string {
	parts := []string{entry.Title, entry.Category}
	for _, row := range entry.Rows {
		parts = append(parts, row.Network, row.Address, row.Explorer, row.Args, row.Salt)
	}
	return strings.Join(parts, " ")
}
