// Package diff compares two parsed deployment registries.
package diff

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/gerunddev/contractbook/internal/registry"
	"github.com/gerunddev/contractbook/internal/render"
)

// Changes summarizes what differs between two registries at the entry level
type Changes struct {
	Added   []string // "Category/Title" keys present only in the new registry
	Removed []string // keys present only in the old registry
	Changed []string // keys present in both with different rows
}

// Empty reports whether nothing changed
func (c Changes) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Changed) == 0
}

// Compare returns the entry-level changes from old to new
func Compare(old, new *registry.Registry) Changes {
	oldEntries := entryMap(old)
	newEntries := entryMap(new)

	var c Changes
	for _, e := range new.Entries {
		key := entryKey(e)
		prev, ok := oldEntries[key]
		if !ok {
			c.Added = append(c.Added, key)
			continue
		}
		if render.Entry(prev) != render.Entry(e) {
			c.Changed = append(c.Changed, key)
		}
	}
	for _, e := range old.Entries {
		if _, ok := newEntries[entryKey(e)]; !ok {
			c.Removed = append(c.Removed, entryKey(e))
		}
	}

	return c
}

// Generate creates a rendered unified diff between two registries. Both are
// rendered to canonical markdown first, so formatting-only differences in the
// source documents do not show up.
func Generate(oldName, newName string, old, new *registry.Registry) (string, error) {
	oldText := render.Document(old)
	newText := render.Document(new)

	edits := myers.ComputeEdits(span.URIFromPath(oldName), oldText, newText)
	unified := fmt.Sprint(gotextdiff.ToUnified(oldName, newName, oldText, edits))

	if unified == "" {
		return "", nil
	}

	// Wrap in a diff code fence for syntax highlighting (+ in green, - in red)
	diffMarkdown := fmt.Sprintf("```diff\n%s```\n", unified)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		// Fallback to plain diff if glamour fails
		return diffMarkdown, nil
	}

	rendered, err := renderer.Render(diffMarkdown)
	if err != nil {
		// Fallback to plain diff if rendering fails
		return diffMarkdown, nil
	}

	return rendered, nil
}

func entryMap(reg *registry.Registry) map[string]registry.Entry {
	m := make(map[string]registry.Entry, len(reg.Entries))
	for _, e := range reg.Entries {
		m[entryKey(e)] = e
	}
	return m
}

func entryKey(e registry.Entry) string {
	return e.Category + "/" + e.Title
}
