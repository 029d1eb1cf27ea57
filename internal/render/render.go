// Package render turns a parsed registry back into canonical markdown. The
// output is stable for a given model, which lets the diff command compare two
// documents by meaning rather than by their incidental formatting.
package render

import (
	"fmt"
	"strings"

	"github.com/gerunddev/contractbook/internal/registry"
)

const tableHeader = "| Network | Address | Explorer | Constructor Args | Salt |\n|---|---|---|---|---|\n"

// Entry renders one entry as a markdown section
func Entry(e registry.Entry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "### %s\n\n", e.Title)
	b.WriteString(tableHeader)
	for _, row := range e.Rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			row.Network, row.Address, row.Explorer, row.Args, row.Salt)
	}

	return b.String()
}

// Document renders a whole registry as a markdown document, grouped by
// category in entry order. Entries re-parse to the same model they were
// rendered from.
func Document(reg *registry.Registry) string {
	var b strings.Builder

	current := ""
	for _, e := range reg.Entries {
		if e.Category != current {
			current = e.Category
			fmt.Fprintf(&b, "## %s\n\n", current)
		}
		b.WriteString(Entry(e))
		b.WriteString("\n")
	}

	return b.String()
}
