package registry

import (
	"regexp"
	"strings"
)

// Uncategorized is the category assigned to entries that appear before any
// second-level heading in the document.
const Uncategorized = "Uncategorized"

// Row represents one deployment record within an entry's table
type Row struct {
	Network  string `json:"network"`
	Address  string `json:"address"`
	Explorer string `json:"explorer"`
	Args     string `json:"args"`
	Salt     string `json:"salt"`
}

// Entry represents one parsed section: a third-level heading and the table
// that follows it
type Entry struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Rows     []Row  `json:"rows"`
}

// Registry is the parsed model of a deployments document. Networks and
// Categories hold the distinct facet values in first-appearance order and
// always reflect exactly what is present in Entries.
type Registry struct {
	Entries    []Entry  `json:"entries"`
	Networks   []string `json:"networks"`
	Categories []string `json:"categories"`
}

var (
	h3Pattern   = regexp.MustCompile(`^###\s+(\S.*)`)
	h2Pattern   = regexp.MustCompile(`^##\s+(\S.*)`)
	linkPattern = regexp.MustCompile(`\(([^)]*)\)`)
)

// Parse converts a deployments document into a Registry. It is a pure
// function: malformed input never produces an error, only fewer entries or
// rows. Re-parsing the same text yields a structurally identical result.
func Parse(text string) *Registry {
	lines := splitLines(text)

	reg := &Registry{
		Entries:    []Entry{},
		Networks:   []string{},
		Categories: []string{},
	}

	seenNetworks := make(map[string]bool)
	seenCategories := make(map[string]bool)

	i := 0
	for i < len(lines) {
		m := h3Pattern.FindStringSubmatch(lines[i])
		if m == nil {
			i++
			continue
		}

		entry := Entry{
			Title:    strings.TrimSpace(m[1]),
			Category: categoryFor(lines, i),
			Rows:     []Row{},
		}

		// Skip blank lines between the heading and a potential table
		j := i + 1
		for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
			j++
		}

		if j >= len(lines) || !isTableHeader(lines[j]) {
			// No recognized table follows; the heading yields no entry
			i++
			continue
		}

		// Skip the header and the separator line beneath it. The separator
		// is consumed unconditionally, matching how real documents are laid
		// out even when the separator row is sloppy.
		k := j + 2
		for k < len(lines) && strings.HasPrefix(lines[k], "|") {
			cells := splitCells(lines[k])
			if len(cells) >= 5 {
				entry.Rows = append(entry.Rows, Row{
					Network:  cells[0],
					Address:  cells[1],
					Explorer: cells[2],
					Args:     cells[3],
					Salt:     cells[4],
				})
			}
			k++
		}

		for _, row := range entry.Rows {
			if row.Network != "" && !seenNetworks[row.Network] {
				seenNetworks[row.Network] = true
				reg.Networks = append(reg.Networks, row.Network)
			}
		}
		if !seenCategories[entry.Category] {
			seenCategories[entry.Category] = true
			reg.Categories = append(reg.Categories, entry.Category)
		}

		reg.Entries = append(reg.Entries, entry)
		i = k
	}

	return reg
}

// splitLines splits a document on both \n and \r\n line endings
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// categoryFor scans backward from just above the heading at index idx and
// returns the text of the nearest second-level heading, or Uncategorized if
// none exists before the start of the document.
func categoryFor(lines []string, idx int) string {
	for i := idx - 1; i >= 0; i-- {
		if m := h2Pattern.FindStringSubmatch(lines[i]); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return Uncategorized
}

// isTableHeader reports whether a line looks like the header row of a
// deployments table. Only the Network and Address labels are checked; the
// declared column order is decorative and cells are always mapped
// positionally.
func isTableHeader(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "network") && strings.Contains(lower, "address")
}

// splitCells splits a table row line into trimmed cell values. The Explorer
// cell (third column) has the URL extracted from a markdown link if one is
// present; every other cell passes through as raw trimmed text.
func splitCells(line string) []string {
	s := strings.TrimPrefix(line, "|")
	s = strings.TrimRight(s, " \t")
	s = strings.TrimSuffix(s, "|")

	cells := strings.Split(s, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}

	if len(cells) > 2 {
		if m := linkPattern.FindStringSubmatch(cells[2]); m != nil {
			cells[2] = m[1]
		}
	}

	return cells
}
