package registry

import (
	"os"
	"reflect"
	"strings"
	"testing"
)

func TestParseFixture(t *testing.T) {
	data, err := os.ReadFile("testdata/deployments.md")
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}

	reg := Parse(string(data))

	titles := make([]string, 0, len(reg.Entries))
	for _, e := range reg.Entries {
		titles = append(titles, e.Title)
	}
	wantTitles := []string{"Bootstrap", "GovernanceToken", "Multicall", "Timelock"}
	if !reflect.DeepEqual(titles, wantTitles) {
		t.Fatalf("Entry titles = %v, want %v", titles, wantTitles)
	}

	// WrappedToken has no table and must not appear
	for _, e := range reg.Entries {
		if e.Title == "WrappedToken" {
			t.Errorf("Heading without a table was emitted as an entry")
		}
	}

	// Bootstrap appears before any ## heading
	if got := reg.Entries[0].Category; got != Uncategorized {
		t.Errorf("Bootstrap category = %q, want %q", got, Uncategorized)
	}
	if got := reg.Entries[1].Category; got != "Tokens" {
		t.Errorf("GovernanceToken category = %q, want %q", got, "Tokens")
	}
	if got := reg.Entries[2].Category; got != "Infrastructure" {
		t.Errorf("Multicall category = %q, want %q", got, "Infrastructure")
	}

	// The 3-cell Multicall row is dropped, the rows around it survive
	multicall := reg.Entries[2]
	if len(multicall.Rows) != 2 {
		t.Fatalf("Multicall rows = %d, want 2", len(multicall.Rows))
	}
	if multicall.Rows[1].Network != "base" {
		t.Errorf("Row after dropped row has network %q, want %q", multicall.Rows[1].Network, "base")
	}

	// Timelock has a header but no data rows and is still retained
	if got := len(reg.Entries[3].Rows); got != 0 {
		t.Errorf("Timelock rows = %d, want 0", got)
	}

	wantNetworks := []string{"mainnet", "sepolia", "arbitrum", "base"}
	if !reflect.DeepEqual(reg.Networks, wantNetworks) {
		t.Errorf("Networks = %v, want %v", reg.Networks, wantNetworks)
	}
	wantCategories := []string{Uncategorized, "Tokens", "Infrastructure"}
	if !reflect.DeepEqual(reg.Categories, wantCategories) {
		t.Errorf("Categories = %v, want %v", reg.Categories, wantCategories)
	}
}

func TestParseSingleEntry(t *testing.T) {
	doc := strings.Join([]string{
		"## Tokens",
		"### MyToken",
		"| Network | Address | Explorer | Constructor Args | Salt |",
		"|---|---|---|---|---|",
		"| mainnet | 0x1 | [x](http://e/1) | () | 0x0 |",
		"| testnet | 0x2 | none | (1,2) | 0x1 |",
	}, "\n")

	reg := Parse(doc)

	if len(reg.Entries) != 1 {
		t.Fatalf("Entries = %d, want 1", len(reg.Entries))
	}
	e := reg.Entries[0]
	if e.Category != "Tokens" || e.Title != "MyToken" {
		t.Errorf("Entry = %q/%q, want Tokens/MyToken", e.Category, e.Title)
	}
	if len(e.Rows) != 2 {
		t.Fatalf("Rows = %d, want 2", len(e.Rows))
	}

	want := Row{Network: "mainnet", Address: "0x1", Explorer: "http://e/1", Args: "()", Salt: "0x0"}
	if e.Rows[0] != want {
		t.Errorf("Row[0] = %+v, want %+v", e.Rows[0], want)
	}

	if !reflect.DeepEqual(reg.Networks, []string{"mainnet", "testnet"}) {
		t.Errorf("Networks = %v, want [mainnet testnet]", reg.Networks)
	}
	if !reflect.DeepEqual(reg.Categories, []string{"Tokens"}) {
		t.Errorf("Categories = %v, want [Tokens]", reg.Categories)
	}
}

func TestParseNoHeadings(t *testing.T) {
	docs := []string{
		"",
		"just some text\nwith a few lines",
		"## A category with no entries\n\nprose only",
		"| Network | Address | Explorer | Args | Salt |\n|---|---|---|---|---|\n| mainnet | 0x1 | x | y | z |",
	}

	for _, doc := range docs {
		reg := Parse(doc)
		if len(reg.Entries) != 0 {
			t.Errorf("Parse(%q) produced %d entries, want 0", doc, len(reg.Entries))
		}
		if len(reg.Networks) != 0 || len(reg.Categories) != 0 {
			t.Errorf("Parse(%q) produced facets %v / %v, want empty", doc, reg.Networks, reg.Categories)
		}
	}
}

func TestParseShortRowDropped(t *testing.T) {
	doc := strings.Join([]string{
		"### Thing",
		"| Network | Address | Explorer | Constructor Args | Salt |",
		"|---|---|---|---|---|",
		"| mainnet | 0x1 | x | y |",
	}, "\n")

	reg := Parse(doc)

	if len(reg.Entries) != 1 {
		t.Fatalf("Entries = %d, want 1", len(reg.Entries))
	}
	if got := len(reg.Entries[0].Rows); got != 0 {
		t.Errorf("Rows = %d, want 0 (4-cell row must be dropped)", got)
	}
	if len(reg.Networks) != 0 {
		t.Errorf("Networks = %v, want empty", reg.Networks)
	}
}

func TestParseHeadingWithoutTable(t *testing.T) {
	doc := strings.Join([]string{
		"### Orphan",
		"",
		"A paragraph instead of a table.",
		"",
		"### Real",
		"| Network | Address | Explorer | Constructor Args | Salt |",
		"|---|---|---|---|---|",
		"| mainnet | 0x1 | x | y | z |",
	}, "\n")

	reg := Parse(doc)

	if len(reg.Entries) != 1 {
		t.Fatalf("Entries = %d, want 1", len(reg.Entries))
	}
	if reg.Entries[0].Title != "Real" {
		t.Errorf("Title = %q, want %q", reg.Entries[0].Title, "Real")
	}
}

func TestParseCRLF(t *testing.T) {
	doc := "## Tokens\r\n### T\r\n| Network | Address | Explorer | Args | Salt |\r\n|---|---|---|---|---|\r\n| mainnet | 0x1 | x | y | z |\r\n"

	reg := Parse(doc)

	if len(reg.Entries) != 1 || len(reg.Entries[0].Rows) != 1 {
		t.Fatalf("CRLF document parsed as %+v", reg.Entries)
	}
	if reg.Entries[0].Rows[0].Salt != "z" {
		t.Errorf("Salt = %q, want %q", reg.Entries[0].Rows[0].Salt, "z")
	}
}

func TestParseDeterministic(t *testing.T) {
	data, err := os.ReadFile("testdata/deployments.md")
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}

	first := Parse(string(data))
	second := Parse(string(data))

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Re-parsing identical input produced different output")
	}
}

func TestCategoryResolution(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "nearest heading wins",
			doc:  "## First\n## Second\n### E\n| network address |x|x|x|x|\n|---|\n",
			want: "Second",
		},
		{
			name: "heading far above still found",
			doc:  "## Far\n\nprose\n\nmore prose\n\n### E\n| network address |x|x|x|x|\n|---|\n",
			want: "Far",
		},
		{
			name: "no heading above",
			doc:  "### E\n| network address |x|x|x|x|\n|---|\n",
			want: Uncategorized,
		},
		{
			name: "h2 without a space is not a heading",
			doc:  "##Tight\n### E\n| network address |x|x|x|x|\n|---|\n",
			want: Uncategorized,
		},
		{
			name: "h3 is not mistaken for h2",
			doc:  "## Real\n### Other\n| network address |x|x|x|x|\n|---|\n### E\n| network address |x|x|x|x|\n|---|\n",
			want: "Real",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := Parse(tt.doc)
			if len(reg.Entries) == 0 {
				t.Fatalf("No entries parsed from %q", tt.doc)
			}
			e := reg.Entries[len(reg.Entries)-1]
			if e.Category != tt.want {
				t.Errorf("Category = %q, want %q", e.Category, tt.want)
			}
		})
	}
}

func TestSplitCells(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "explorer link extracted",
			line: "| mainnet | 0xABC | [Etherscan](https://etherscan.io/address/0xABC) | () | 0x0 |",
			want: []string{"mainnet", "0xABC", "https://etherscan.io/address/0xABC", "()", "0x0"},
		},
		{
			name: "explorer without link untouched",
			line: "| mainnet | 0xABC | n/a | () | 0x0 |",
			want: []string{"mainnet", "0xABC", "n/a", "()", "0x0"},
		},
		{
			name: "trailing whitespace after final pipe",
			line: "| a | b | c | d | e |   ",
			want: []string{"a", "b", "c", "d", "e"},
		},
		{
			name: "missing trailing pipe",
			line: "| a | b | c | d | e",
			want: []string{"a", "b", "c", "d", "e"},
		},
		{
			name: "short row",
			line: "| a | b |",
			want: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitCells(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitCells(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestFourthLevelHeadingIgnored(t *testing.T) {
	doc := strings.Join([]string{
		"#### Not an entry",
		"| Network | Address | Explorer | Args | Salt |",
		"|---|---|---|---|---|",
		"| mainnet | 0x1 | x | y | z |",
	}, "\n")

	reg := Parse(doc)
	if len(reg.Entries) != 0 {
		t.Errorf("Fourth-level heading produced %d entries, want 0", len(reg.Entries))
	}
}
