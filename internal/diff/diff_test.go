package diff

import (
	"reflect"
	"strings"
	"testing"

	"github.com/gerunddev/contractbook/internal/registry"
)

const oldDoc = `## Tokens
### GovToken
| Network | Address | Explorer | Constructor Args | Salt |
|---|---|---|---|---|
| mainnet | 0x1 | n/a | () | 0x0 |

### OldThing
| Network | Address | Explorer | Constructor Args | Salt |
|---|---|---|---|---|
| mainnet | 0x2 | n/a | () | 0x0 |
`

const newDoc = `## Tokens
### GovToken
| Network | Address | Explorer | Constructor Args | Salt |
|---|---|---|---|---|
| mainnet | 0x1 | n/a | () | 0x0 |
| sepolia | 0x9 | n/a | () | 0x0 |

### NewThing
| Network | Address | Explorer | Constructor Args | Salt |
|---|---|---|---|---|
| mainnet | 0x3 | n/a | () | 0x0 |
`

func TestCompare(t *testing.T) {
	old := registry.Parse(oldDoc)
	new := registry.Parse(newDoc)

	c := Compare(old, new)

	if !reflect.DeepEqual(c.Added, []string{"Tokens/NewThing"}) {
		t.Errorf("Added = %v", c.Added)
	}
	if !reflect.DeepEqual(c.Removed, []string{"Tokens/OldThing"}) {
		t.Errorf("Removed = %v", c.Removed)
	}
	if !reflect.DeepEqual(c.Changed, []string{"Tokens/GovToken"}) {
		t.Errorf("Changed = %v", c.Changed)
	}
}

func TestCompareIdentical(t *testing.T) {
	old := registry.Parse(oldDoc)
	new := registry.Parse(oldDoc)

	c := Compare(old, new)
	if !c.Empty() {
		t.Errorf("Identical registries reported changes: %+v", c)
	}
}

func TestGenerate(t *testing.T) {
	old := registry.Parse(oldDoc)
	new := registry.Parse(newDoc)

	out, err := Generate("old.md", "new.md", old, new)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if out == "" {
		t.Fatalf("Generate returned empty diff for differing registries")
	}
	for _, want := range []string{"NewThing", "OldThing", "sepolia"} {
		if !strings.Contains(out, want) {
			t.Errorf("Diff output missing %q", want)
		}
	}
}

func TestGenerateIdentical(t *testing.T) {
	old := registry.Parse(oldDoc)
	new := registry.Parse(oldDoc)

	out, err := Generate("old.md", "new.md", old, new)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if out != "" {
		t.Errorf("Generate produced output for identical registries:\n%s", out)
	}
}

func TestGenerateIgnoresFormattingNoise(t *testing.T) {
	// Same records, different incidental layout
	messy := "## Tokens\r\n\r\n### GovToken\r\n\r\n|Network|Address|Explorer|Constructor Args|Salt|\r\n|-|-|-|-|-|\r\n|  mainnet  |0x1|n/a|()|0x0|\r\n\r\n### OldThing\r\n| Network | Address | Explorer | Constructor Args | Salt |\r\n|---|---|---|---|---|\r\n| mainnet | 0x2 | n/a | () | 0x0 |\r\n"

	old := registry.Parse(oldDoc)
	new := registry.Parse(messy)

	out, err := Generate("old.md", "new.md", old, new)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if out != "" {
		t.Errorf("Formatting-only differences produced a diff:\n%s", out)
	}
}
