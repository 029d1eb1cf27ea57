package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/gerunddev/contractbook/internal/logger"
	"github.com/gerunddev/contractbook/internal/render"
	"github.com/gerunddev/contractbook/internal/styles"
)

// Show prints a single entry, selected by title (case-insensitive)
func Show(args []string) {
	titles := positionalArgs(args)
	if len(titles) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: contractbook show <entry title>")
		os.Exit(1)
	}
	want := strings.ToLower(titles[0])

	cfg := loadConfig(args)
	reg, _, err := fetchRegistry(cfg, logger.New(os.Stderr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, entry := range reg.Entries {
		if strings.ToLower(entry.Title) != want {
			continue
		}

		md := fmt.Sprintf("**Category:** %s\n\n%s", entry.Category, render.Entry(entry))
		out := md
		if renderer, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120)); err == nil {
			if rendered, err := renderer.Render(md); err == nil {
				out = rendered
			}
		}
		fmt.Print(out)
		return
	}

	fmt.Println(styles.ErrorStyle.Render(fmt.Sprintf("✗ No entry titled %q", titles[0])))
	os.Exit(1)
}
