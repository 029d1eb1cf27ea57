package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/gerunddev/contractbook/internal/filter"
	"github.com/gerunddev/contractbook/internal/logger"
	"github.com/gerunddev/contractbook/internal/styles"
)

// List prints the deployment entries matching the given filters
func List(args []string) {
	cfg := loadConfig(args)

	reg, origin, err := fetchRegistry(cfg, logger.New(os.Stderr))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	visible := filter.Apply(reg, filterParams(args))

	if hasFlag(args, "--json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(visible); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println(styles.DimStyle.Render("Source: " + origin))
	fmt.Println()

	if len(visible) == 0 {
		fmt.Println(styles.DimStyle.Render("No matching entries"))
		return
	}

	category := ""
	for _, entry := range visible {
		if entry.Category != category {
			category = entry.Category
			fmt.Println(styles.HeaderStyle.Render(category))
		}
		fmt.Printf("  %s\n", styles.TitleStyle.Render(entry.Title))
		for _, row := range entry.Rows {
			fmt.Printf("    %-12s %s\n", row.Network, row.Address)
		}
	}

	fmt.Println()
	fmt.Println(styles.DimStyle.Render(fmt.Sprintf("Entries: %d  Networks: %s",
		len(visible), strings.Join(reg.Networks, ", "))))
}
