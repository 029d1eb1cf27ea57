package commands

import (
	"fmt"
	"os"

	"github.com/gerunddev/contractbook/internal/config"
	"github.com/gerunddev/contractbook/internal/styles"
)

// Init writes a starter configuration file
func Init(args []string) {
	path := config.ConfigPath()
	if _, err := os.Stat(path); err == nil && !hasFlag(args, "--force") {
		fmt.Println(styles.ErrorStyle.Render("✗ Config already exists at " + path))
		fmt.Println(styles.DimStyle.Render("  Use --force to overwrite"))
		os.Exit(1)
	}

	cfg := config.DefaultConfig()
	if v, ok := flagValue(args, "--url"); ok {
		cfg.DocumentURL = v
	}
	if v, ok := flagValue(args, "--file"); ok {
		cfg.FallbackFile = v
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Save(); err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Failed to write config: " + err.Error()))
		os.Exit(1)
	}

	fmt.Println(styles.SuccessStyle.Render("✓ Config written to " + path))
	fmt.Println(styles.DimStyle.Render("  Edit it to point at your deployments document"))
}
