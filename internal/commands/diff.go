package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gerunddev/contractbook/internal/diff"
	"github.com/gerunddev/contractbook/internal/registry"
	"github.com/gerunddev/contractbook/internal/source"
	"github.com/gerunddev/contractbook/internal/styles"
)

// Diff compares two deployments documents and prints what changed
func Diff(args []string) {
	paths := positionalArgs(args)
	if len(paths) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: contractbook diff <old.md> <new.md>")
		os.Exit(1)
	}

	oldText, err := source.ReadFile(paths[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	newText, err := source.ReadFile(paths[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	oldReg := registry.Parse(oldText)
	newReg := registry.Parse(newText)

	changes := diff.Compare(oldReg, newReg)
	if changes.Empty() {
		fmt.Println(styles.SuccessStyle.Render("✓ No deployment changes"))
		return
	}

	for _, key := range changes.Added {
		fmt.Println(styles.SuccessStyle.Render("+ " + key))
	}
	for _, key := range changes.Removed {
		fmt.Println(styles.ErrorStyle.Render("- " + key))
	}
	for _, key := range changes.Changed {
		fmt.Println(styles.WarningStyle.Render("~ " + key))
	}
	fmt.Println()

	out, err := diff.Generate(filepath.Base(paths[0]), filepath.Base(paths[1]), oldReg, newReg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating diff: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}
