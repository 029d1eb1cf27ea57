package commands

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/contractbook/internal/logger"
	"github.com/gerunddev/contractbook/internal/registry"
	"github.com/gerunddev/contractbook/internal/source"
	"github.com/gerunddev/contractbook/internal/styles"
	"github.com/gerunddev/contractbook/internal/tui"
)

// Browse opens the interactive deployment browser
func Browse(args []string) {
	cfg := loadConfig(args)
	log := logger.Discard() // The TUI owns the terminal; nothing may print over it

	fetchFunc := func() tea.Msg {
		res, err := source.NewFetcher(cfg, log).Fetch(context.Background())
		if err != nil {
			return tui.RegistryMsg{Err: err}
		}
		return tui.RegistryMsg{
			Registry: registry.Parse(res.Text),
			Origin:   res.Origin,
		}
	}

	m := tui.InitBrowseModel(fetchFunc)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Println(styles.ErrorStyle.Render("✗ Error: " + err.Error()))
		os.Exit(1)
	}
}
