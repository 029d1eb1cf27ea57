package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/gerunddev/contractbook/internal/filter"
	"github.com/gerunddev/contractbook/internal/registry"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	filterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	tableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

// RegistryMsg is sent when the deployments document has been fetched and
// parsed
type RegistryMsg struct {
	Registry *registry.Registry
	Origin   string
	Err      error
}

// tableLine maps one table row back to the entry and row it came from
type tableLine struct {
	entry registry.Entry
	row   registry.Row
}

type browseModel struct {
	table    table.Model
	viewport viewport.Model
	spinner  spinner.Model
	search   textinput.Model

	reg    *registry.Registry
	origin string
	err    error
	ready  bool

	params filter.Params
	lines  []tableLine

	showingDetail bool
	searching     bool
	width         int
	height        int

	fetchFunc func() tea.Msg
}

// InitBrowseModel creates a new deployment browser model. fetchFunc acquires
// and parses the document off the UI loop and must return a RegistryMsg.
func InitBrowseModel(fetchFunc func() tea.Msg) browseModel {
	columns := []table.Column{
		{Title: "Entry", Width: 24},
		{Title: "Category", Width: 18},
		{Title: "Network", Width: 12},
		{Title: "Address", Width: 44},
		{Title: "Salt", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	ts.Selected = ts.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(ts)

	vp := viewport.New(100, 20)
	vp.Style = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	ti := textinput.New()
	ti.Placeholder = "search title, address, network..."
	ti.CharLimit = 80
	ti.Width = 40

	return browseModel{
		table:     t,
		viewport:  vp,
		spinner:   s,
		search:    ti,
		fetchFunc: fetchFunc,
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchFunc)
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(msg.Height - 10)
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - 6

	case spinner.TickMsg:
		if !m.ready {
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			switch msg.String() {
			case "enter":
				m.params.Query = m.search.Value()
				m.searching = false
				m.search.Blur()
				m.rebuildRows()
				return m, nil
			case "esc":
				m.searching = false
				m.search.Blur()
				return m, nil
			default:
				m.search, cmd = m.search.Update(msg)
				return m, cmd
			}
		}

		if m.showingDetail {
			switch msg.String() {
			case "q", "esc":
				m.showingDetail = false
				return m, nil
			case "up", "k", "down", "j":
				m.viewport, cmd = m.viewport.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		// In table view
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k", "down", "j":
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		case "/":
			m.searching = true
			m.search.SetValue(m.params.Query)
			return m, m.search.Focus()
		case "n":
			if m.reg != nil {
				m.params.Network = cycle(m.reg.Networks, m.params.Network)
				m.rebuildRows()
			}
			return m, nil
		case "c":
			if m.reg != nil {
				m.params.Category = cycle(m.reg.Categories, m.params.Category)
				m.rebuildRows()
			}
			return m, nil
		case "esc":
			m.params = filter.Params{}
			m.search.SetValue("")
			m.rebuildRows()
			return m, nil
		case "r":
			m.ready = false
			return m, tea.Batch(m.spinner.Tick, m.fetchFunc)
		case "enter", "d":
			if len(m.lines) > 0 {
				idx := m.table.Cursor()
				if idx < len(m.lines) {
					m.showingDetail = true
					m.viewport.SetContent(renderDetail(m.lines[idx].entry))
					m.viewport.GotoTop()
				}
			}
			return m, nil
		}

	case RegistryMsg:
		m.ready = true
		m.reg = msg.Registry
		m.origin = msg.Origin
		m.err = msg.Err
		m.rebuildRows()
		return m, nil
	}

	return m, nil
}

// rebuildRows re-derives the visible table rows from the current filter
// parameters
func (m *browseModel) rebuildRows() {
	m.lines = nil

	if m.reg == nil {
		m.table.SetRows(nil)
		return
	}

	rows := []table.Row{}
	for _, entry := range filter.Apply(m.reg, m.params) {
		for _, row := range entry.Rows {
			m.lines = append(m.lines, tableLine{entry: entry, row: row})
			rows = append(rows, table.Row{
				entry.Title,
				entry.Category,
				row.Network,
				row.Address,
				row.Salt,
			})
		}
	}
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Contract Deployments"))
	b.WriteString("\n\n")

	if m.err != nil {
		return b.String() + errorStyle.Render("✗ Error: "+m.err.Error()) + "\n\n" +
			helpStyle.Render("q quit") + "\n"
	}

	if !m.ready {
		b.WriteString(m.spinner.View())
		b.WriteString(" Fetching deployments document...")
		b.WriteString("\n")
		return b.String()
	}

	if m.showingDetail {
		b.WriteString(m.viewport.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("↑/k up • ↓/j down • esc/q back"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(labelStyle.Render(fmt.Sprintf("Source: %s", m.origin)))
	b.WriteString("\n")
	b.WriteString(m.filterLine())
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString(m.search.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter apply • esc cancel"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(tableStyle.Render(m.table.View()))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("↑/↓ move • enter detail • n network • c category • / search • esc clear • r refresh • q quit"))
	b.WriteString("\n")
	return b.String()
}

// filterLine renders the active filter parameters
func (m browseModel) filterLine() string {
	parts := []string{
		fmt.Sprintf("Rows: %d", len(m.lines)),
	}
	if m.params.IsZero() {
		parts = append(parts, "no filters")
		return labelStyle.Render(strings.Join(parts, "  "))
	}
	if m.params.Network != "" {
		parts = append(parts, filterStyle.Render("network="+m.params.Network))
	}
	if m.params.Category != "" {
		parts = append(parts, filterStyle.Render("category="+m.params.Category))
	}
	if m.params.Query != "" {
		parts = append(parts, filterStyle.Render("search="+m.params.Query))
	}
	return labelStyle.Render(strings.Join(parts, "  "))
}

// cycle advances a facet filter through its choices: unset -> each value in
// order -> unset again
func cycle(values []string, current string) string {
	if len(values) == 0 {
		return ""
	}
	if current == "" {
		return values[0]
	}
	for i, v := range values {
		if v == current {
			if i+1 < len(values) {
				return values[i+1]
			}
			return ""
		}
	}
	return ""
}

// renderDetail renders one entry as markdown through glamour, falling back
// to the raw markdown if rendering fails
func renderDetail(entry registry.Entry) string {
	md := entryMarkdown(entry)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}

	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}

func entryMarkdown(entry registry.Entry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", entry.Title)
	fmt.Fprintf(&b, "**Category:** %s\n\n", entry.Category)
	b.WriteString("| Network | Address | Explorer | Constructor Args | Salt |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for _, row := range entry.Rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			row.Network, row.Address, row.Explorer, row.Args, row.Salt)
	}

	return b.String()
}
