package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NSTRvG/Sequence-Analyzer/internal/app"
	"github.com/NSTRvG/Sequence-Analyzer/internal/fasta"
	"github.com/NSTRvG/Sequence-Analyzer/internal/report"
)

// Colors for modern design
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	accentColor    = lipgloss.Color("#F59E0B") // Amber
	surfaceColor   = lipgloss.Color("#1F2937") // Dark gray
	textColor      = lipgloss.Color("#F3F4F6") // Light gray
	mutedColor     = lipgloss.Color("#9CA3AF") // Muted gray
	borderColor    = lipgloss.Color("#374151") // Border gray
)

// Styles
var (
	containerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Align(lipgloss.Center)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1)

	tableStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(lipgloss.Color("#111827")).
			Padding(1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	// Annotation kind styles
	kindGenomeStyle  = lipgloss.NewStyle().Foreground(secondaryColor).Bold(true)
	kindProteinStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	kindUnknownStyle = lipgloss.NewStyle().Foreground(mutedColor)
)

type listItem struct {
	record fasta.Record
}

func (i listItem) FilterValue() string {
	return i.record.Name
}

func (i listItem) Title() string {
	return i.record.Name
}

func (i listItem) Description() string {
	// Metadata line shown below the name in the selector list
	var kind string
	switch i.record.Protein {
	case fasta.CompleteGenome:
		kind = kindGenomeStyle.Render(i.record.Protein)
	case fasta.Unknown:
		kind = kindUnknownStyle.Render(i.record.Protein)
	default:
		kind = kindProteinStyle.Render(i.record.Protein)
	}
	return fmt.Sprintf("GC: %.2f%%    %s", i.record.GCContent, kind)
}

type model struct {
	list          list.Model
	analyzer      *app.Analyzer
	exportPath    string
	status        string
	showHelp      bool
	width         int
	height        int
	totalRecords  int
	selectedIndex int
}

func newModel(analyzer *app.Analyzer, exportPath string) model {
	records := analyzer.Session.Records()
	items := make([]list.Item, len(records))
	for i, record := range records {
		items[i] = listItem{record: record}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Analyzed Genes"
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)

	return model{
		list:         l,
		analyzer:     analyzer,
		exportPath:   exportPath,
		totalRecords: len(records),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// left panel takes 1/3 of the width
		m.list.SetWidth(msg.Width / 3)
		m.list.SetHeight(msg.Height - 4)

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "h":
			m.showHelp = !m.showHelp
			return m, nil

		case "e":
			if err := m.analyzer.Export(m.exportPath); err != nil {
				m.status = fmt.Sprintf("export failed: %v", err)
			} else {
				m.status = fmt.Sprintf("exported %d records to %s", m.analyzer.Session.Len(), m.exportPath)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	m.selectedIndex = m.list.Index()
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpModal()
	}

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderLeftPanel(),
		m.renderRightPanel(),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatusBar(),
	)
}

func (m model) renderLeftPanel() string {
	return containerStyle.
		Width(m.width/3 - 2).
		Height(m.height - 4).
		Render(m.list.View())
}

func (m model) renderRightPanel() string {
	rightWidth := (m.width * 2) / 3

	selectedItem := m.list.SelectedItem()
	if selectedItem == nil {
		return containerStyle.
			Width(rightWidth - 2).
			Height(m.height - 4).
			Render("No records available")
	}

	record := selectedItem.(listItem).record
	header := titleStyle.Render(record.Name)

	label := lipgloss.NewStyle().Foreground(mutedColor)
	meta := label.Render("GC content: ") + kindProteinStyle.Render(fmt.Sprintf("%.2f%%", record.GCContent)) +
		label.Render("    Protein: ") + kindGenomeStyle.Render(record.Protein)

	table := tableStyle.
		Width(rightWidth - 6).
		Render(report.Text(m.analyzer.Session.Records()))

	panelContent := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		meta,
		"",
		table,
	)

	return containerStyle.
		Width(rightWidth - 2).
		Height(m.height - 4).
		Render(panelContent)
}

// statusLine lays the three status segments out across width columns,
// falling back to a compact form on narrow terminals.
func statusLine(width int, left, center, right string) string {
	spacing := width - len(left) - len(center) - len(right) - 6
	if spacing <= 0 {
		return fmt.Sprintf("%s | %s", left, center)
	}
	leftSpacing := spacing / 2
	rightSpacing := spacing - leftSpacing
	return left + strings.Repeat(" ", leftSpacing) + center + strings.Repeat(" ", rightSpacing) + right
}

func (m model) renderStatusBar() string {
	left := fmt.Sprintf("%d/%d records", m.selectedIndex+1, m.totalRecords)
	center := m.status
	if center == "" {
		center = fmt.Sprintf("export target: %s", m.exportPath)
	}
	right := "Press 'h' for help - 'q' to quit"

	return statusBarStyle.
		Width(m.width).
		Render(statusLine(m.width, left, center, right))
}

func (m model) renderHelpModal() string {
	helpContent := `Sequence Analyzer - Help

Navigation:
  up/down, j/k   Navigate list
  /              Filter records

Actions:
  e              Export accumulated table to ` + m.exportPath + `

General:
  h              Toggle this help
  q, Ctrl+C      Quit application

Total Records: ` + fmt.Sprintf("%d", m.totalRecords) + `
`

	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Background(surfaceColor).
		Foreground(textColor).
		Width(60).
		Align(lipgloss.Center)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalStyle.Render(helpContent),
	)
}

func main() {
	outputFlag := flag.String("out", "analysis.txt", "export path used by the 'e' key")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: tui [-out file.txt] file.fasta [more.fasta ...]")
		os.Exit(1)
	}

	analyzer := app.New()
	ctx := context.Background()
	for _, path := range flag.Args() {
		if _, err := analyzer.LoadFile(ctx, path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if analyzer.Session.Len() == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no records found in the given files")
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(analyzer, *outputFlag), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error: %v", err)
		os.Exit(1)
	}
}
