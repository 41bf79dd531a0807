// Package tui is a terminal live preview: the order is re-parsed on every keystroke.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quickorder/internal/intent"
)

const barWidth = 20

// Model is the bubbletea model for the live preview.
type Model struct {
	parser    *intent.Parser
	threshold int
	input     textinput.Model
	order     intent.ParsedOrder
}

// New creates a preview model backed by parser.
func New(parser *intent.Parser, threshold int) Model {
	ti := textinput.New()
	ti.Placeholder = "1k instagram followers @username"
	ti.Prompt = promptStyle.Render("> ")
	ti.CharLimit = 280
	ti.Focus()

	return Model{
		parser:    parser,
		threshold: threshold,
		input:     ti,
	}
}

// Run starts the interactive preview and blocks until the user quits.
func Run(parser *intent.Parser, threshold int) error {
	_, err := tea.NewProgram(New(parser, threshold)).Run()
	return err
}

// Order returns the most recent parse.
func (m Model) Order() intent.ParsedOrder {
	return m.order
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.order = m.parser.Parse(m.input.Value())
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Quick order"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	var fields strings.Builder
	fmt.Fprintf(&fields, "%s %d%%", matchBar(m.order.MatchPercentage), m.order.MatchPercentage)
	if m.parser.Ready(m.order, m.threshold) && m.order.MatchPercentage > 0 {
		fields.WriteString("  " + readyStyle.Render("ready"))
	}
	fields.WriteString("\n\n")

	quantity := ""
	if m.order.HasQuantity() {
		quantity = fmt.Sprintf("%d", m.order.QuantityValue())
	}
	platform, serviceType := "", ""
	if m.order.HasPlatform() {
		platform = m.parser.PlatformDisplayName(string(m.order.Platform))
	}
	if m.order.HasServiceType() {
		serviceType = m.parser.ServiceTypeDisplayName(string(m.order.ServiceType))
	}

	fields.WriteString(field("Quantity", quantity))
	fields.WriteString(field("Platform", platform))
	fields.WriteString(field("Service", serviceType))
	fields.WriteString(field("Target", m.order.Target))

	b.WriteString(panelStyle.Render(strings.TrimRight(fields.String(), "\n")))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc to quit"))
	b.WriteString("\n")
	return b.String()
}

func field(label, value string) string {
	if value == "" {
		return labelStyle.Render(label) + missingStyle.Render("missing") + "\n"
	}
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

// matchBar draws pct as a fixed-width bar.
func matchBar(pct int) string {
	filled := max(0, min(barWidth, pct*barWidth/intent.MaxMatchPercentage))
	return barFullStyle.Render(strings.Repeat("█", filled)) +
		barEmptyStyle.Render(strings.Repeat("░", barWidth-filled))
}
