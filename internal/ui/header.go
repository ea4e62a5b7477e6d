package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Detail is one key/value line in a panel or result box. Order is kept.
type Detail struct {
	Key   string
	Value string
}

// Panel is a titled box listing key/value details, used to display the
// device state.
type Panel struct {
	Title    string   // e.g., "SmartThermo"
	Subtitle string   // e.g., the config file path
	Details  []Detail // Rendered in order
	Width    int      // Terminal width for responsive rendering
	Plain    bool     // Render without styling
}

// NewPanel creates a panel sized to the terminal, plain when stdout is not a TTY
func NewPanel(title, subtitle string, details []Detail) *Panel {
	return &Panel{
		Title:    title,
		Subtitle: subtitle,
		Details:  details,
		Width:    GetTerminalWidth(),
		Plain:    !IsTerminal(),
	}
}

// Render returns the panel as a string
func (p *Panel) Render() string {
	if p.Plain {
		return p.renderPlain()
	}

	width := clampWidth(p.Width)

	titleLine := HeaderTitleStyle.Render(strings.ToUpper(p.Title))
	top := titleLine
	if p.Subtitle != "" {
		top = lipgloss.JoinVertical(lipgloss.Left, titleLine, HeaderCommandStyle.Render(p.Subtitle))
	}

	dividerWidth := width - 6
	if dividerWidth < 10 {
		dividerWidth = 10
	}
	divider := lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat("─", dividerWidth))

	lines := make([]string, 0, len(p.Details))
	for _, d := range p.Details {
		lines = append(lines, HeaderParamKeyStyle.Render(d.Key+":")+" "+HeaderParamValueStyle.Render(d.Value))
	}

	content := top
	if len(lines) > 0 {
		content = lipgloss.JoinVertical(lipgloss.Left, top, divider, strings.Join(lines, "\n"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2).
		Render(content)
}

func (p *Panel) renderPlain() string {
	var b strings.Builder
	b.WriteString(p.Title)
	if p.Subtitle != "" {
		b.WriteString(fmt.Sprintf(" (%s)", p.Subtitle))
	}
	b.WriteString("\n")
	for _, d := range p.Details {
		b.WriteString(fmt.Sprintf("  %s: %s\n", d.Key, d.Value))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// String implements fmt.Stringer
func (p *Panel) String() string {
	return p.Render()
}
