package selector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	searchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	matchStyle    = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("86"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// View redibuja la pantalla completa en cada keystroke: bubbletea se
// encarga de limpiar y reescribir, acá solo se arma el frame.
func (m Model) View() string {
	if m.done {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(titleStyle.Render(m.trans.GetMessage("selector_title", 0, nil)))
	sb.WriteString("\n\n")

	sb.WriteString(searchStyle.Render(m.trans.GetMessage("selector_search_label", 0, nil)))
	sb.WriteString(" ")
	sb.WriteString(m.query)
	sb.WriteString("█\n\n")

	if len(m.filtered) == 0 {
		sb.WriteString(warnStyle.Render(m.trans.GetMessage("selector_no_matches", 0, map[string]interface{}{
			"Query": m.query,
		})))
		sb.WriteString("\n\n")
		sb.WriteString(dimStyle.Render(m.trans.GetMessage("selector_help", 0, nil)))
		sb.WriteString("\n")
		return sb.String()
	}

	end := m.scroll + m.maxDisplay
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := m.scroll; i < end; i++ {
		sb.WriteString(m.renderRow(i))
		sb.WriteString("\n")
	}

	if len(m.filtered) > m.maxDisplay {
		sb.WriteString(dimStyle.Render(fmt.Sprintf("  [%d-%d/%d]", m.scroll+1, end, len(m.filtered))))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(dimStyle.Render(m.trans.GetMessage("selector_help", 0, nil)))
	sb.WriteString("\n")

	return sb.String()
}

func (m Model) renderRow(i int) string {
	candidate := m.filtered[i]

	label := ""
	if candidate.IsDefault {
		label = " " + labelStyle.Render("("+m.trans.GetMessage("selector_label_default", 0, nil)+")")
	} else if candidate.IsRecent {
		label = " " + labelStyle.Render("("+m.trans.GetMessage("selector_label_recent", 0, nil)+")")
	}

	if i == m.selected {
		return selectedStyle.Render("> "+candidate.Name) + label
	}

	return "  " + highlightQuery(candidate.Name, m.query) + label
}

// highlightQuery subraya la primera aparición de la query en las filas no
// seleccionadas, para que se vea por qué matchearon.
func highlightQuery(name, query string) string {
	if query == "" {
		return name
	}

	idx := strings.Index(strings.ToLower(name), strings.ToLower(query))
	if idx < 0 {
		return name
	}

	return name[:idx] + matchStyle.Render(name[idx:idx+len(query)]) + name[idx+len(query):]
}
