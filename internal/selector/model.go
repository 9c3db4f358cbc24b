package selector

import (
	"github.com/Tomas-vilte/MateLog/internal/domain/models"
	"github.com/Tomas-vilte/MateLog/internal/i18n"
	tea "github.com/charmbracelet/bubbletea"
)

// Model es el estado del selector: la lista completa, la vista filtrada,
// la selección y la ventana de scroll. Un keystroke = un Update = un
// redibujado completo de View.
type Model struct {
	list       *BranchList
	filtered   []models.BranchCandidate
	selected   int
	scroll     int
	query      string
	maxDisplay int

	trans *i18n.Translations

	resolved  string
	cancelled bool
	done      bool
}

func NewModel(list *BranchList, maxDisplay int, trans *i18n.Translations) Model {
	return Model{
		list:       list,
		filtered:   list.Candidates,
		maxDisplay: maxDisplay,
		trans:      trans,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q":
		m.cancelled = true
		m.done = true
		return m, tea.Quit

	case "up":
		if m.selected > 0 {
			m.selected--
		}
		m.keepSelectionVisible()
		return m, nil

	case "down":
		if m.selected < len(m.filtered)-1 {
			m.selected++
		}
		m.keepSelectionVisible()
		return m, nil

	case "enter":
		if len(m.filtered) == 0 {
			return m, nil
		}
		m.resolved = m.list.Resolve(m.filtered[m.selected].Name)
		m.done = true
		return m, tea.Quit

	case "esc":
		m.query = ""
		m.refilter()
		return m, nil

	case "backspace":
		if m.query != "" {
			runes := []rune(m.query)
			m.query = string(runes[:len(runes)-1])
			m.refilter()
		}
		return m, nil
	}

	if keyMsg.Type == tea.KeyRunes {
		m.query += string(keyMsg.Runes)
		m.refilter()
	}

	return m, nil
}

// refilter recalcula la vista y resetea selección y scroll: la lista
// cambió, el índice anterior ya no apunta a lo mismo.
func (m *Model) refilter() {
	m.filtered = FilterBranches(m.query, m.list.Candidates)
	m.selected = 0
	m.scroll = 0
}

func (m *Model) keepSelectionVisible() {
	if m.selected < m.scroll {
		m.scroll = m.selected
	}
	if m.selected >= m.scroll+m.maxDisplay {
		m.scroll = m.selected - m.maxDisplay + 1
	}
}

// Resolved devuelve la referencia elegida y si la sesión fue cancelada.
func (m Model) Resolved() (string, bool) {
	return m.resolved, m.cancelled
}
