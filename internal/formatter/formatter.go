package formatter

import (
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateLog/internal/config"
	"github.com/Tomas-vilte/MateLog/internal/domain/models"
)

// scopeGroupThreshold: a partir de cuántas entradas una categoría se
// subdivide por scope.
const scopeGroupThreshold = 5

// Formatter convierte la lista de entradas tipadas en la sección markdown
// del changelog. Es determinístico: misma lista y misma configuración
// producen bytes idénticos.
type Formatter struct {
	platform      string
	repoURL       string
	ticketBaseURL string
}

func New(cfg *config.Config) *Formatter {
	return &Formatter{
		platform:      cfg.Platform,
		repoURL:       strings.TrimSuffix(cfg.RepoURL, "/"),
		ticketBaseURL: cfg.TicketBaseURL,
	}
}

// FormatSection renderiza la sección completa de una versión. Las entradas
// breaking van siempre primero bajo su propio encabezado, sin importar la
// categoría declarada.
func (f *Formatter) FormatSection(entries []models.ChangelogEntry, version, date string) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## [%s] - %s\n", version, date))

	var breaking []models.ChangelogEntry
	var rest []models.ChangelogEntry
	for _, e := range entries {
		if e.Type == models.EntryBreaking {
			breaking = append(breaking, e)
		} else {
			rest = append(rest, e)
		}
	}

	if len(breaking) > 0 {
		sb.WriteString(fmt.Sprintf("\n### %s\n\n", categoryBreaking))
		f.writeEntries(&sb, breaking, "")
	}

	grouped, order := groupByCategory(rest)
	for _, category := range order {
		sb.WriteString(fmt.Sprintf("\n### %s\n\n", category))
		f.writeCategory(&sb, grouped[category])
	}

	return sb.String()
}

// groupByCategory agrupa preservando el orden: primero las categorías
// canónicas en su orden fijo, después las desconocidas según aparición.
func groupByCategory(entries []models.ChangelogEntry) (map[string][]models.ChangelogEntry, []string) {
	grouped := make(map[string][]models.ChangelogEntry)
	var encountered []string

	for _, e := range entries {
		cat := categoryOf(e)
		if _, ok := grouped[cat]; !ok {
			encountered = append(encountered, cat)
		}
		grouped[cat] = append(grouped[cat], e)
	}

	var order []string
	for _, cat := range canonicalOrder {
		if _, ok := grouped[cat]; ok {
			order = append(order, cat)
		}
	}
	for _, cat := range encountered {
		if !isCanonical(cat) {
			order = append(order, cat)
		}
	}

	return grouped, order
}

func isCanonical(category string) bool {
	for _, c := range canonicalOrder {
		if c == category {
			return true
		}
	}
	return false
}

// writeCategory subdivide por scope cuando la categoría supera el umbral.
// Las entradas sin scope ("General") nunca llevan sub-encabezado propio.
func (f *Formatter) writeCategory(sb *strings.Builder, entries []models.ChangelogEntry) {
	if len(entries) <= scopeGroupThreshold {
		f.writeEntries(sb, entries, "")
		return
	}

	var general []models.ChangelogEntry
	scoped := make(map[string][]models.ChangelogEntry)
	var scopeOrder []string

	for _, e := range entries {
		if e.Scope == "" || strings.EqualFold(e.Scope, "general") {
			general = append(general, e)
			continue
		}
		if _, ok := scoped[e.Scope]; !ok {
			scopeOrder = append(scopeOrder, e.Scope)
		}
		scoped[e.Scope] = append(scoped[e.Scope], e)
	}

	f.writeEntries(sb, general, "")

	for i, scope := range scopeOrder {
		if i > 0 || len(general) > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("#### %s\n\n", scope))
		f.writeEntries(sb, scoped[scope], "")
	}
}

func (f *Formatter) writeEntries(sb *strings.Builder, entries []models.ChangelogEntry, indent string) {
	for _, e := range entries {
		sb.WriteString(indent)
		sb.WriteString("- ")
		sb.WriteString(e.Description)

		if e.PRNumber != "" {
			sb.WriteString(" (")
			sb.WriteString(f.prLink(e.PRNumber))
			sb.WriteString(")")
		}
		if e.TicketID != "" {
			sb.WriteString(" ")
			sb.WriteString(f.ticketLink(e.TicketID))
		}
		sb.WriteString("\n")

		for _, detail := range e.Details {
			sb.WriteString(indent)
			sb.WriteString("  - ")
			sb.WriteString(detail)
			sb.WriteString("\n")
		}
	}
}

// prLink arma el link markdown del PR según la plataforma detectada.
// Sin URL de repo queda el texto plano #n.
func (f *Formatter) prLink(n string) string {
	n = strings.TrimPrefix(n, "#")
	if f.repoURL == "" {
		return "#" + n
	}
	return fmt.Sprintf("[#%s](%s%s)", n, f.repoURL, config.PullRequestPath(f.platform, n))
}

// ticketLink usa la plantilla configurada (${ticketId}); sin plantilla, el
// id queda como código inline.
func (f *Formatter) ticketLink(id string) string {
	if f.ticketBaseURL == "" {
		return "`" + id + "`"
	}
	url := strings.ReplaceAll(f.ticketBaseURL, "${ticketId}", id)
	return fmt.Sprintf("[%s](%s)", id, url)
}
