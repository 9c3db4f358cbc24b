package selector

import (
	"sort"
	"strings"

	"github.com/Tomas-vilte/MateLog/internal/domain/models"
)

// Niveles de score: los matches exactos/prefijo/substring siempre ganan
// sobre una subsecuencia pura, cuyo score es la cantidad de caracteres
// matcheados (nunca llega a un nivel).
const (
	scoreExact     = 1000
	scorePrefix    = 800
	scoreSegment   = 600
	scoreSubstring = 400
)

// FilterBranches filtra y ordena las candidatas para la query. Con query
// vacía devuelve la lista priorizada intacta: ese es el estado por defecto
// y el orden de prioridad ya es el correcto.
func FilterBranches(query string, candidates []models.BranchCandidate) []models.BranchCandidate {
	if query == "" {
		return candidates
	}

	type scored struct {
		candidate models.BranchCandidate
		score     int
	}

	matches := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if s := Score(query, c.Name); s > 0 {
			matches = append(matches, scored{candidate: c, score: s})
		}
	}

	// el sort estable conserva el orden de aparición entre empates
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	result := make([]models.BranchCandidate, len(matches))
	for i, m := range matches {
		result[i] = m.candidate
	}
	return result
}

// Score puntúa un nombre contra la query, sin distinguir mayúsculas:
// exacto > prefijo > prefijo de segmento (cortando en / y -) > substring >
// subsecuencia en orden. Cero excluye la candidata.
func Score(query, name string) int {
	q := strings.ToLower(query)
	n := strings.ToLower(name)

	if n == q {
		return scoreExact
	}
	if strings.HasPrefix(n, q) {
		return scorePrefix
	}

	for _, segment := range strings.FieldsFunc(n, func(r rune) bool {
		return r == '/' || r == '-'
	}) {
		if strings.HasPrefix(segment, q) {
			return scoreSegment
		}
	}

	if strings.Contains(n, q) {
		return scoreSubstring
	}

	return subsequenceScore(q, n)
}

// subsequenceScore devuelve cuántos caracteres de la query aparecen en
// orden dentro del nombre; si no aparecen todos, la candidata queda afuera.
func subsequenceScore(query, name string) int {
	runes := []rune(query)
	matched := 0
	for _, r := range name {
		if matched < len(runes) && runes[matched] == r {
			matched++
		}
	}
	if matched < len(runes) {
		return 0
	}
	return matched
}
