package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tomas-vilte/MateLog/internal/classifier"
	"github.com/Tomas-vilte/MateLog/internal/config"
	"github.com/Tomas-vilte/MateLog/internal/domain/models"
	"github.com/Tomas-vilte/MateLog/internal/domain/ports"
	"github.com/Tomas-vilte/MateLog/internal/logger"
)

// maxHunks acota el diff por archivo que entra al prompt: con tres hunks
// alcanza para que el modelo entienda el cambio sin quemar tokens.
const maxHunks = 3

const fileSeparator = "\n---\n"

// Summarizer arma el payload de texto que se le manda al modelo: un bloque
// global con los subjects del rango más un bloque acotado por archivo.
type Summarizer struct {
	git     ports.GitService
	ignore  []string
	mapping []config.ScopeRule
}

func New(git ports.GitService, ignore []string, mapping []config.ScopeRule) *Summarizer {
	return &Summarizer{
		git:     git,
		ignore:  ignore,
		mapping: mapping,
	}
}

// Summarize junta diffs y subjects para el rango dado. Los archivos que
// matchean un patrón de ignore no entran al resumen.
func (s *Summarizer) Summarize(ctx context.Context, rang string) (*models.RangeSummary, error) {
	files := s.git.ChangedFiles(ctx, rang)

	relevant := make([]string, 0, len(files))
	for _, f := range files {
		if classifier.ShouldIgnore(f, s.ignore) {
			logger.Debug(ctx, "archivo ignorado", "path", f)
			continue
		}
		relevant = append(relevant, f)
	}

	subjects := s.git.CommitSubjects(ctx, rang)

	summary := &models.RangeSummary{
		Range:    rang,
		Subjects: subjects,
	}
	if len(subjects) > 0 {
		summary.Title = subjects[0]
	}

	for _, path := range relevant {
		summary.Files = append(summary.Files, models.FileSummary{
			Path:     path,
			Scope:    classifier.Scope(path, s.mapping),
			Subjects: s.git.FileCommitSubjects(ctx, rang, path),
			Diff:     CapDiff(s.git.FileDiff(ctx, rang, path)),
		})
	}

	return summary, nil
}

// Payload concatena el resumen en el texto plano que consume la IA.
// No hay más compresión que el tope de hunks.
func Payload(summary *models.RangeSummary) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("PR Title: %s\n", summary.Title))
	sb.WriteString(fmt.Sprintf("Range: %s\n", summary.Range))
	sb.WriteString("Commits:\n")
	for _, subject := range summary.Subjects {
		sb.WriteString(fmt.Sprintf("- %s\n", subject))
	}

	for _, file := range summary.Files {
		sb.WriteString(fileSeparator)
		sb.WriteString(fmt.Sprintf("File: %s\n", file.Path))
		sb.WriteString(fmt.Sprintf("Scope: %s\n", file.Scope))
		if len(file.Subjects) > 0 {
			sb.WriteString("Commits:\n")
			for _, subject := range file.Subjects {
				sb.WriteString(fmt.Sprintf("- %s\n", subject))
			}
		}
		if file.Diff != "" {
			sb.WriteString("Diff:\n")
			sb.WriteString(file.Diff)
			if !strings.HasSuffix(file.Diff, "\n") {
				sb.WriteString("\n")
			}
		}
	}

	return sb.String()
}

// CapDiff recorta un diff a los primeros tres hunks. Dentro de cada hunk
// quedan solo las líneas agregadas/eliminadas y las vacías; la captura se
// corta ante cualquier otra línea que no sea de contexto y se retoma en el
// siguiente marcador @@. Nunca se emite una línea de contexto.
func CapDiff(diff string) string {
	if diff == "" {
		return ""
	}

	var sb strings.Builder
	hunks := 0
	capturing := false

	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "@@") {
			hunks++
			if hunks > maxHunks {
				break
			}
			capturing = true
			sb.WriteString(line)
			sb.WriteString("\n")
			continue
		}

		if !capturing {
			continue
		}

		switch {
		case line == "":
			sb.WriteString("\n")
		case strings.HasPrefix(line, "+") || strings.HasPrefix(line, "-"):
			sb.WriteString(line)
			sb.WriteString("\n")
		case strings.HasPrefix(line, " "):
			// línea de contexto: se saltea sin cortar el hunk
		default:
			capturing = false
		}
	}

	return sb.String()
}
