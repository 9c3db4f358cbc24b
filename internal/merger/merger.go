package merger

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const defaultTitle = "# Changelog"

var excessBlankLines = regexp.MustCompile(`\n{4,}`)

// MergeContent inserta la nueva sección inmediatamente después del título
// de primer nivel, preservando un único párrafo de descripción si existe.
// Tres o más líneas en blanco seguidas colapsan a una sola.
func MergeContent(existing, section string) string {
	section = strings.TrimRight(section, "\n")

	if strings.TrimSpace(existing) == "" {
		return collapse(defaultTitle + "\n\n" + section + "\n")
	}

	lines := strings.Split(existing, "\n")

	titleIdx := -1
	for i, line := range lines {
		if strings.HasPrefix(line, "# ") {
			titleIdx = i
			break
		}
	}

	if titleIdx < 0 {
		// sin título: la sección va arriba de todo
		return collapse(defaultTitle + "\n\n" + section + "\n\n" + existing)
	}

	// después del título puede venir un párrafo de descripción; la nueva
	// sección entra después de ese párrafo, antes que todo lo demás
	insertIdx := titleIdx + 1
	i := insertIdx
	for i < len(lines) && strings.TrimSpace(lines[i]) == "" {
		i++
	}
	if i < len(lines) && !strings.HasPrefix(lines[i], "#") {
		for i < len(lines) && strings.TrimSpace(lines[i]) != "" {
			i++
		}
		insertIdx = i
	}

	var sb strings.Builder
	sb.WriteString(strings.Join(lines[:insertIdx], "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(section)
	sb.WriteString("\n\n")
	sb.WriteString(strings.TrimLeft(strings.Join(lines[insertIdx:], "\n"), "\n"))

	return collapse(sb.String())
}

func collapse(content string) string {
	content = excessBlankLines.ReplaceAllString(content, "\n\n")
	return strings.TrimRight(content, "\n") + "\n"
}

// Append fusiona la sección dentro del changelog en disco. Si el archivo
// no existe se crea con el título por defecto.
func Append(path, section string) error {
	existing := ""
	if data, err := os.ReadFile(path); err == nil {
		existing = string(data)
	}

	merged := MergeContent(existing, section)
	if err := os.WriteFile(path, []byte(merged), 0644); err != nil {
		return fmt.Errorf("error al escribir el changelog: %w", err)
	}
	return nil
}

// BuildStandalone arma el documento de vista previa autocontenido, con el
// footer de comparación cuando hay URL de repo.
func BuildStandalone(section, rang, compareURL string) string {
	var sb strings.Builder

	sb.WriteString("# Changelog Preview\n\n")
	sb.WriteString(strings.TrimRight(section, "\n"))
	sb.WriteString("\n")

	if compareURL != "" {
		sb.WriteString("\n---\n\n")
		sb.WriteString(fmt.Sprintf("Compare: [%s](%s)\n", rang, compareURL))
	}

	return sb.String()
}

// WriteStandalone sobrescribe el archivo de vista previa, creando los
// directorios intermedios si hace falta.
func WriteStandalone(path, content string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error al crear el directorio de salida: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("error al escribir la vista previa: %w", err)
	}
	return nil
}
