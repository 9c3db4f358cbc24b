package classifier

import (
	"os"
	"regexp"
	"strings"

	"github.com/Tomas-vilte/MateLog/internal/config"
)

// ShouldIgnore decide si un archivo modificado es ruido. No hay prioridad
// entre patrones: cualquier match alcanza.
//
// Semántica de los patrones:
//   - terminado en "/": match por prefijo de ruta
//   - con "*": regex permisiva donde "*" es cualquier corrida de
//     caracteres, sin anclar (puede matchear en el medio, a propósito)
//   - cualquier otro: substring o sufijo
func ShouldIgnore(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}

		if strings.HasSuffix(pattern, "/") {
			if strings.HasPrefix(path, pattern) {
				return true
			}
			continue
		}

		if strings.Contains(pattern, "*") {
			if wildcardRegexp(pattern).MatchString(path) {
				return true
			}
			continue
		}

		if strings.Contains(path, pattern) || strings.HasSuffix(path, pattern) {
			return true
		}
	}
	return false
}

func wildcardRegexp(pattern string) *regexp.Regexp {
	parts := strings.Split(pattern, "*")
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return regexp.MustCompile(strings.Join(parts, ".*"))
}

// Scope asigna el scope lógico de un archivo a partir de su ruta.
// Primero las reglas explícitas del mapping (gana la primera que matchea),
// después la cadena de heurísticas en orden fijo.
func Scope(path string, mapping []config.ScopeRule) string {
	for _, rule := range mapping {
		if globRegexp(rule.Pattern).MatchString(path) {
			return rule.Scope
		}
	}

	lower := strings.ToLower(path)
	switch {
	case strings.Contains(lower, "config"):
		return "config"
	case strings.Contains(lower, "test") || strings.Contains(lower, "spec"):
		return "tests"
	case strings.Contains(lower, "doc") || strings.Contains(lower, "readme"):
		return "docs"
	}

	segments := strings.Split(path, "/")
	if len(segments) >= 3 && segments[0] == "src" {
		return segments[1]
	}
	if len(segments) > 1 {
		return segments[0]
	}

	return "core"
}

// globRegexp compila un patrón de mapping a regex anclada:
// "**" cruza separadores de directorio, "*" es un solo segmento.
func globRegexp(pattern string) *regexp.Regexp {
	const deep = "\x00"
	escaped := regexp.QuoteMeta(strings.ReplaceAll(pattern, "**", deep))
	escaped = strings.ReplaceAll(escaped, deep, ".*")
	escaped = strings.ReplaceAll(escaped, `\*`, "[^/]*")
	return regexp.MustCompile("^" + escaped + "$")
}

// LoadIgnoreFile lee un archivo de patrones opcional (.matelogignore).
// Si no existe devuelve nil sin error: es un archivo opcional.
func LoadIgnoreFile(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var patterns []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}
