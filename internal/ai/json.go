package ai

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Tomas-vilte/MateLog/internal/domain/models"
)

// ErrNoJSON indica que la respuesta del modelo no contiene ningún objeto
// JSON balanceado.
var ErrNoJSON = errors.New("la respuesta no contiene un objeto JSON")

// ExtractJSON devuelve el primer span {...} balanceado del texto. Los
// modelos suelen envolver el JSON con prosa ("Acá tenés:..."), así que no
// se puede parsear el texto crudo directo.
func ExtractJSON(raw string) (string, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range raw {
		if start >= 0 && inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}

		switch r {
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start >= 0 {
				depth--
				if depth == 0 {
					return raw[start : i+1], nil
				}
			}
		case '"':
			if start >= 0 {
				inString = true
			}
		}
	}

	return "", ErrNoJSON
}

// ParseEntries extrae y valida la lista de entradas de la respuesta cruda.
// Devuelve las entradas válidas y cuántas se descartaron por mal formadas.
// Un tipo desconocido NO invalida la entrada: el formatter la agrupa en
// "Other Changes".
func ParseEntries(raw string) ([]models.ChangelogEntry, int, error) {
	span, err := ExtractJSON(raw)
	if err != nil {
		return nil, 0, err
	}

	var list models.EntryList
	if err := json.Unmarshal([]byte(span), &list); err != nil {
		return nil, 0, fmt.Errorf("JSON inválido: %w", err)
	}

	valid := make([]models.ChangelogEntry, 0, len(list.Entries))
	dropped := 0
	for _, entry := range list.Entries {
		if entry.Type == "" || entry.Description == "" {
			dropped++
			continue
		}
		valid = append(valid, entry)
	}

	return valid, dropped, nil
}
