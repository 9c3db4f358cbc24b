package ai

import (
	"testing"

	"github.com/Tomas-vilte/MateLog/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	t.Run("debería extraer el JSON rodeado de prosa", func(t *testing.T) {
		raw := "Here you go:\n{\"entries\":[]}\nThanks"

		span, err := ExtractJSON(raw)
		assert.NoError(t, err)
		assert.Equal(t, `{"entries":[]}`, span)
	})

	t.Run("debería balancear llaves anidadas", func(t *testing.T) {
		raw := `bla {"a": {"b": 1}, "c": 2} bla {"otro": 3}`

		span, err := ExtractJSON(raw)
		assert.NoError(t, err)
		assert.Equal(t, `{"a": {"b": 1}, "c": 2}`, span)
	})

	t.Run("debería ignorar llaves adentro de strings", func(t *testing.T) {
		raw := `{"desc": "usa { y } en el texto"}`

		span, err := ExtractJSON(raw)
		assert.NoError(t, err)
		assert.Equal(t, raw, span)
	})

	t.Run("debería fallar sin ningún objeto", func(t *testing.T) {
		_, err := ExtractJSON("no hay json acá")
		assert.ErrorIs(t, err, ErrNoJSON)
	})

	t.Run("debería fallar con un objeto sin cerrar", func(t *testing.T) {
		_, err := ExtractJSON(`{"entries": [`)
		assert.ErrorIs(t, err, ErrNoJSON)
	})
}

func TestParseEntries(t *testing.T) {
	t.Run("debería parsear una lista vacía", func(t *testing.T) {
		entries, dropped, err := ParseEntries("Here you go:\n{\"entries\":[]}\nThanks")

		assert.NoError(t, err)
		assert.Empty(t, entries)
		assert.Zero(t, dropped)
	})

	t.Run("debería descartar entradas sin tipo o sin descripción", func(t *testing.T) {
		raw := `{"entries":[
			{"type":"feat","description":"agrega el selector de branches"},
			{"type":"","description":"sin tipo"},
			{"type":"fix","description":""}
		]}`

		entries, dropped, err := ParseEntries(raw)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Equal(t, 2, dropped)
	})

	t.Run("debería conservar entradas con tipos desconocidos", func(t *testing.T) {
		raw := `{"entries":[{"type":"chore","description":"algo raro"}]}`

		entries, dropped, err := ParseEntries(raw)
		assert.NoError(t, err)
		assert.Len(t, entries, 1)
		assert.Zero(t, dropped)
		assert.False(t, entries[0].Type.IsKnown())
	})

	t.Run("debería conservar los campos opcionales", func(t *testing.T) {
		raw := `{"entries":[{"type":"feat","scope":"selector","description":"búsqueda difusa","prNumber":"42","ticketId":"MATE-7","details":["soporta subsecuencias"]}]}`

		entries, _, err := ParseEntries(raw)
		assert.NoError(t, err)
		assert.Equal(t, models.EntryFeat, entries[0].Type)
		assert.Equal(t, "selector", entries[0].Scope)
		assert.Equal(t, "42", entries[0].PRNumber)
		assert.Equal(t, "MATE-7", entries[0].TicketID)
		assert.Equal(t, []string{"soporta subsecuencias"}, entries[0].Details)
	})

	t.Run("debería fallar con JSON roto incluyendo el error", func(t *testing.T) {
		_, _, err := ParseEntries(`{"entries": [}]`)
		assert.Error(t, err)
	})
}
