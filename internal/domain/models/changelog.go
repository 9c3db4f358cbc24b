package models

type (
	// ChangelogEntry es una entrada tipada del changelog, producida por la IA
	// e inmutable una vez parseada.
	ChangelogEntry struct {
		Type        EntryType `json:"type"`
		Category    string    `json:"category,omitempty"`
		Scope       string    `json:"scope,omitempty"`
		Description string    `json:"description"`
		PRNumber    string    `json:"prNumber,omitempty"`
		TicketID    string    `json:"ticketId,omitempty"`
		Details     []string  `json:"details,omitempty"`
	}

	EntryType string

	// EntryList es la forma exacta que tiene que devolver el modelo
	EntryList struct {
		Entries []ChangelogEntry `json:"entries"`
	}
)

const (
	EntryFeat     EntryType = "feat"
	EntryFix      EntryType = "fix"
	EntryBreaking EntryType = "breaking"
	EntryImprove  EntryType = "improve"
	EntryRefactor EntryType = "refactor"
	EntryDocs     EntryType = "docs"
	EntryTest     EntryType = "test"
)

// KnownEntryTypes lista los siete tipos que la IA puede emitir.
func KnownEntryTypes() []EntryType {
	return []EntryType{
		EntryFeat,
		EntryFix,
		EntryBreaking,
		EntryImprove,
		EntryRefactor,
		EntryDocs,
		EntryTest,
	}
}

// IsKnown indica si el tipo es uno de los enumerados. Entradas con tipos
// desconocidos no se descartan: el formatter las agrupa en "Other Changes".
func (t EntryType) IsKnown() bool {
	for _, k := range KnownEntryTypes() {
		if t == k {
			return true
		}
	}
	return false
}
