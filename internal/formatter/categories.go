package formatter

import "github.com/Tomas-vilte/MateLog/internal/domain/models"

const (
	categoryBreaking = "⚠️ Breaking Changes"
	categoryOther    = "Other Changes"
)

// typeCategories es la tabla fija tipo → categoría para entradas que no
// traen categoría explícita.
var typeCategories = map[models.EntryType]string{
	models.EntryFeat:     "🚀 Features",
	models.EntryFix:      "🐛 Bug Fixes",
	models.EntryImprove:  "✨ Improvements",
	models.EntryRefactor: "♻️ Refactoring",
	models.EntryDocs:     "📚 Documentation",
	models.EntryTest:     "🧪 Tests",
}

// canonicalOrder fija el orden de las categorías conocidas. Las que no
// están acá se renderizan después, en orden de aparición.
var canonicalOrder = []string{
	"🚀 Features",
	"🐛 Bug Fixes",
	"✨ Improvements",
	"♻️ Refactoring",
	"📚 Documentation",
	"🧪 Tests",
	categoryOther,
}

// categoryOf resuelve la categoría de una entrada: campo explícito, tabla
// por tipo, o el balde de "Other Changes".
func categoryOf(entry models.ChangelogEntry) string {
	if entry.Category != "" {
		return entry.Category
	}
	if cat, ok := typeCategories[entry.Type]; ok {
		return cat
	}
	return categoryOther
}

// HasBreaking indica si alguna entrada es de tipo breaking, para la
// política de bloqueo.
func HasBreaking(entries []models.ChangelogEntry) bool {
	for _, e := range entries {
		if e.Type == models.EntryBreaking {
			return true
		}
	}
	return false
}
