package ports

import (
	"context"

	"github.com/Tomas-vilte/MateLog/internal/domain/models"
)

// EntryGenerator es el colaborador externo de IA: recibe el payload de
// texto y devuelve las entradas tipadas. Una sola llamada por corrida,
// sin reintentos.
type EntryGenerator interface {
	GenerateEntries(ctx context.Context, summary *models.RangeSummary) ([]models.ChangelogEntry, error)
}
