package selector

import (
	"context"
	"fmt"

	"github.com/Tomas-vilte/MateLog/internal/config"
	"github.com/Tomas-vilte/MateLog/internal/domain/ports"
	"github.com/Tomas-vilte/MateLog/internal/i18n"
	tea "github.com/charmbracelet/bubbletea"
)

// Run abre el menú interactivo y bloquea hasta que el usuario elige una
// branch o cancela. Devuelve la referencia resuelta y el flag de
// cancelación; cancelar no es un error.
func Run(ctx context.Context, git ports.GitService, cfg *config.Config, trans *i18n.Translations) (string, bool, error) {
	list := BuildBranchList(ctx, git, cfg)
	if len(list.Candidates) == 0 {
		return "", false, fmt.Errorf("%s", trans.GetMessage("generate_error_no_base", 0, nil))
	}

	program := tea.NewProgram(NewModel(list, cfg.MaxBranchesDisplay, trans))
	final, err := program.Run()
	if err != nil {
		return "", false, fmt.Errorf("error en el selector de branches: %w", err)
	}

	model := final.(Model)
	resolved, cancelled := model.Resolved()
	return resolved, cancelled, nil
}
