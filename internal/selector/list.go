package selector

import (
	"context"
	"sort"
	"strings"

	"github.com/Tomas-vilte/MateLog/internal/config"
	"github.com/Tomas-vilte/MateLog/internal/domain/models"
	"github.com/Tomas-vilte/MateLog/internal/domain/ports"
)

// BranchList es la lista priorizada de candidatas más la info necesaria
// para resolver el nombre elegido a una referencia completa.
type BranchList struct {
	Candidates []models.BranchCandidate

	locals  map[string]bool
	remotes map[string]string // nombre corto → referencia remota completa
}

// BuildBranchList arma la lista priorizada: (1) la default master/main,
// (2) las recién visitadas según el reflog, (3) el resto alfabéticamente.
// Los nombres remotos pierden el prefijo del remote para la comparación y
// se deduplica conservando la primera aparición.
func BuildBranchList(ctx context.Context, git ports.GitService, cfg *config.Config) *BranchList {
	list := &BranchList{
		locals:  make(map[string]bool),
		remotes: make(map[string]string),
	}

	current, err := git.CurrentBranch(ctx)
	if err != nil {
		current = ""
	}

	for _, name := range git.LocalBranches(ctx) {
		list.locals[name] = true
	}
	for _, full := range git.RemoteBranches(ctx) {
		if idx := strings.Index(full, "/"); idx > 0 {
			short := full[idx+1:]
			if _, ok := list.remotes[short]; !ok {
				list.remotes[short] = full
			}
		}
	}

	exists := func(name string) bool {
		_, remote := list.remotes[name]
		return list.locals[name] || remote
	}

	seen := make(map[string]bool)
	add := func(name string, isDefault, isRecent bool) {
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		list.Candidates = append(list.Candidates, models.BranchCandidate{
			Name:      name,
			IsDefault: isDefault,
			IsRecent:  isRecent,
			IsRemote:  !list.locals[name],
		})
	}

	for _, name := range []string{"master", "main"} {
		if exists(name) {
			add(name, true, false)
			break
		}
	}

	for _, name := range git.RecentBranches(ctx, cfg.RecentBranchesLimit) {
		if name != current && exists(name) {
			add(name, false, true)
		}
	}

	var rest []string
	for name := range list.locals {
		rest = append(rest, name)
	}
	for name := range list.remotes {
		rest = append(rest, name)
	}
	sort.Strings(rest)
	for _, name := range rest {
		add(name, false, false)
	}

	return list
}

// Resolve convierte el nombre elegido en la referencia a usar en el rango:
// una branch local va tal cual, una remota lleva el prefijo del remote.
func (l *BranchList) Resolve(name string) string {
	if l.locals[name] {
		return name
	}
	if full, ok := l.remotes[name]; ok {
		return full
	}
	return name
}
