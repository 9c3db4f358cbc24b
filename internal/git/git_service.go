package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Tomas-vilte/MateLog/internal/domain/ports"
	"github.com/Tomas-vilte/MateLog/internal/logger"
)

var _ ports.GitService = (*GitService)(nil)

// GitService envuelve los subcomandos de lectura de git. Las consultas de
// listado y diff degradan a valores vacíos cuando git falla (por ejemplo,
// sin upstream configurado); el error se loguea en nivel debug para no
// enmascarar una mala configuración real.
type GitService struct {
	recentCache []string
}

func NewGitService() *GitService {
	return &GitService{}
}

func (s *GitService) run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// runSoft ejecuta un subcomando tolerando el error: devuelve vacío y deja
// registro en debug.
func (s *GitService) runSoft(ctx context.Context, args ...string) string {
	output, err := s.run(ctx, args...)
	if err != nil {
		logger.Debug(ctx, "comando de git falló, se degrada a vacío",
			"args", strings.Join(args, " "), "error", err.Error())
		return ""
	}
	return output
}

func splitLines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func (s *GitService) CurrentBranch(ctx context.Context) (string, error) {
	output, err := s.run(ctx, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("error al obtener el nombre de la branch: %w", err)
	}

	branchName := strings.TrimSpace(output)
	if branchName == "" {
		return "", fmt.Errorf("no se pudo detectar el nombre de la branch")
	}

	return branchName, nil
}

func (s *GitService) LocalBranches(ctx context.Context) []string {
	return splitLines(s.runSoft(ctx, "branch", "--format=%(refname:short)"))
}

// RemoteBranches devuelve los nombres cortos remotos (ej: origin/feature),
// filtrando el puntero HEAD simbólico.
func (s *GitService) RemoteBranches(ctx context.Context) []string {
	lines := splitLines(s.runSoft(ctx, "branch", "-r", "--format=%(refname:short)"))

	branches := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(line, "HEAD") {
			continue
		}
		branches = append(branches, line)
	}
	return branches
}

// RecentBranches devuelve las últimas branches visitadas según el reflog,
// excluyendo la actual. El resultado se memoiza por sesión: el reflog no
// cambia durante una corrida.
func (s *GitService) RecentBranches(ctx context.Context, limit int) []string {
	if s.recentCache != nil {
		if len(s.recentCache) > limit {
			return s.recentCache[:limit]
		}
		return s.recentCache
	}

	current, err := s.CurrentBranch(ctx)
	if err != nil {
		current = ""
	}

	output := s.runSoft(ctx, "reflog", "--format=%gs", "-n", "200")
	recent := parseReflogCheckouts(splitLines(output), current, limit)

	s.recentCache = recent
	return recent
}

// parseReflogCheckouts extrae los destinos de las entradas
// "checkout: moving from X to Y", deduplicados en orden de recencia.
func parseReflogCheckouts(lines []string, current string, limit int) []string {
	const marker = "checkout: moving from "

	recent := make([]string, 0, limit)
	seen := make(map[string]bool)

	for _, line := range lines {
		if !strings.HasPrefix(line, marker) {
			continue
		}
		rest := strings.TrimPrefix(line, marker)
		parts := strings.Split(rest, " to ")
		if len(parts) != 2 {
			continue
		}

		target := strings.TrimSpace(parts[1])
		if target == "" || target == current || seen[target] {
			continue
		}
		// los checkouts a commits sueltos no son branches
		if len(target) == 40 && !strings.ContainsAny(target, "ghijklmnopqrstuvwxyz-_/") {
			continue
		}

		seen[target] = true
		recent = append(recent, target)
		if len(recent) >= limit {
			break
		}
	}

	return recent
}

func (s *GitService) CommitCount(ctx context.Context, rang string) int {
	output := strings.TrimSpace(s.runSoft(ctx, "rev-list", "--count", rang))
	if output == "" {
		return 0
	}

	count := 0
	if _, err := fmt.Sscanf(output, "%d", &count); err != nil {
		return 0
	}
	return count
}

func (s *GitService) ChangedFiles(ctx context.Context, rang string) []string {
	return splitLines(s.runSoft(ctx, "diff", "--name-only", rang))
}

func (s *GitService) FileDiff(ctx context.Context, rang, path string) string {
	return s.runSoft(ctx, "diff", rang, "--", path)
}

func (s *GitService) CommitSubjects(ctx context.Context, rang string) []string {
	return splitLines(s.runSoft(ctx, "log", "--format=%s", rang))
}

func (s *GitService) FileCommitSubjects(ctx context.Context, rang, path string) []string {
	return splitLines(s.runSoft(ctx, "log", "--format=%s", rang, "--", path))
}

// Fetch es la única operación con efecto sobre el repo (actualiza refs
// remotas). Falla en soft: sin red, el selector trabaja con lo local.
func (s *GitService) Fetch(ctx context.Context, remote string) error {
	if _, err := s.run(ctx, "fetch", remote, "--quiet"); err != nil {
		logger.Debug(ctx, "git fetch falló, se sigue con las refs locales", "remote", remote, "error", err.Error())
		return err
	}
	return nil
}

func (s *GitService) RemoteURL(ctx context.Context) (string, error) {
	output, err := s.run(ctx, "remote", "get-url", "origin")
	if err != nil {
		return "", fmt.Errorf("error al obtener la URL del repositorio: %w", err)
	}
	return strings.TrimSpace(output), nil
}

func (s *GitService) RepoInfo(ctx context.Context) (string, string, string, error) {
	url, err := s.RemoteURL(ctx)
	if err != nil {
		return "", "", "", err
	}
	return parseRepoURL(url)
}
