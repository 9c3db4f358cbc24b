package ports

import "context"

// GitService expone las consultas de solo lectura sobre el repositorio.
// Las consultas de listado/diff degradan a valores vacíos ante errores de
// git (política de soft-failure); solo los valores imprescindibles fallan.
type GitService interface {
	CurrentBranch(ctx context.Context) (string, error)
	LocalBranches(ctx context.Context) []string
	RemoteBranches(ctx context.Context) []string
	RecentBranches(ctx context.Context, limit int) []string
	CommitCount(ctx context.Context, rang string) int
	ChangedFiles(ctx context.Context, rang string) []string
	FileDiff(ctx context.Context, rang, path string) string
	CommitSubjects(ctx context.Context, rang string) []string
	FileCommitSubjects(ctx context.Context, rang, path string) []string
	Fetch(ctx context.Context, remote string) error
	RepoInfo(ctx context.Context) (owner, repo, platform string, err error)
	RemoteURL(ctx context.Context) (string, error)
}
