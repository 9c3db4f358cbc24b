package selector

import (
	"context"
	"testing"

	"github.com/Tomas-vilte/MateLog/internal/config"
	"github.com/stretchr/testify/assert"
)

func newListConfig() *config.Config {
	return &config.Config{RecentBranchesLimit: 10, MaxBranchesDisplay: 10}
}

func TestBuildBranchList(t *testing.T) {
	t.Run("debería priorizar default, recientes y el resto alfabético", func(t *testing.T) {
		mockGit := new(MockGitService)
		mockGit.On("CurrentBranch").Return("feature/actual", nil)
		mockGit.On("LocalBranches").Return([]string{"zeta", "main", "feature/actual", "alfa", "hotfix-9"})
		mockGit.On("RemoteBranches").Return([]string{"origin/main", "origin/remota"})
		mockGit.On("RecentBranches", 10).Return([]string{"hotfix-9", "alfa"})

		list := BuildBranchList(context.Background(), mockGit, newListConfig())

		got := names(list.Candidates)
		assert.Equal(t, []string{"main", "hotfix-9", "alfa", "feature/actual", "remota", "zeta"}, got)

		assert.True(t, list.Candidates[0].IsDefault)
		assert.True(t, list.Candidates[1].IsRecent)
		assert.False(t, list.Candidates[0].IsRemote)
	})

	t.Run("debería preferir master sobre main cuando existe", func(t *testing.T) {
		mockGit := new(MockGitService)
		mockGit.On("CurrentBranch").Return("dev", nil)
		mockGit.On("LocalBranches").Return([]string{"master", "main", "dev"})
		mockGit.On("RemoteBranches").Return([]string{})
		mockGit.On("RecentBranches", 10).Return([]string{})

		list := BuildBranchList(context.Background(), mockGit, newListConfig())

		assert.Equal(t, "master", list.Candidates[0].Name)
		assert.True(t, list.Candidates[0].IsDefault)
	})

	t.Run("debería deduplicar conservando la primera aparición", func(t *testing.T) {
		mockGit := new(MockGitService)
		mockGit.On("CurrentBranch").Return("main", nil)
		mockGit.On("LocalBranches").Return([]string{"main", "uno"})
		mockGit.On("RemoteBranches").Return([]string{"origin/main", "origin/uno"})
		mockGit.On("RecentBranches", 10).Return([]string{"uno"})

		list := BuildBranchList(context.Background(), mockGit, newListConfig())

		got := names(list.Candidates)
		assert.Equal(t, []string{"main", "uno"}, got)
		assert.True(t, list.Candidates[1].IsRecent)
	})

	t.Run("debería ignorar entradas del reflog de branches borradas", func(t *testing.T) {
		mockGit := new(MockGitService)
		mockGit.On("CurrentBranch").Return("main", nil)
		mockGit.On("LocalBranches").Return([]string{"main"})
		mockGit.On("RemoteBranches").Return([]string{})
		mockGit.On("RecentBranches", 10).Return([]string{"borrada"})

		list := BuildBranchList(context.Background(), mockGit, newListConfig())
		assert.Equal(t, []string{"main"}, names(list.Candidates))
	})
}

func TestResolve(t *testing.T) {
	t.Run("debería devolver el nombre local tal cual", func(t *testing.T) {
		mockGit := new(MockGitService)
		mockGit.On("CurrentBranch").Return("main", nil)
		mockGit.On("LocalBranches").Return([]string{"main", "local"})
		mockGit.On("RemoteBranches").Return([]string{"origin/remota"})
		mockGit.On("RecentBranches", 10).Return([]string{})

		list := BuildBranchList(context.Background(), mockGit, newListConfig())

		assert.Equal(t, "local", list.Resolve("local"))
	})

	t.Run("debería prefijar con el remote una branch solo remota", func(t *testing.T) {
		mockGit := new(MockGitService)
		mockGit.On("CurrentBranch").Return("main", nil)
		mockGit.On("LocalBranches").Return([]string{"main"})
		mockGit.On("RemoteBranches").Return([]string{"origin/remota"})
		mockGit.On("RecentBranches", 10).Return([]string{})

		list := BuildBranchList(context.Background(), mockGit, newListConfig())

		assert.Equal(t, "origin/remota", list.Resolve("remota"))
	})
}
