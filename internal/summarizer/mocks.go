package summarizer

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockGitService implementa ports.GitService para los tests del paquete.
type MockGitService struct {
	mock.Mock
}

func (m *MockGitService) CurrentBranch(ctx context.Context) (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *MockGitService) LocalBranches(ctx context.Context) []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockGitService) RemoteBranches(ctx context.Context) []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockGitService) RecentBranches(ctx context.Context, limit int) []string {
	args := m.Called(limit)
	return args.Get(0).([]string)
}

func (m *MockGitService) CommitCount(ctx context.Context, rang string) int {
	args := m.Called(rang)
	return args.Int(0)
}

func (m *MockGitService) ChangedFiles(ctx context.Context, rang string) []string {
	args := m.Called(rang)
	return args.Get(0).([]string)
}

func (m *MockGitService) FileDiff(ctx context.Context, rang, path string) string {
	args := m.Called(rang, path)
	return args.String(0)
}

func (m *MockGitService) CommitSubjects(ctx context.Context, rang string) []string {
	args := m.Called(rang)
	return args.Get(0).([]string)
}

func (m *MockGitService) FileCommitSubjects(ctx context.Context, rang, path string) []string {
	args := m.Called(rang, path)
	return args.Get(0).([]string)
}

func (m *MockGitService) Fetch(ctx context.Context, remote string) error {
	args := m.Called(remote)
	return args.Error(0)
}

func (m *MockGitService) RepoInfo(ctx context.Context) (string, string, string, error) {
	args := m.Called()
	return args.String(0), args.String(1), args.String(2), args.Error(3)
}

func (m *MockGitService) RemoteURL(ctx context.Context) (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
