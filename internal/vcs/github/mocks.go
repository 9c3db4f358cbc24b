package github

import (
	"context"

	"github.com/google/go-github/v80/github"
	"github.com/stretchr/testify/mock"
)

type MockPullRequestsService struct {
	mock.Mock
}

func (m *MockPullRequestsService) Get(ctx context.Context, owner, repo string, number int) (*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, number)
	var pr *github.PullRequest
	if args.Get(0) != nil {
		pr = args.Get(0).(*github.PullRequest)
	}
	var resp *github.Response
	if args.Get(1) != nil {
		resp = args.Get(1).(*github.Response)
	}
	return pr, resp, args.Error(2)
}
