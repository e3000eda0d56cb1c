package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/prforge/prforge/internal/domain"
)

// Mock for GithubRepository - implements ALL methods from the interface
type mockGithubRepository struct{ mock.Mock }

func (m *mockGithubRepository) GetBranchSHA(ctx context.Context, branch string) (string, error) {
	args := m.Called(ctx, branch)
	return args.String(0), args.Error(1)
}

func (m *mockGithubRepository) CreateBranch(ctx context.Context, name, sha string) error {
	args := m.Called(ctx, name, sha)
	return args.Error(0)
}

func (m *mockGithubRepository) CreateBlob(ctx context.Context, content []byte) (string, error) {
	args := m.Called(ctx, content)
	return args.String(0), args.Error(1)
}

func (m *mockGithubRepository) CreateTree(
	ctx context.Context,
	baseSHA string,
	entries []domain.BlobRef,
) (string, error) {
	args := m.Called(ctx, baseSHA, entries)
	return args.String(0), args.Error(1)
}

func (m *mockGithubRepository) CreateCommit(
	ctx context.Context,
	message, branch, treeSHA, parentSHA string,
) (string, error) {
	args := m.Called(ctx, message, branch, treeSHA, parentSHA)
	return args.String(0), args.Error(1)
}

func (m *mockGithubRepository) CreatePullRequest(
	ctx context.Context,
	title, body, head, base string,
) (*domain.PullRequest, error) {
	args := m.Called(ctx, title, body, head, base)
	if pr := args.Get(0); pr != nil {
		return pr.(*domain.PullRequest), args.Error(1)
	}
	return nil, args.Error(1)
}
