package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/prforge/prforge/internal/domain"
)

var ErrGithubTokenRequired = errors.New("github token is required for GitHub operations")

type githubNoopRepository struct {
	owner string
	repo  string
}

func NewGithubNoopRepository(owner, repo string) GithubRepository {
	return &githubNoopRepository{owner: owner, repo: repo}
}

func (r *githubNoopRepository) GetBranchSHA(_ context.Context, _ string) (string, error) {
	return "", r.operationError("resolve branch")
}

func (r *githubNoopRepository) CreateBranch(_ context.Context, _, _ string) error {
	return r.operationError("create branch")
}

func (r *githubNoopRepository) CreateBlob(_ context.Context, _ []byte) (string, error) {
	return "", r.operationError("create blob")
}

func (r *githubNoopRepository) CreateTree(
	_ context.Context,
	_ string,
	_ []domain.BlobRef,
) (string, error) {
	return "", r.operationError("create tree")
}

func (r *githubNoopRepository) CreateCommit(
	_ context.Context,
	_, _, _, _ string,
) (string, error) {
	return "", r.operationError("create commit")
}

func (r *githubNoopRepository) CreatePullRequest(
	_ context.Context,
	_, _, _, _ string,
) (*domain.PullRequest, error) {
	return nil, r.operationError("create pull request")
}

func (r *githubNoopRepository) operationError(action string) error {
	return fmt.Errorf("%w: unable to %s for %s/%s", ErrGithubTokenRequired, action, r.owner, r.repo)
}
