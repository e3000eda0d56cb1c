package repository

import (
	"context"

	"github.com/prforge/prforge/internal/domain"
)

// GithubRepository defines the interface for the GitHub git-data and pull
// request operations needed to assemble a pull request remotely. Each call is
// a single synchronous request/response round trip; SHAs returned by one call
// are passed by the caller into the next.

type GithubRepository interface {
	// GetBranchSHA resolves a branch name to the SHA of its tip commit.
	GetBranchSHA(ctx context.Context, branch string) (string, error)
	// CreateBranch creates a new branch ref pointing at the given commit SHA.
	CreateBranch(ctx context.Context, name, sha string) error
	// CreateBlob uploads raw content and returns the SHA of the stored blob.
	CreateBlob(ctx context.Context, content []byte) (string, error)
	// CreateTree layers the given blob/path pairs onto the tree of baseSHA
	// and returns the SHA of the resulting tree.
	CreateTree(ctx context.Context, baseSHA string, entries []domain.BlobRef) (string, error)
	// CreateCommit creates a commit for treeSHA with parentSHA as parent and
	// advances the branch ref to it. Returns the new commit SHA.
	CreateCommit(ctx context.Context, message, branch, treeSHA, parentSHA string) (string, error)
	// CreatePullRequest opens a pull request from head into base.
	CreatePullRequest(ctx context.Context, title, body, head, base string) (*domain.PullRequest, error)
}
