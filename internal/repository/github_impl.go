package repository

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/go-github/v74/github"
	"golang.org/x/oauth2"

	"github.com/prforge/prforge/internal/config"
	"github.com/prforge/prforge/internal/domain"
)

// blobFileMode is the tree mode for a regular, non-executable file.
const blobFileMode = "100644"

// githubRepository is the implementation of the GithubRepository interface.
type githubRepository struct {
	client *github.Client
	owner  string
	repo   string
}

// NewGithubRepository creates a new GithubRepository with validation.
func NewGithubRepository(token, owner, repo string) (GithubRepository, error) {
	// Validate token format using the consolidated validator from config package
	if err := config.ValidateGitHubToken(token); err != nil {
		return nil, fmt.Errorf("invalid GitHub token: %w", err)
	}
	if err := config.ValidateGitHubOwnerRepo(owner, repo); err != nil {
		return nil, fmt.Errorf("invalid repository configuration: %w", err)
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: strings.TrimSpace(token)},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	return NewGithubRepositoryWithClient(github.NewClient(tc), owner, repo), nil
}

// NewGithubRepositoryWithClient wraps an already-configured API client.
// Tests use it to point the repository at a local fake server.
func NewGithubRepositoryWithClient(client *github.Client, owner, repo string) GithubRepository {
	return &githubRepository{
		client: client,
		owner:  owner,
		repo:   repo,
	}
}

// GetBranchSHA resolves a branch name to the SHA of its tip commit.
func (r *githubRepository) GetBranchSHA(ctx context.Context, branch string) (string, error) {
	ref, _, err := r.client.Git.GetRef(ctx, r.owner, r.repo, "heads/"+branch)
	if err != nil {
		return "", fmt.Errorf("failed to resolve branch %s: %w", branch, err)
	}
	return ref.GetObject().GetSHA(), nil
}

// CreateBranch creates a new ref pointing at the given commit SHA.
func (r *githubRepository) CreateBranch(ctx context.Context, name, sha string) error {
	_, _, err := r.client.Git.CreateRef(ctx, r.owner, r.repo, &github.Reference{
		Ref:    github.Ptr("refs/heads/" + name),
		Object: &github.GitObject{SHA: github.Ptr(sha)},
	})
	if err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return nil
}

// CreateBlob uploads raw content as a blob. Content is base64-encoded for
// transport so binary files pass through unchanged.
func (r *githubRepository) CreateBlob(ctx context.Context, content []byte) (string, error) {
	blob, _, err := r.client.Git.CreateBlob(ctx, r.owner, r.repo, &github.Blob{
		Content:  github.Ptr(base64.StdEncoding.EncodeToString(content)),
		Encoding: github.Ptr("base64"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create blob: %w", err)
	}
	return blob.GetSHA(), nil
}

// CreateTree creates a tree layering the given blob/path pairs onto the tree
// of the base commit.
func (r *githubRepository) CreateTree(
	ctx context.Context,
	baseSHA string,
	entries []domain.BlobRef,
) (string, error) {
	treeEntries := make([]*github.TreeEntry, 0, len(entries))
	for _, entry := range entries {
		treeEntries = append(treeEntries, &github.TreeEntry{
			Path: github.Ptr(entry.Path),
			Mode: github.Ptr(blobFileMode),
			Type: github.Ptr("blob"),
			SHA:  github.Ptr(entry.SHA),
		})
	}
	tree, _, err := r.client.Git.CreateTree(ctx, r.owner, r.repo, baseSHA, treeEntries)
	if err != nil {
		return "", fmt.Errorf("failed to create tree: %w", err)
	}
	return tree.GetSHA(), nil
}

// CreateCommit creates a commit object and advances the branch ref to it.
// The ref update is non-force, so a branch that has moved since parentSHA
// fails with the API's non-fast-forward error.
func (r *githubRepository) CreateCommit(
	ctx context.Context,
	message, branch, treeSHA, parentSHA string,
) (string, error) {
	commit, _, err := r.client.Git.CreateCommit(ctx, r.owner, r.repo, &github.Commit{
		Message: github.Ptr(message),
		Tree:    &github.Tree{SHA: github.Ptr(treeSHA)},
		Parents: []*github.Commit{{SHA: github.Ptr(parentSHA)}},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create commit: %w", err)
	}
	_, _, err = r.client.Git.UpdateRef(ctx, r.owner, r.repo, &github.Reference{
		Ref:    github.Ptr("refs/heads/" + branch),
		Object: &github.GitObject{SHA: commit.SHA},
	}, false)
	if err != nil {
		return "", fmt.Errorf("failed to advance branch %s: %w", branch, err)
	}
	return commit.GetSHA(), nil
}

// CreatePullRequest creates a new pull request.
func (r *githubRepository) CreatePullRequest(
	ctx context.Context,
	title, body, head, base string,
) (*domain.PullRequest, error) {
	pr, _, err := r.client.PullRequests.Create(ctx, r.owner, r.repo, &github.NewPullRequest{
		Title: &title,
		Body:  &body,
		Head:  &head,
		Base:  &base,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create pull request: %w", err)
	}
	return &domain.PullRequest{
		Number: pr.GetNumber(),
		Title:  pr.GetTitle(),
		URL:    pr.GetHTMLURL(),
		Head:   head,
		Base:   base,
	}, nil
}
