package usecase

import (
	"context"
	"fmt"

	"github.com/prforge/prforge/internal/domain"
	"github.com/prforge/prforge/internal/repository"
)

// StageChangesUseCase uploads file contents as blobs and assembles them into
// a tree layered on the base commit.

type StageChangesUseCase struct {
	GithubRepo repository.GithubRepository
}

// Execute runs the use case and returns the SHA of the created tree.
func (uc *StageChangesUseCase) Execute(
	ctx context.Context,
	baseSHA string,
	changes []domain.FileChange,
) (string, error) {
	if len(changes) == 0 {
		return "", fmt.Errorf("no file changes to stage")
	}
	refs := make([]domain.BlobRef, 0, len(changes))
	for _, change := range changes {
		sha, err := uc.GithubRepo.CreateBlob(ctx, change.Content)
		if err != nil {
			return "", fmt.Errorf("failed to create blob for %s: %w", change.Path, err)
		}
		refs = append(refs, domain.BlobRef{SHA: sha, Path: change.Path})
	}
	treeSHA, err := uc.GithubRepo.CreateTree(ctx, baseSHA, refs)
	if err != nil {
		return "", fmt.Errorf("failed to create tree: %w", err)
	}
	return treeSHA, nil
}
