package usecase

import (
	"context"
	"fmt"

	"github.com/prforge/prforge/internal/repository"
)

// CreateFeatureBranchUseCase contains the logic for branching off the base
// commit before any changes are committed.

type CreateFeatureBranchUseCase struct {
	GithubRepo repository.GithubRepository
}

// Execute runs the use case.
func (uc *CreateFeatureBranchUseCase) Execute(ctx context.Context, branchName, fromSHA string) error {
	if err := uc.GithubRepo.CreateBranch(ctx, branchName, fromSHA); err != nil {
		return fmt.Errorf("failed to create feature branch: %w", err)
	}
	return nil
}
