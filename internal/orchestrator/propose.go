package orchestrator

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/prforge/prforge/internal/domain"
	"github.com/prforge/prforge/internal/repository"
	"github.com/prforge/prforge/internal/usecase"
)

// ProposeConfig contains configuration for the propose workflow.
type ProposeConfig struct {
	BaseBranch    string
	HeadBranch    string   // Generated from the title when empty
	Title         string
	Body          string
	BodyFile      string   // Read the PR body from this file when set
	CommitMessage string   // Defaults to the title
	Files         []string // Local file paths, reused as repository paths
	DryRun        bool
	CIOutput      bool
}

// ProposeOrchestrator sequences the remote calls that assemble a pull request
// from file contents: resolve the base branch, create the head branch, upload
// blobs, build a tree, commit it and open the pull request. Each call's output
// SHA feeds the next; there is no retry and no local state.
type ProposeOrchestrator struct {
	githubRepo repository.GithubRepository
	fsRepo     repository.FileSystemRepository
	log        *zap.Logger
}

// NewProposeOrchestrator creates a new propose orchestrator.
func NewProposeOrchestrator(
	githubRepo repository.GithubRepository,
	fsRepo repository.FileSystemRepository,
	log *zap.Logger,
) *ProposeOrchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProposeOrchestrator{
		githubRepo: githubRepo,
		fsRepo:     fsRepo,
		log:        log,
	}
}

// Execute runs the complete propose workflow.
func (o *ProposeOrchestrator) Execute(ctx context.Context, cfg ProposeConfig) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultProposeTimeout)
	defer cancel()

	proposal, err := o.buildProposal(cfg)
	if err != nil {
		return err
	}

	// Step 1: Resolve the base branch to its tip commit
	baseSHA, err := o.githubRepo.GetBranchSHA(ctx, proposal.BaseBranch)
	if err != nil {
		return fmt.Errorf("failed to resolve base branch: %w", err)
	}
	o.log.Info("resolved base branch",
		zap.String("branch", proposal.BaseBranch),
		zap.String("sha", baseSHA))
	o.printCIOutput(cfg.CIOutput, "base_sha=%s\n", baseSHA)
	o.printCIOutput(cfg.CIOutput, "head_branch=%s\n", proposal.HeadBranch)

	// Dry-run: stop before any remote mutation.
	if cfg.DryRun {
		o.printStatus(cfg.CIOutput, fmt.Sprintf(
			"Dry-run complete: would propose %d file(s) from %s onto %s (at %s).",
			len(proposal.Files), proposal.HeadBranch, proposal.BaseBranch, baseSHA))
		return nil
	}

	// Step 2: Branch off the base commit
	branchUC := &usecase.CreateFeatureBranchUseCase{GithubRepo: o.githubRepo}
	if err := branchUC.Execute(ctx, proposal.HeadBranch, baseSHA); err != nil {
		return err
	}
	o.log.Info("created head branch", zap.String("branch", proposal.HeadBranch))

	// Step 3: Upload blobs and assemble the tree
	stageUC := &usecase.StageChangesUseCase{GithubRepo: o.githubRepo}
	treeSHA, err := stageUC.Execute(ctx, baseSHA, proposal.Files)
	if err != nil {
		return err
	}
	o.log.Info("staged changes",
		zap.Int("files", len(proposal.Files)),
		zap.String("tree_sha", treeSHA))

	// Step 4: Commit the tree and advance the head branch
	commitSHA, err := o.githubRepo.CreateCommit(
		ctx, proposal.CommitMessage, proposal.HeadBranch, treeSHA, baseSHA)
	if err != nil {
		return fmt.Errorf("failed to create commit: %w", err)
	}
	o.log.Info("created commit", zap.String("sha", commitSHA))
	o.printCIOutput(cfg.CIOutput, "commit_sha=%s\n", commitSHA)

	// Step 5: Open the pull request
	bodyUC := &usecase.PreparePRBodyUseCase{}
	body, err := bodyUC.Execute(ctx, proposal)
	if err != nil {
		return fmt.Errorf("failed to prepare PR body: %w", err)
	}
	pr, err := o.githubRepo.CreatePullRequest(
		ctx, proposal.Title, body, proposal.HeadBranch, proposal.BaseBranch)
	if err != nil {
		return fmt.Errorf("failed to create pull request: %w", err)
	}
	o.log.Info("created pull request",
		zap.Int("number", pr.Number),
		zap.String("url", pr.URL))
	o.printCIOutput(cfg.CIOutput, "pr_number=%d\n", pr.Number)
	o.printCIOutput(cfg.CIOutput, "pr_url=%s\n", pr.URL)
	o.printStatus(cfg.CIOutput, fmt.Sprintf("✅ Opened PR #%d: %s", pr.Number, pr.URL))
	return nil
}

// buildProposal validates the configuration and reads the file contents that
// make up the proposal.
func (o *ProposeOrchestrator) buildProposal(cfg ProposeConfig) (*domain.Proposal, error) {
	if err := ValidateTitle(cfg.Title); err != nil {
		return nil, err
	}
	if err := ValidateBranchName(cfg.BaseBranch); err != nil {
		return nil, fmt.Errorf("invalid base branch: %w", err)
	}
	headBranch := cfg.HeadBranch
	if headBranch == "" {
		headBranch = fmt.Sprintf("propose/%s", strings.Split(uuid.NewString(), "-")[0])
	}
	if err := ValidateBranchName(headBranch); err != nil {
		return nil, fmt.Errorf("invalid head branch: %w", err)
	}
	if headBranch == cfg.BaseBranch {
		return nil, fmt.Errorf("head branch and base branch cannot be the same: %s", headBranch)
	}
	message := cfg.CommitMessage
	if message == "" {
		message = cfg.Title
	}
	if err := ValidateCommitMessage(message); err != nil {
		return nil, err
	}
	if len(cfg.Files) == 0 {
		return nil, fmt.Errorf("at least one file is required")
	}
	body := cfg.Body
	if cfg.BodyFile != "" {
		data, err := afero.ReadFile(o.fsRepo, cfg.BodyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read body file: %w", err)
		}
		body = string(data)
	}
	changes := make([]domain.FileChange, 0, len(cfg.Files))
	for _, file := range cfg.Files {
		repoPath := filepath.ToSlash(file)
		if err := ValidateRepoPath(repoPath); err != nil {
			return nil, err
		}
		content, err := afero.ReadFile(o.fsRepo, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}
		changes = append(changes, domain.FileChange{Path: path.Clean(repoPath), Content: content})
	}
	return &domain.Proposal{
		Title:         cfg.Title,
		Body:          body,
		BaseBranch:    cfg.BaseBranch,
		HeadBranch:    headBranch,
		CommitMessage: message,
		Files:         changes,
	}, nil
}

// printCIOutput prints output in CI format if enabled
func (o *ProposeOrchestrator) printCIOutput(ciOutput bool, format string, args ...any) {
	if ciOutput {
		fmt.Printf(format, args...)
	}
}

// printStatus prints status messages when not in CI mode
func (o *ProposeOrchestrator) printStatus(ciOutput bool, message string) {
	if !ciOutput {
		fmt.Println(message)
	}
}
