package cmd

import (
	"github.com/spf13/cobra"

	"github.com/prforge/prforge/internal/config"
	"github.com/prforge/prforge/internal/orchestrator"
)

// NewProposeCmd creates the propose command
func NewProposeCmd(orch *orchestrator.ProposeOrchestrator, cfg *config.Config) *cobra.Command {
	var (
		proposeBase     string
		proposeHead     string
		proposeTitle    string
		proposeBody     string
		proposeBodyFile string
		proposeMessage  string
		proposeDryRun   bool
		proposeCIOutput bool
	)
	cmd := &cobra.Command{
		Use:   "propose [files...]",
		Short: "Open a pull request from local file contents",
		Long: `Open a pull request built from the given files, without a local clone.

The workflow sequences the GitHub git-data calls in their required order:
- Resolves the base branch to its tip commit
- Creates the head branch from that commit
- Uploads each file as a blob
- Builds a tree layering the files onto the base
- Creates a commit and advances the head branch
- Opens the pull request

Files keep their relative paths inside the repository tree. With --dry-run
the base branch is resolved and nothing is mutated.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.ValidateForGitHubOperations(); err != nil {
				return err
			}
			base := proposeBase
			if base == "" {
				base = cfg.BaseBranch
			}
			pcfg := orchestrator.ProposeConfig{
				BaseBranch:    base,
				HeadBranch:    proposeHead,
				Title:         proposeTitle,
				Body:          proposeBody,
				BodyFile:      proposeBodyFile,
				CommitMessage: proposeMessage,
				Files:         args,
				DryRun:        proposeDryRun,
				CIOutput:      proposeCIOutput,
			}
			return orch.Execute(cmd.Context(), pcfg)
		},
	}

	cmd.Flags().StringVar(&proposeBase, "base", "", "Base branch to merge into (defaults to configured base_branch)")
	cmd.Flags().StringVar(&proposeHead, "head", "", "Head branch to create (generated when empty)")
	cmd.Flags().StringVar(&proposeTitle, "title", "", "Pull request title (required)")
	cmd.Flags().StringVar(&proposeBody, "body", "", "Pull request description")
	cmd.Flags().StringVar(&proposeBodyFile, "body-file", "", "Read the pull request description from a file")
	cmd.Flags().StringVar(&proposeMessage, "message", "", "Commit message (defaults to the title)")
	cmd.Flags().BoolVar(&proposeDryRun, "dry-run", false, "Resolve the base branch but make no changes")
	cmd.Flags().BoolVar(&proposeCIOutput, "ci-output", false, "Output in CI-friendly format")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}
