package orchestrator

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

var (
	// branchNameRegex matches valid git branch names
	branchNameRegex = regexp.MustCompile(`^[a-zA-Z0-9._/-]+$`)
)

// ValidateBranchName validates a git branch name.
func ValidateBranchName(branch string) error {
	if branch == "" {
		return fmt.Errorf("branch name cannot be empty")
	}
	if len(branch) > 255 {
		return fmt.Errorf("branch name too long: %d characters (max: 255)", len(branch))
	}
	if strings.HasPrefix(branch, "/") || strings.HasSuffix(branch, "/") {
		return fmt.Errorf("branch name cannot start or end with slash: %s", branch)
	}
	if strings.Contains(branch, "..") {
		return fmt.Errorf("branch name cannot contain consecutive dots: %s", branch)
	}
	if strings.HasSuffix(branch, ".lock") {
		return fmt.Errorf("branch name cannot end with .lock: %s", branch)
	}
	if !branchNameRegex.MatchString(branch) {
		return fmt.Errorf("invalid branch name format: %s", branch)
	}
	return nil
}

// ValidateRepoPath validates a destination path inside the repository tree.
func ValidateRepoPath(p string) error {
	if p == "" {
		return fmt.Errorf("repository path cannot be empty")
	}
	if strings.HasPrefix(p, "/") {
		return fmt.Errorf("repository path must be relative: %s", p)
	}
	cleaned := path.Clean(p)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("repository path escapes the tree: %s", p)
	}
	return nil
}

// ValidateTitle validates a pull request title.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if len(title) > 256 {
		return fmt.Errorf("title too long: %d characters (max: 256)", len(title))
	}
	return nil
}

// ValidateCommitMessage validates a commit message.
func ValidateCommitMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("commit message cannot be empty")
	}
	return nil
}
