package domain

// Proposal holds all metadata for a pull request assembled from file contents.

type Proposal struct {
	Title         string
	Body          string
	BaseBranch    string
	HeadBranch    string
	CommitMessage string
	Files         []FileChange
}

// PullRequest identifies a pull request created on the remote.
type PullRequest struct {
	Number int
	Title  string
	URL    string
	Head   string
	Base   string
}
