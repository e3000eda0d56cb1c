package repository

import "github.com/spf13/afero"

// FileSystemRepository defines the interface for reading the local files
// whose contents get proposed.

type FileSystemRepository interface {
	afero.Fs
}
