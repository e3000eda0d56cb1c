package cmd

import (
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/prforge/prforge/internal/config"
	"github.com/prforge/prforge/internal/orchestrator"
	"github.com/prforge/prforge/internal/repository"
	"github.com/prforge/prforge/pkg/logger"
)

// container holds all the dependencies for the application.

type container struct {
	cfg *config.Config
	log *zap.Logger

	fsRepo repository.FileSystemRepository
	ghRepo repository.GithubRepository
}

// newContainer creates a new container with all the dependencies.
func newContainer() (*container, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.Debug)
	if err != nil {
		return nil, err
	}

	fsRepo := repository.FileSystemRepository(afero.NewOsFs())

	// GitHub repository is only usable with full coordinates; otherwise every
	// remote operation reports a descriptive error.
	var ghRepo repository.GithubRepository
	if cfg.GithubToken != "" && cfg.GithubOwner != "" && cfg.GithubRepo != "" {
		ghRepo, err = repository.NewGithubRepository(cfg.GithubToken, cfg.GithubOwner, cfg.GithubRepo)
		if err != nil {
			return nil, err
		}
	} else {
		ghRepo = repository.NewGithubNoopRepository(cfg.GithubOwner, cfg.GithubRepo)
	}

	return &container{
		cfg:    cfg,
		log:    log,
		fsRepo: fsRepo,
		ghRepo: ghRepo,
	}, nil
}

// InitCommands initializes all commands with their dependencies
func InitCommands() error {
	c, err := newContainer()
	if err != nil {
		return err
	}

	orch := orchestrator.NewProposeOrchestrator(c.ghRepo, c.fsRepo, c.log)
	rootCmd.AddCommand(NewProposeCmd(orch, c.cfg))
	rootCmd.AddCommand(newVersionCmd())

	return nil
}
