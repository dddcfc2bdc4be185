package voicechannel

import (
	"context"
	"fmt"

	"github.com/Platzhalten/tux/internal/config"
	"github.com/Platzhalten/tux/internal/repository"
)

// RepositoryFactory creates voice channel repository instances
type RepositoryFactory struct{}

// NewRepositoryFactory creates a new repository factory
func NewRepositoryFactory() *RepositoryFactory {
	return &RepositoryFactory{}
}

// CreateRepository creates a repository backed by the configured database
func (f *RepositoryFactory) CreateRepository(ctx context.Context) (repository.VoiceChannelRepository, func(), error) {
	// Load database configuration
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database connection
	dbPool, err := config.NewDatabasePool(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := repository.NewVoiceChannelRepository(dbPool)

	// Cleanup function
	cleanup := func() {
		dbPool.Close()
	}

	return repo, cleanup, nil
}
