package repository

import (
	"context"

	"github.com/Platzhalten/tux/internal/model"
)

// VoiceChannelRepository defines operations for temporary voice channel persistence.
// Lookups return (nil, nil) when no record matches; errors are reserved for
// storage failures.
type VoiceChannelRepository interface {
	// GetOrCreate returns the record stored under key, creating it with ownerID when missing
	GetOrCreate(ctx context.Context, key model.ChannelKey, ownerID int64) (*model.TemporaryVoiceChannel, error)

	// GetByID retrieves the record stored under the composite key
	GetByID(ctx context.Context, key model.ChannelKey) (*model.TemporaryVoiceChannel, error)

	// GetByOwnerID retrieves a record owned by the given user
	GetByOwnerID(ctx context.Context, ownerID int64) (*model.TemporaryVoiceChannel, error)

	// ListByGuild retrieves all tracked voice channels in a guild
	ListByGuild(ctx context.Context, guildID int64) ([]*model.TemporaryVoiceChannel, error)

	// Delete removes the record stored under key, reporting whether one existed
	Delete(ctx context.Context, key model.ChannelKey) (bool, error)

	// SetOwnerLeft marks whether the owner has left the channel
	SetOwnerLeft(ctx context.Context, key model.ChannelKey, ownerLeft bool) (*model.TemporaryVoiceChannel, error)
}
