package repository

import (
	"context"
	"time"

	apperrors "github.com/Platzhalten/tux/internal/errors"
	"github.com/Platzhalten/tux/internal/model"
	"github.com/Platzhalten/tux/internal/store"
	"github.com/jackc/pgx/v5"
)

// OwnerLeftGracePeriod is how long a channel is kept after its owner leaves
// before cleanup may reclaim it.
const OwnerLeftGracePeriod = 5 * time.Minute

// voiceChannelRepository implements VoiceChannelRepository using PostgreSQL
type voiceChannelRepository struct {
	store *store.Store[model.TemporaryVoiceChannel]
}

// NewVoiceChannelRepository creates a new instance of VoiceChannelRepository
func NewVoiceChannelRepository(pool store.Pool) VoiceChannelRepository {
	return &voiceChannelRepository{
		store: store.NewStore(pool, store.Mapping[model.TemporaryVoiceChannel]{
			Table:   "temporary_voice_channels",
			Columns: []string{"guild_id", "voice_channel_id", "owner_id", "owner_left_time"},
			OrderBy: "guild_id, voice_channel_id",
			Values: func(c *model.TemporaryVoiceChannel) []any {
				return []any{c.GuildID, c.VoiceChannelID, c.OwnerID, c.OwnerLeftTime}
			},
			Scan: func(row pgx.Row) (*model.TemporaryVoiceChannel, error) {
				var c model.TemporaryVoiceChannel
				if err := row.Scan(&c.GuildID, &c.VoiceChannelID, &c.OwnerID, &c.OwnerLeftTime); err != nil {
					return nil, err
				}
				return &c, nil
			},
		}),
	}
}

// GetOrCreate returns the record stored under key, creating it with ownerID when missing.
// An existing record is returned untouched regardless of ownerID. A create that
// loses a race to a concurrent insert fails with CodeConflict; callers may retry.
func (r *voiceChannelRepository) GetOrCreate(ctx context.Context, key model.ChannelKey, ownerID int64) (*model.TemporaryVoiceChannel, error) {
	existing, err := r.GetByID(ctx, key)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	return r.store.Create(ctx, &model.TemporaryVoiceChannel{
		GuildID:        key.GuildID,
		VoiceChannelID: key.VoiceChannelID,
		OwnerID:        ownerID,
	})
}

// GetByID retrieves the record stored under the composite key
func (r *voiceChannelRepository) GetByID(ctx context.Context, key model.ChannelKey) (*model.TemporaryVoiceChannel, error) {
	channel, err := r.store.FindOne(ctx, keyConds(key)...)
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return channel, nil
}

// GetByOwnerID retrieves a record owned by the given user. When the same user
// owns channels in several guilds the smallest key wins.
func (r *voiceChannelRepository) GetByOwnerID(ctx context.Context, ownerID int64) (*model.TemporaryVoiceChannel, error) {
	channel, err := r.store.FindOne(ctx, store.Eq{Column: "owner_id", Value: ownerID})
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return channel, nil
}

// ListByGuild retrieves all tracked voice channels in a guild
func (r *voiceChannelRepository) ListByGuild(ctx context.Context, guildID int64) ([]*model.TemporaryVoiceChannel, error) {
	return r.store.FindMany(ctx, store.Eq{Column: "guild_id", Value: guildID})
}

// Delete removes the record stored under key, reporting whether one existed
func (r *voiceChannelRepository) Delete(ctx context.Context, key model.ChannelKey) (bool, error) {
	return r.store.DeleteByID(ctx, keyConds(key)...)
}

// SetOwnerLeft marks whether the owner has left the channel. Marking left stamps
// the cleanup deadline at now plus the grace period; marking returned clears it.
// Returns nil when no record is stored under key; nothing is created.
func (r *voiceChannelRepository) SetOwnerLeft(ctx context.Context, key model.ChannelKey, ownerLeft bool) (*model.TemporaryVoiceChannel, error) {
	var leftAt *time.Time
	if ownerLeft {
		deadline := time.Now().UTC().Add(OwnerLeftGracePeriod)
		leftAt = &deadline
	}

	channel, err := r.store.UpdateByID(ctx, keyConds(key),
		store.Assign{Column: "owner_left_time", Value: leftAt})
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return channel, nil
}

// keyConds expands a composite key into store conditions
func keyConds(key model.ChannelKey) []store.Eq {
	return []store.Eq{
		{Column: "guild_id", Value: key.GuildID},
		{Column: "voice_channel_id", Value: key.VoiceChannelID},
	}
}
