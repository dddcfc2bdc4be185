//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Platzhalten/tux/internal/model"
	"github.com/Platzhalten/tux/internal/repository/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVoiceChannelRepository_Integration tests the repository with real PostgreSQL
func TestVoiceChannelRepository_Integration(t *testing.T) {
	// Setup real PostgreSQL using testcontainers
	pool := common.SetupTestDB(t)

	// Create repository with real connection pool
	repo := NewVoiceChannelRepository(pool)

	// Test data
	key := model.ChannelKey{GuildID: 100200300, VoiceChannelID: 400500600}
	ownerID := int64(700800900)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	t.Run("GetOrCreate creates record", func(t *testing.T) {
		created, err := repo.GetOrCreate(ctx, key, ownerID)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, key, created.Key())
		assert.Equal(t, ownerID, created.OwnerID)
		assert.Nil(t, created.OwnerLeftTime)
	})

	t.Run("GetOrCreate returns existing record", func(t *testing.T) {
		// A second caller must not steal ownership
		existing, err := repo.GetOrCreate(ctx, key, 111)
		require.NoError(t, err)
		require.NotNil(t, existing)
		assert.Equal(t, ownerID, existing.OwnerID)
	})

	t.Run("GetByID", func(t *testing.T) {
		retrieved, err := repo.GetByID(ctx, key)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Equal(t, key, retrieved.Key())
		assert.Equal(t, ownerID, retrieved.OwnerID)
	})

	t.Run("GetByID returns nil for unknown key", func(t *testing.T) {
		retrieved, err := repo.GetByID(ctx, model.ChannelKey{GuildID: 1, VoiceChannelID: 2})
		require.NoError(t, err)
		assert.Nil(t, retrieved)
	})

	t.Run("GetByOwnerID", func(t *testing.T) {
		retrieved, err := repo.GetByOwnerID(ctx, ownerID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Equal(t, key, retrieved.Key())
	})

	t.Run("GetByOwnerID returns nil for unknown owner", func(t *testing.T) {
		retrieved, err := repo.GetByOwnerID(ctx, 424242)
		require.NoError(t, err)
		assert.Nil(t, retrieved)
	})

	t.Run("GetByOwnerID prefers the smallest key", func(t *testing.T) {
		// Same owner tracked in a second guild with a smaller guild ID
		smaller := model.ChannelKey{GuildID: 50, VoiceChannelID: 400500601}
		_, err := repo.GetOrCreate(ctx, smaller, ownerID)
		require.NoError(t, err)

		retrieved, err := repo.GetByOwnerID(ctx, ownerID)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		assert.Equal(t, smaller, retrieved.Key())

		// Remove the extra record so later subtests see a single channel
		deleted, err := repo.Delete(ctx, smaller)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("ListByGuild", func(t *testing.T) {
		second := model.ChannelKey{GuildID: key.GuildID, VoiceChannelID: 400500602}
		_, err := repo.GetOrCreate(ctx, second, 222)
		require.NoError(t, err)

		channels, err := repo.ListByGuild(ctx, key.GuildID)
		require.NoError(t, err)
		require.Len(t, channels, 2)
		assert.Equal(t, key, channels[0].Key())
		assert.Equal(t, second, channels[1].Key())

		deleted, err := repo.Delete(ctx, second)
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("SetOwnerLeft marks departure", func(t *testing.T) {
		updated, err := repo.SetOwnerLeft(ctx, key, true)
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.NotNil(t, updated.OwnerLeftTime)
		assert.WithinDuration(t, time.Now().UTC().Add(OwnerLeftGracePeriod), *updated.OwnerLeftTime, 10*time.Second)

		// The deadline must survive a round trip
		retrieved, err := repo.GetByID(ctx, key)
		require.NoError(t, err)
		require.NotNil(t, retrieved)
		require.NotNil(t, retrieved.OwnerLeftTime)
		assert.WithinDuration(t, *updated.OwnerLeftTime, *retrieved.OwnerLeftTime, time.Second)
	})

	t.Run("SetOwnerLeft clears departure", func(t *testing.T) {
		updated, err := repo.SetOwnerLeft(ctx, key, false)
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Nil(t, updated.OwnerLeftTime)
	})

	t.Run("SetOwnerLeft returns nil for unknown key", func(t *testing.T) {
		unknown := model.ChannelKey{GuildID: 77, VoiceChannelID: 88}
		updated, err := repo.SetOwnerLeft(ctx, unknown, true)
		require.NoError(t, err)
		assert.Nil(t, updated)

		// The miss must not have created a record
		retrieved, err := repo.GetByID(ctx, unknown)
		require.NoError(t, err)
		assert.Nil(t, retrieved)
	})

	t.Run("Delete", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, key)
		require.NoError(t, err)
		assert.True(t, deleted)

		// Verify deletion
		retrieved, err := repo.GetByID(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, retrieved)
	})

	t.Run("Delete missing record reports false", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, key)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
