package model

import "time"

// TemporaryVoiceChannel represents a user-created voice channel tracked for cleanup
type TemporaryVoiceChannel struct {
	GuildID        int64      `json:"guild_id" db:"guild_id"`
	VoiceChannelID int64      `json:"voice_channel_id" db:"voice_channel_id"`
	OwnerID        int64      `json:"owner_id" db:"owner_id"`
	OwnerLeftTime  *time.Time `json:"owner_left_time" db:"owner_left_time"` // nil while the owner is present
}

// ChannelKey identifies a temporary voice channel within a guild
type ChannelKey struct {
	GuildID        int64 `json:"guild_id"`
	VoiceChannelID int64 `json:"voice_channel_id"`
}

// Key returns the composite key the record is stored under
func (c *TemporaryVoiceChannel) Key() ChannelKey {
	return ChannelKey{
		GuildID:        c.GuildID,
		VoiceChannelID: c.VoiceChannelID,
	}
}
