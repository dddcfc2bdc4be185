package voicechannel

import (
	"testing"
	"time"

	"github.com/Platzhalten/tux/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextFormatter(t *testing.T) {
	formatter := &TextFormatter{}

	t.Run("owner present", func(t *testing.T) {
		channel := &model.TemporaryVoiceChannel{
			GuildID:        100200300,
			VoiceChannelID: 400500600,
			OwnerID:        700800900,
		}

		output, err := formatter.Format(channel)
		require.NoError(t, err)

		assert.Contains(t, output, "Guild ID: 100200300")
		assert.Contains(t, output, "Channel ID: 400500600")
		assert.Contains(t, output, "Owner ID: 700800900")
		assert.Contains(t, output, "Owner Left: -")
	})

	t.Run("owner left", func(t *testing.T) {
		leftTime := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
		channel := &model.TemporaryVoiceChannel{
			GuildID:        100200300,
			VoiceChannelID: 400500600,
			OwnerID:        700800900,
			OwnerLeftTime:  &leftTime,
		}

		output, err := formatter.Format(channel)
		require.NoError(t, err)

		assert.Contains(t, output, "Owner Left: 2026-03-14 10:30:00")
	})
}

func TestJSONFormatter(t *testing.T) {
	formatter := &JSONFormatter{}

	leftTime := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	channel := &model.TemporaryVoiceChannel{
		GuildID:        100200300,
		VoiceChannelID: 400500600,
		OwnerID:        700800900,
		OwnerLeftTime:  &leftTime,
	}

	output, err := formatter.Format(channel)
	require.NoError(t, err)

	assert.Contains(t, output, `"guild_id": 100200300`)
	assert.Contains(t, output, `"voice_channel_id": 400500600`)
	assert.Contains(t, output, `"owner_id": 700800900`)
	assert.Contains(t, output, `"owner_left_time": "2026-03-14T10:30:00Z"`)
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"text", false},
		{"txt", false},
		{"json", false},
		{"TEXT", false},
		{"invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			formatter, err := GetFormatter(tt.format)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.NotNil(t, formatter)
			}
		})
	}
}

func TestFormatOwnerLeft(t *testing.T) {
	assert.Equal(t, "-", formatOwnerLeft(nil))

	leftTime := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-14 10:30:00", formatOwnerLeft(&leftTime))
}
