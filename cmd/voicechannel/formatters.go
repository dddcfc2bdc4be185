package voicechannel

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Platzhalten/tux/internal/model"
)

// Formatter defines interface for output formatting
type Formatter interface {
	Format(channel *model.TemporaryVoiceChannel) (string, error)
}

// TextFormatter formats output as plain text
type TextFormatter struct{}

// Format formats a voice channel record as plain text
func (f *TextFormatter) Format(channel *model.TemporaryVoiceChannel) (string, error) {
	var output strings.Builder

	output.WriteString(fmt.Sprintf("Guild ID: %d\n", channel.GuildID))
	output.WriteString(fmt.Sprintf("Channel ID: %d\n", channel.VoiceChannelID))
	output.WriteString(fmt.Sprintf("Owner ID: %d\n", channel.OwnerID))
	output.WriteString(fmt.Sprintf("Owner Left: %s", formatOwnerLeft(channel.OwnerLeftTime)))

	return output.String(), nil
}

// JSONFormatter formats output as JSON
type JSONFormatter struct{}

// Format formats a voice channel record as JSON
func (f *JSONFormatter) Format(channel *model.TemporaryVoiceChannel) (string, error) {
	jsonBytes, err := json.MarshalIndent(channel, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}

	return string(jsonBytes), nil
}

// GetFormatter returns the appropriate formatter based on format string
func GetFormatter(format string) (Formatter, error) {
	switch strings.ToLower(format) {
	case "text", "txt":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// formatOwnerLeft renders the cleanup deadline, "-" while the owner is present
func formatOwnerLeft(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02 15:04:05")
}
