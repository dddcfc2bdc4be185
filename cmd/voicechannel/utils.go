package voicechannel

import (
	"fmt"
	"strconv"

	"github.com/Platzhalten/tux/internal/model"
)

// parseSnowflake parses a Discord snowflake ID argument
func parseSnowflake(name, value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be a numeric Discord ID", name, value)
	}
	return id, nil
}

// parseChannelKey parses guild and channel ID arguments into a composite key
func parseChannelKey(guildArg, channelArg string) (model.ChannelKey, error) {
	guildID, err := parseSnowflake("GUILD_ID", guildArg)
	if err != nil {
		return model.ChannelKey{}, err
	}

	channelID, err := parseSnowflake("CHANNEL_ID", channelArg)
	if err != nil {
		return model.ChannelKey{}, err
	}

	return model.ChannelKey{GuildID: guildID, VoiceChannelID: channelID}, nil
}
