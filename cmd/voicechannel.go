package cmd

import (
	"github.com/Platzhalten/tux/cmd/voicechannel"
)

func init() {
	// Subcommands create their repository on demand via the factory
	rootCmd.AddCommand(voicechannel.NewVoiceChannelCommand(nil))
}
