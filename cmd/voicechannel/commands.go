package voicechannel

import (
	"github.com/Platzhalten/tux/internal/repository"
	"github.com/spf13/cobra"
)

// NewVoiceChannelCommand creates the main vc command
func NewVoiceChannelCommand(repo repository.VoiceChannelRepository) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vc",
		Short: "Manage temporary voice channel records",
		Long:  `Track, inspect, and delete the temporary voice channel records used for cleanup.`,
	}

	// Add subcommands
	cmd.AddCommand(NewTrackCommand(repo))
	cmd.AddCommand(NewGetCommand(repo))
	cmd.AddCommand(NewOwnerCommand(repo))
	cmd.AddCommand(NewListCommand(repo))
	cmd.AddCommand(NewOwnerLeftCommand(repo))
	cmd.AddCommand(NewDeleteCommand(repo))

	return cmd
}
