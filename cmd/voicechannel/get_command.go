package voicechannel

import (
	"context"
	"fmt"
	"time"

	"github.com/Platzhalten/tux/internal/repository"
	"github.com/spf13/cobra"
)

// NewGetCommand creates the get command
func NewGetCommand(repo repository.VoiceChannelRepository) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [GUILD_ID] [CHANNEL_ID]",
		Short: "Get a tracked voice channel",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseChannelKey(args[0], args[1])
			if err != nil {
				return err
			}

			// Get flags
			format, _ := cmd.Flags().GetString("format")

			// Use provided repository if available (for testing), otherwise create real one
			var vcRepo repository.VoiceChannelRepository
			var cleanup func()

			if repo != nil {
				vcRepo = repo
			} else {
				// Create repository using factory
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				factory := NewRepositoryFactory()
				var err error
				vcRepo, cleanup, err = factory.CreateRepository(ctx)
				if err != nil {
					return fmt.Errorf("failed to create repository: %w", err)
				}
				defer cleanup()
			}

			ctx := context.Background()
			channel, err := vcRepo.GetByID(ctx, key)
			if err != nil {
				return fmt.Errorf("failed to get voice channel: %w", err)
			}
			if channel == nil {
				cmd.Printf("No temporary voice channel found for guild %d channel %d\n", key.GuildID, key.VoiceChannelID)
				return nil
			}

			formatter, err := GetFormatter(format)
			if err != nil {
				return err
			}
			output, err := formatter.Format(channel)
			if err != nil {
				return err
			}
			cmd.Println(output)

			return nil
		},
	}

	// Add flags
	cmd.Flags().String("format", "text", "Output format (text, json)")

	return cmd
}
