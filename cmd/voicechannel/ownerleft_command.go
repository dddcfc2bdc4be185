package voicechannel

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Platzhalten/tux/internal/repository"
	"github.com/spf13/cobra"
)

// NewOwnerLeftCommand creates the owner-left command
func NewOwnerLeftCommand(repo repository.VoiceChannelRepository) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner-left [GUILD_ID] [CHANNEL_ID] [true|false]",
		Short: "Mark whether the owner has left a channel",
		Long: `Set or clear the owner-left timestamp on a tracked voice channel.

Marking the owner as left stamps the cleanup deadline (the grace period from
now); marking them as returned clears it.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseChannelKey(args[0], args[1])
			if err != nil {
				return err
			}
			ownerLeft, err := strconv.ParseBool(args[2])
			if err != nil {
				return fmt.Errorf("invalid owner-left value %q: expected true or false", args[2])
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
			channel, err := vcRepo.SetOwnerLeft(ctx, key, ownerLeft)
			if err != nil {
				return fmt.Errorf("failed to update voice channel: %w", err)
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
