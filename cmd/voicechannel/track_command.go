package voicechannel

import (
	"context"
	"fmt"
	"time"

	"github.com/Platzhalten/tux/internal/repository"
	"github.com/spf13/cobra"
)

// NewTrackCommand creates the track command
func NewTrackCommand(repo repository.VoiceChannelRepository) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track [GUILD_ID] [CHANNEL_ID] [OWNER_ID]",
		Short: "Track a voice channel as temporary",
		Long:  `Record a voice channel as temporary. If the channel is already tracked, the existing record is returned unchanged.`,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseChannelKey(args[0], args[1])
			if err != nil {
				return err
			}
			ownerID, err := parseSnowflake("OWNER_ID", args[2])
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
			channel, err := vcRepo.GetOrCreate(ctx, key, ownerID)
			if err != nil {
				return fmt.Errorf("failed to track voice channel: %w", err)
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
