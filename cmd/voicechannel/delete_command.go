package voicechannel

import (
	"context"
	"fmt"
	"time"

	"github.com/Platzhalten/tux/internal/repository"
	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand(repo repository.VoiceChannelRepository) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [GUILD_ID] [CHANNEL_ID]",
		Short: "Delete a tracked voice channel record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := parseChannelKey(args[0], args[1])
			if err != nil {
				return err
			}

			// Get flags
			force, _ := cmd.Flags().GetBool("force")

			// Confirmation prompt if not forced
			if !force {
				cmd.Printf("Are you sure you want to delete the record for channel %d in guild %d? (y/N): ", key.VoiceChannelID, key.GuildID)
				var response string
				fmt.Scanln(&response)

				if response != "y" && response != "Y" && response != "yes" {
					cmd.Println("Deletion cancelled")
					return nil
				}
			}

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
			deleted, err := vcRepo.Delete(ctx, key)
			if err != nil {
				return fmt.Errorf("failed to delete voice channel: %w", err)
			}
			if !deleted {
				cmd.Printf("No temporary voice channel found for guild %d channel %d\n", key.GuildID, key.VoiceChannelID)
				return nil
			}

			cmd.Printf("Deleted temporary voice channel %d from guild %d\n", key.VoiceChannelID, key.GuildID)
			return nil
		},
	}

	// Add flags
	cmd.Flags().Bool("force", false, "Force deletion without confirmation")

	return cmd
}
