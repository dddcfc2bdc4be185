package voicechannel

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Platzhalten/tux/internal/repository"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command
func NewListCommand(repo repository.VoiceChannelRepository) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [GUILD_ID]",
		Short: "List all tracked voice channels in a guild",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			guildID, err := parseSnowflake("GUILD_ID", args[0])
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
			channels, err := vcRepo.ListByGuild(ctx, guildID)
			if err != nil {
				return fmt.Errorf("failed to list voice channels: %w", err)
			}

			if len(channels) == 0 {
				cmd.Println("No temporary voice channels found in guild", guildID)
				return nil
			}

			if format == "json" {
				output, err := json.MarshalIndent(channels, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to format as JSON: %w", err)
				}
				cmd.Println(string(output))
				return nil
			}

			// Display channels
			cmd.Printf("Temporary voice channels in guild %d:\n\n", guildID)
			for _, channel := range channels {
				cmd.Printf("Channel ID: %d\n", channel.VoiceChannelID)
				cmd.Printf("Owner ID: %d\n", channel.OwnerID)
				cmd.Printf("Owner Left: %s\n", formatOwnerLeft(channel.OwnerLeftTime))
				cmd.Println("---")
			}

			return nil
		},
	}

	// Add flags
	cmd.Flags().String("format", "text", "Output format (text, json)")

	return cmd
}
