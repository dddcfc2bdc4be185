package voicechannel

import (
	"context"
	"fmt"
	"time"

	"github.com/Platzhalten/tux/internal/repository"
	"github.com/spf13/cobra"
)

// NewOwnerCommand creates the owner command
func NewOwnerCommand(repo repository.VoiceChannelRepository) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner [USER_ID]",
		Short: "Find the voice channel owned by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ownerID, err := parseSnowflake("USER_ID", args[0])
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
			channel, err := vcRepo.GetByOwnerID(ctx, ownerID)
			if err != nil {
				return fmt.Errorf("failed to find voice channel by owner: %w", err)
			}
			if channel == nil {
				cmd.Printf("No temporary voice channel owned by user %d\n", ownerID)
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
