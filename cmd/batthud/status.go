package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/batthud/batthud/pkg/client"
	"github.com/batthud/batthud/pkg/hud"
)

func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show what the overlay is currently displaying",
		Long:  `Query the running overlay for its battery reading and transparency.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			apiClient := client.NewClient(unixSocketPath)

			snap, err := apiClient.GetStatus()
			if err != nil {
				return fmt.Errorf("failed to get overlay status: %w", err)
			}

			t, err := apiClient.GetTransparency()
			if err != nil {
				return fmt.Errorf("failed to get transparency: %w", err)
			}

			cmd.Println(bold("Battery:"))
			if snap.Unknown {
				cmd.Println("  No usable battery reading; the overlay shows " + snap.Text)
			} else {
				cmd.Printf("  Charge: %s\n", colorizeLevel(snap.Level, fmt.Sprintf("%d%%", snap.Percent)))
				if snap.Charging {
					cmd.Println("  State: charging")
				} else {
					cmd.Printf("  State: discharging, %s remaining\n", formatRemaining(snap.RemainingSeconds))
				}
				cmd.Printf("  Level: %s\n", colorizeLevel(snap.Level, snap.Level))
			}

			cmd.Println(bold("Overlay:"))
			cmd.Printf("  Text: %s\n", snap.Text)
			cmd.Printf("  Transparency: %d%% (opacity %.2f)\n", 100-t, hud.Opacity(t))

			return nil
		},
	}
}

func formatRemaining(seconds int) string {
	return fmt.Sprintf("%dh %02dm", seconds/3600, seconds/60%60)
}
