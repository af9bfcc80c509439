package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/batthud/batthud/pkg/client"
)

func NewTransparencyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "transparency [level]",
		Short: "Get or set the overlay transparency",
		Long: `Get or set the overlay transparency level (0-100, where 100 is
fully opaque). Without an argument the current level is printed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			apiClient := client.NewClient(unixSocketPath)

			if len(args) == 0 {
				t, err := apiClient.GetTransparency()
				if err != nil {
					return fmt.Errorf("failed to get transparency: %w", err)
				}
				cmd.Println(t)
				return nil
			}

			level, err := parseIntArg(args, "transparency level")
			if err != nil {
				return err
			}

			ret, err := apiClient.SetTransparency(level)
			if err != nil {
				return fmt.Errorf("failed to set transparency: %w", err)
			}
			if ret != "" {
				logrus.Infof("overlay responded: %s", ret)
			}
			return nil
		},
	}
}
