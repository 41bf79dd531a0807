package main

import (
	"github.com/spf13/cobra"

	"quickorder/internal/tui"
)

func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Interactive live preview that re-parses as you type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, threshold, err := loadParser(cmd)
			if err != nil {
				return err
			}
			return tui.Run(parser, threshold)
		},
	}
}
