package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newNamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "names <platform|service-type> <slug>",
		Short:     "Print the display name for a slug",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"platform", "service-type"},
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, _, err := loadParser(cmd)
			if err != nil {
				return err
			}

			switch args[0] {
			case "platform":
				fmt.Fprintln(cmd.OutOrStdout(), parser.PlatformDisplayName(args[1]))
			case "service-type":
				fmt.Fprintln(cmd.OutOrStdout(), parser.ServiceTypeDisplayName(args[1]))
			default:
				return fmt.Errorf("unknown kind %q: want platform or service-type", args[0])
			}
			return nil
		},
	}
}
