package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"quickorder/internal/config"
	"quickorder/internal/intent"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <text...>",
		Short: "Parse an order and print the extracted fields",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, threshold, err := loadParser(cmd)
			if err != nil {
				return err
			}

			order := parser.Parse(strings.Join(args, " "))
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), order)
			}
			writeOrder(cmd.OutOrStdout(), parser, order, threshold)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

// loadParser builds the parser from --keywords (or KEYWORDS_FILE) and
// resolves the preview threshold. An explicit --threshold, including 0,
// overrides PREVIEW_THRESHOLD.
func loadParser(cmd *cobra.Command) (*intent.Parser, int, error) {
	cfg := config.Load()

	path, _ := cmd.Flags().GetString("keywords")
	if path == "" {
		path = cfg.KeywordsFile
	}
	parser, err := config.BuildParser(path)
	if err != nil {
		return nil, 0, fmt.Errorf("loading keywords: %w", err)
	}

	threshold := cfg.PreviewThreshold
	if cmd.Flags().Changed("threshold") {
		threshold, _ = cmd.Flags().GetInt("threshold")
	}
	return parser, threshold, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeOrder(w io.Writer, parser *intent.Parser, order intent.ParsedOrder, threshold int) {
	show := func(label, value string) {
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(w, "%-10s %s\n", label+":", value)
	}

	quantity := ""
	if order.HasQuantity() {
		quantity = fmt.Sprintf("%d", order.QuantityValue())
	}
	platform := ""
	if order.HasPlatform() {
		platform = fmt.Sprintf("%s (%s)", parser.PlatformDisplayName(string(order.Platform)), order.Platform)
	}
	serviceType := ""
	if order.HasServiceType() {
		serviceType = fmt.Sprintf("%s (%s)", parser.ServiceTypeDisplayName(string(order.ServiceType)), order.ServiceType)
	}

	show("Quantity", quantity)
	show("Platform", platform)
	show("Service", serviceType)
	show("Target", order.Target)
	show("Match", fmt.Sprintf("%d%%", order.MatchPercentage))
	show("Ready", fmt.Sprintf("%t", parser.Ready(order, threshold)))
}
