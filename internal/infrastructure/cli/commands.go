package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/unitconv/internal/domain"
	"github.com/doeshing/unitconv/internal/pkg/numfmt"
)

// newHistoryCommand creates the history command with all subcommands
func newHistoryCommand(s *session) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the conversion history",
		Args:  usageArgs(cobra.NoArgs),
	}

	historyCmd.AddCommand(
		newHistoryListCommand(s),
		newHistoryClearCommand(s),
		newHistoryExportCommand(s),
	)
	return historyCmd
}

func newHistoryListCommand(s *session) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent conversions, oldest first",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.load(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			entries := c.HistoryStore.Entries()
			if len(entries) == 0 {
				fmt.Fprintln(out, msgNoHistory)
				return nil
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}
			RenderHistory(out, entries, s.opts.Location, s.opts.Clock())
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistoryLimit, "Max entries to show (0 for all)")
	return cmd
}

func newHistoryClearCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the conversion history",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.load(cmd.Context())
			if err != nil {
				return err
			}
			if err := c.HistoryStore.Clear(); err != nil {
				return WrapExitError(ExitFailure, "failed to clear history", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared!")
			return nil
		},
	}
}

func newHistoryExportCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "export [path]",
		Short: "Export the conversion history to CSV",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.load(cmd.Context())
			if err != nil {
				return err
			}
			path := c.Config.History.CSVFile
			if len(args) == 1 {
				path = args[0]
			}
			if err := c.HistoryStore.ExportCSV(path); err != nil {
				return WrapExitError(ExitFailure, fmt.Sprintf("failed to export history to %s", path), err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "History exported to %s\n", path)
			return nil
		},
	}
}

func newUnitsCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "units [category]",
		Short: "List available units, optionally for one category",
		Args:  usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.load(cmd.Context())
			if err != nil {
				return err
			}
			categories := c.Units.Categories()
			if len(args) == 1 {
				cat, ok := findCategory(categories, args[0])
				if !ok {
					return NewExitError(ExitFailure, fmt.Sprintf("unknown category %q", args[0]))
				}
				categories = []domain.Category{cat}
			}
			out := cmd.OutOrStdout()
			for _, cat := range categories {
				RenderHeader(out, string(cat))
				RenderUnitTable(out, c.Units.Units(cat))
			}
			return nil
		},
	}
}

// findCategory matches a category name ignoring case and spaces.
func findCategory(categories []domain.Category, raw string) (domain.Category, bool) {
	want := domain.Normalize(raw)
	for _, cat := range categories {
		if domain.Normalize(string(cat)) == want {
			return cat, true
		}
	}
	return "", false
}

func newInfoCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "info <unit>",
		Short: "Show name, category, description and aliases of a unit",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := s.load(cmd.Context())
			if err != nil {
				return err
			}
			unit, err := c.Service.Info(args[0])
			if err != nil {
				return WrapExitError(ExitFailure, msgNoUnitInfo, err)
			}
			RenderUnitInfo(cmd.OutOrStdout(), unit)
			return nil
		},
	}
}

func newBatchCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "batch <from_unit> <to_unit> <value>...",
		Short: "Convert several values between the same pair of units",
		Args:  usageArgs(cobra.MinimumNArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to := args[0], args[1]
			values := make([]float64, 0, len(args)-2)
			for _, raw := range args[2:] {
				v, err := numfmt.Parse(raw)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error: invalid number %q, skipped\n", raw)
					continue
				}
				values = append(values, v)
			}
			if len(values) == 0 {
				return WrapExitError(ExitFailure, "nothing to convert", domain.ErrParseNumber)
			}

			c, err := s.load(cmd.Context())
			if err != nil {
				return err
			}
			results, err := c.Service.Batch(values, from, to)
			if err != nil {
				return WrapExitError(ExitFailure, "batch conversion failed", err)
			}
			out := cmd.OutOrStdout()
			for _, res := range results {
				RenderConversion(out, res.Entry, numfmt.Record)
				RenderWarnings(cmd.ErrOrStderr(), res.Warnings)
			}
			return nil
		},
	}
}
