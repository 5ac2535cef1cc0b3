package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pocketfin/pocket/internal/export"
	"github.com/pocketfin/pocket/internal/report"
)

var (
	flagExportFormat string
	flagExportOutput string
	flagExportAll    bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export data as CSV, JSON, or YAML",
	Long: "Export transactions as CSV (filtered to the time window), or the full dataset\n" +
		"as JSON or YAML. JSON exports can be restored with `pocket import`.",
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "csv", "Output format (csv, json, yaml)")
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Write to file instead of stdout")
	exportCmd.Flags().BoolVar(&flagExportAll, "all", false, "Include all transactions in CSV, ignoring the time window")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	format, err := export.ParseFormat(flagExportFormat)
	if err != nil {
		return err
	}

	st, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	out := os.Stdout
	if flagExportOutput != "" {
		f, err := os.Create(flagExportOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	snap := st.Snapshot()
	switch format {
	case export.FormatCSV:
		days := effectiveDays(cfg)
		if flagExportAll {
			days = 0
		} else if !report.ValidPeriod(days) {
			return fmt.Errorf("unsupported export period %d, expected one of %v", days, report.Periods)
		}
		err = export.WriteCSV(out, snap.Transactions, days, timeNow())
	case export.FormatJSON:
		err = export.WriteJSON(out, snap)
	case export.FormatYAML:
		err = export.WriteYAML(out, snap)
	}
	if err != nil {
		return err
	}

	if flagExportOutput != "" {
		fmt.Fprintf(os.Stderr, "  Exported to %s\n", flagExportOutput)
	}
	return nil
}
