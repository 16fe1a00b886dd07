package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/sorteio/internal/cli"
	"github.com/Veraticus/sorteio/internal/common"
	"github.com/Veraticus/sorteio/internal/config"
	"github.com/Veraticus/sorteio/internal/draw"
	"github.com/Veraticus/sorteio/internal/export"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func deriveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive [tickets...]",
		Short: "Derive the codes implied by the drawn tickets",
		Long: `Derive the centenas or milhares implied by the drawn prize tickets.

Tickets can be given as arguments or piped through standard input, separated
by commas, semicolons or new lines. Only the digits of each ticket are kept and
the last five are used.

Examples:
  sorteio derive 48602 25471 09159 32070 71590
  sorteio derive -g 5000 -l 1200 "48602;25471;09159"
  cat resultado.txt | sorteio derive --quotas 070,471 --export`,
		RunE: runDerive,
	}

	cmd.Flags().Bool("all", false, "also list every generated code, not only the ones within the limit")
	cmd.Flags().Bool("derivations", false, "list the codes derived from each prize")
	cmd.Flags().Bool("export", false, "write numeros_gerados.csv and numeros_filtrados.csv to the export directory")

	return cmd
}

func runDerive(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	drawCfg, err := config.LoadDrawConfig(viper.GetViper())
	if err != nil {
		return err
	}

	raw, err := ticketText(ctx, args, os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read tickets: %w", err)
	}

	showAll, _ := cmd.Flags().GetBool("all")
	showDerivations, _ := cmd.Flags().GetBool("derivations")
	exportCSV, _ := cmd.Flags().GetBool("export")

	analysis, err := draw.Analyze(drawCfg, raw)
	if err != nil {
		return fmt.Errorf("failed to analyze draw: %w", err)
	}

	common.LogDebug("Draw analyzed", common.Fields{
		"rule":         analysis.Rule,
		"tickets":      len(analysis.Tickets),
		"codes":        len(analysis.Full),
		"within_limit": len(analysis.Filtered),
	})

	out := cmd.OutOrStdout()
	opts := cli.ReportOptions{
		Printer:         newPrinter(),
		ShowDerivations: showDerivations,
		ShowFull:        showAll,
	}
	if err := cli.RenderReport(out, analysis, opts); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if !exportCSV {
		return nil
	}
	return exportAnalysis(out, "", analysis)
}

// exportAnalysis writes the CSV files of a non-empty analysis and lists them on w.
func exportAnalysis(w io.Writer, prefix string, a *draw.Analysis) error {
	if a.Empty() {
		_, err := fmt.Fprintln(w, cli.FormatWarning("Nothing to export: no valid ticket was given.")) //nolint:forbidigo // User-facing output
		return err
	}

	dir, err := config.ExportDir(viper.GetViper())
	if err != nil {
		return err
	}

	paths, err := export.WriteAnalysis(dir, prefix, a)
	if err != nil {
		return fmt.Errorf("failed to export codes: %w", err)
	}

	for _, p := range paths {
		if _, err := fmt.Fprintln(w, cli.FormatSuccess("Saved "+p)); err != nil { //nolint:forbidigo // User-facing output
			return err
		}
	}
	return nil
}
