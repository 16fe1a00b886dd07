package main

import (
	"fmt"

	"github.com/Veraticus/sorteio/internal/cli"
	"github.com/Veraticus/sorteio/internal/common"
	"github.com/Veraticus/sorteio/internal/config"
	"github.com/Veraticus/sorteio/internal/draw"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func oddsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "odds",
		Short: "Estimate the chance of one specific code coming out",
		Long: `Estimate the chance of one specific centena or milhar coming out in at
least one prize of a draw, for the configured group size.

The estimate treats every derived code as an independent uniform draw, so it
is an approximation.`,
		Args: cobra.NoArgs,
		RunE: runOdds,
	}

	cmd.Flags().IntP("tickets", "n", 5, "number of prize tickets in the draw")

	return cmd
}

func runOdds(cmd *cobra.Command, _ []string) error {
	drawCfg, err := config.LoadDrawConfig(viper.GetViper())
	if err != nil {
		return err
	}

	tickets, _ := cmd.Flags().GetInt("tickets")
	if tickets < 0 {
		return common.NewUserError(fmt.Sprintf("ticket count cannot be negative, got %d", tickets), errInvalidArgument)
	}

	result := draw.EstimateProbability(drawCfg.GroupSize, tickets)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("Rule applied: %s", result.Rule.Label()))) //nolint:forbidigo // User-facing output
	fmt.Fprintln(out, cli.RenderProbability(newPrinter(), result))                          //nolint:forbidigo // User-facing output
	return nil
}
