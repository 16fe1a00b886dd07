package main

import (
	"os"

	"github.com/Veraticus/sorteio/internal/common"
	"github.com/Veraticus/sorteio/internal/config"
	"github.com/Veraticus/sorteio/internal/tui"
	"github.com/Veraticus/sorteio/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func interactiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "interactive [tickets...]",
		Aliases: []string{"ui"},
		Short:   "Open the interactive draw form",
		Long: `Open a form with the tickets, group size, limit and quota fields. The
report is recomputed on every keystroke.

Keys: tab/shift+tab move between fields, ctrl+s exports the CSV files,
ctrl+g toggles help, esc quits.`,
		RunE: runInteractive,
	}

	cmd.Flags().String("theme", "default", "color theme (default, catppuccin)")

	return cmd
}

func runInteractive(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	drawCfg, err := config.LoadDrawConfig(viper.GetViper())
	if err != nil {
		return err
	}
	dir, err := config.ExportDir(viper.GetViper())
	if err != nil {
		return err
	}

	themeName, _ := cmd.Flags().GetString("theme")
	theme := themes.ByName(themeName)

	// stdin belongs to the form, so tickets only come from arguments.
	raw, err := ticketText(ctx, args, nil)
	if err != nil {
		return err
	}

	if !isTerminal(os.Stdout) {
		return common.NewUserError("interactive mode needs a terminal", errInvalidArgument).
			WithHint("Use 'sorteio derive' to print the report instead.")
	}

	return tui.Run(ctx,
		tui.WithTheme(theme),
		tui.WithPrinter(newPrinter()),
		tui.WithDrawConfig(drawCfg),
		tui.WithTickets(raw),
		tui.WithExportDir(dir),
	)
}
