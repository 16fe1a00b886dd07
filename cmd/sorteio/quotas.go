package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/sorteio/internal/cli"
	"github.com/Veraticus/sorteio/internal/common"
	"github.com/Veraticus/sorteio/internal/config"
	"github.com/Veraticus/sorteio/internal/draw"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func quotasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quotas",
		Short: "Manage your quotas and check them against a draw",
		Long: `Manage the quotas you hold in each consortium group and check them
against the tickets of a draw. The group must exist first (see 'sorteio groups set').`,
	}

	cmd.AddCommand(quotasAddCmd())
	cmd.AddCommand(quotasListCmd())
	cmd.AddCommand(quotasRemoveCmd())
	cmd.AddCommand(quotasCheckCmd())

	return cmd
}

func quotasAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "add <group> <quota...>",
		Short:   "Add quotas to a group",
		Example: `  sorteio quotas add auto-2024 070 471 590`,
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			added, err := store.AddQuotas(ctx, args[0], splitQuotaArgs(args[1:]))
			if err != nil {
				return groupError(args[0], "failed to add quotas", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("%d quota(s) added to %s", added, args[0]))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func quotasListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <group>",
		Short: "List the quotas held in a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			group, err := store.GetGroup(ctx, args[0])
			if err != nil {
				return groupError(args[0], "failed to get group", err)
			}
			quotas, err := store.ListQuotas(ctx, group.Name)
			if err != nil {
				return fmt.Errorf("failed to list quotas: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(quotas) == 0 {
				fmt.Fprintln(out, cli.InfoStyle.Render("No quotas in this group. Use 'sorteio quotas add' to add some.")) //nolint:forbidigo // User-facing output
				return nil
			}

			rule := draw.SelectRule(group.Size)
			fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("Quotas in %s (%s)", group.Name, rule.Label()))) //nolint:forbidigo // User-facing output
			fmt.Fprintln(out, strings.Join(draw.NormalizeQuotas(strings.Join(quotas, ","), rule), ", "))   //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func quotasRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <group> <quota>",
		Short: "Remove a quota from a group",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			if err := store.RemoveQuota(ctx, args[0], args[1]); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError(fmt.Sprintf("quota %s is not in group %q", args[1], args[0]), err).
						WithHint(fmt.Sprintf("Use 'sorteio quotas list %s' to see the quotas you hold.", args[0]))
				}
				return fmt.Errorf("failed to remove quota: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Quota %s removed from %s", args[1], args[0]))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func quotasCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <group> [tickets...]",
		Short: "Check a group's quotas against the drawn tickets",
		Long: `Check every quota stored for a group against the tickets of a draw. The
group size decides the rule; tickets are read from the arguments or standard input.`,
		Example: `  sorteio quotas check auto-2024 48602 25471 09159 32070 71590`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runQuotasCheck,
	}

	cmd.Flags().Bool("all", false, "also list every generated code, not only the ones within the limit")

	return cmd
}

func runQuotasCheck(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	limit := viper.GetInt(config.KeyDisplayLimit)

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer closeStorage(store)

	group, err := store.GetGroup(ctx, args[0])
	if err != nil {
		return groupError(args[0], "failed to get group", err)
	}
	quotas, err := store.ListQuotas(ctx, group.Name)
	if err != nil {
		return fmt.Errorf("failed to list quotas: %w", err)
	}

	drawCfg := draw.Config{
		GroupSize:    group.Size,
		DisplayLimit: limit,
		QuotaText:    strings.Join(quotas, ","),
	}
	if err := config.ValidateDrawConfig(drawCfg); err != nil {
		return err
	}

	raw, err := ticketText(ctx, args[1:], os.Stdin)
	if err != nil {
		return fmt.Errorf("failed to read tickets: %w", err)
	}

	analysis, err := draw.Analyze(drawCfg, raw)
	if err != nil {
		return fmt.Errorf("failed to analyze draw: %w", err)
	}

	showAll, _ := cmd.Flags().GetBool("all")
	opts := cli.ReportOptions{Printer: newPrinter(), ShowFull: showAll}
	if err := cli.RenderReport(cmd.OutOrStdout(), analysis, opts); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	if hits := analysis.Contemplated(); len(hits) > 0 {
		common.LogInfo("Quotas contemplated", common.Fields{"group": group.Name, "quotas": hits})
	}
	return nil
}

// groupError turns a missing group into a user error pointing at 'groups set'.
func groupError(name, action string, err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.NewUserError(fmt.Sprintf("group %q not found", name), err).
			WithHint(fmt.Sprintf("Use 'sorteio groups set %s <size>' to create it.", name))
	}
	return fmt.Errorf("%s: %w", action, err)
}

// splitQuotaArgs accepts quotas as separate arguments or comma separated lists.
func splitQuotaArgs(args []string) []string {
	var quotas []string
	for _, arg := range args {
		for _, q := range strings.FieldsFunc(arg, func(r rune) bool { return r == ',' || r == ';' }) {
			if q = strings.TrimSpace(q); q != "" {
				quotas = append(quotas, q)
			}
		}
	}
	return quotas
}
