package main

import (
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/Veraticus/sorteio/internal/cli"
	"github.com/Veraticus/sorteio/internal/common"
	"github.com/Veraticus/sorteio/internal/draw"
	"github.com/Veraticus/sorteio/internal/model"
	"github.com/spf13/cobra"
)

var errInvalidArgument = errors.New("invalid argument")

func groupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Manage the consortium groups you hold quotas in",
		Long: `Manage consortium groups. A group has a name and a size (number of
quotas); the size decides whether centenas or milhares are drawn.`,
	}

	cmd.AddCommand(groupsSetCmd())
	cmd.AddCommand(groupsListCmd())
	cmd.AddCommand(groupsDeleteCmd())

	return cmd
}

func groupsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <name> <size>",
		Short: "Create a group or change its size",
		Example: `  sorteio groups set auto-2024 1000
  sorteio groups set imovel 5000`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := strconv.Atoi(args[1])
			if err != nil {
				return common.NewUserError(fmt.Sprintf("group size %q is not a number", args[1]), errInvalidArgument)
			}

			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			group := &model.Group{Name: args[0], Size: size}
			if err := store.SaveGroup(ctx, group); err != nil {
				return fmt.Errorf("failed to save group: %w", err)
			}

			msg := fmt.Sprintf("Group %s saved (%d quotas, %s)", group.Name, group.Size, draw.SelectRule(group.Size).Label())
			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(msg)) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}

func groupsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			groups, err := store.ListGroups(ctx)
			if err != nil {
				return fmt.Errorf("failed to list groups: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintln(out, cli.InfoStyle.Render("No groups found. Use 'sorteio groups set' to create one.")) //nolint:forbidigo // User-facing output
				return nil
			}

			fmt.Fprintln(out, cli.FormatTitle("Consortium groups")) //nolint:forbidigo // User-facing output
			fmt.Fprintln(out)                                       //nolint:forbidigo // User-facing output

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", //nolint:forbidigo // User-facing output
				cli.TableHeaderStyle.Render("Name"),
				cli.TableHeaderStyle.Render("Size"),
				cli.TableHeaderStyle.Render("Rule"),
				cli.TableHeaderStyle.Render("Created"))
			for _, g := range groups {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", g.Name, g.Size, draw.SelectRule(g.Size), g.CreatedAt.Format("2006-01-02")) //nolint:forbidigo // User-facing output
			}
			return w.Flush()
		},
	}
}

func groupsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a group and all of its quotas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer closeStorage(store)

			if err := store.DeleteGroup(ctx, args[0]); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					return common.NewUserError(fmt.Sprintf("group %q not found", args[0]), err).
						WithHint("Use 'sorteio groups list' to see your groups.")
				}
				return fmt.Errorf("failed to delete group: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Group %s deleted", args[0]))) //nolint:forbidigo // User-facing output
			return nil
		},
	}
}
