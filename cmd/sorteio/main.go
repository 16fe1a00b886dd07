package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Veraticus/sorteio/internal/cli"
	"github.com/Veraticus/sorteio/internal/common"
	"github.com/Veraticus/sorteio/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "sorteio",
		Short: "🎯 Consortium draw simulator",
		Long: `sorteio: derives the centenas or milhares implied by the drawn prize tickets
of a consortium draw, checks your quotas against them and estimates how likely a
given number is to come out.

Groups of up to 1000 quotas use 3 centenas per prize; groups of 1001 to 10000
quotas use 2 milhares per prize.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/sorteio/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().IntP("group-size", "g", config.DefaultGroupSize, "number of quotas in the group (2-10000)")
	rootCmd.PersistentFlags().IntP("limit", "l", config.DefaultDisplayLimit, "show codes up to this number (0-10000)")
	rootCmd.PersistentFlags().StringP("quotas", "q", "", "my quotas, separated by commas, semicolons or new lines (e.g. 070,471;590)")
	rootCmd.PersistentFlags().String("locale", "", "display locale for numbers (default: pt-BR)")
	rootCmd.PersistentFlags().String("db", "", "quota database path (default: $HOME/.local/share/sorteio/sorteio.db)")
	rootCmd.PersistentFlags().String("export-dir", "", "directory CSV files are written to (default: current directory)")

	// Bind flags to viper
	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeyGroupSize, rootCmd.PersistentFlags().Lookup("group-size"))
	_ = viper.BindPFlag(config.KeyDisplayLimit, rootCmd.PersistentFlags().Lookup("limit"))
	_ = viper.BindPFlag(config.KeyQuotas, rootCmd.PersistentFlags().Lookup("quotas"))
	_ = viper.BindPFlag(config.KeyLocale, rootCmd.PersistentFlags().Lookup("locale"))
	_ = viper.BindPFlag(config.KeyDatabasePath, rootCmd.PersistentFlags().Lookup("db"))
	_ = viper.BindPFlag(config.KeyExportDir, rootCmd.PersistentFlags().Lookup("export-dir"))

	// Add commands
	rootCmd.AddCommand(deriveCmd())
	rootCmd.AddCommand(oddsCmd())
	rootCmd.AddCommand(groupsCmd())
	rootCmd.AddCommand(quotasCmd())
	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(interactiveCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		common.LogInfo("Received interrupt signal, shutting down...", nil)
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		printError(os.Stderr, err)
		os.Exit(1)
	}
}

// printError shows err on w, with the hint of a user error on its own line.
func printError(w io.Writer, err error) {
	var userErr *common.UserError
	if !errors.As(err, &userErr) {
		fmt.Fprintln(w, cli.FormatError(err.Error())) //nolint:forbidigo // User-facing output
		return
	}

	fmt.Fprintln(w, cli.FormatError(userErr.Error())) //nolint:forbidigo // User-facing output
	if userErr.Hint != "" {
		fmt.Fprintln(w, cli.FormatInfo(userErr.Hint)) //nolint:forbidigo // User-facing output
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		viper.AddConfigPath(fmt.Sprintf("%s/.config/sorteio", home))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("SORTEIO")
	viper.SetEnvKeyReplacer(config.EnvKeyReplacer())
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging() error {
	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return err
	}
	return common.SetupLogger(os.Stderr, level, viper.GetString("logging.format"))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sorteio version %s\n", version) //nolint:forbidigo // User-facing output
		},
	}
}
