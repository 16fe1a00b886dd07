package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Veraticus/sorteio/internal/cli"
	"github.com/Veraticus/sorteio/internal/common"
	"github.com/Veraticus/sorteio/internal/config"
	"github.com/Veraticus/sorteio/internal/draw"
	"github.com/Veraticus/sorteio/internal/service"
	"github.com/Veraticus/sorteio/internal/storage"
	"github.com/spf13/viper"
	"golang.org/x/text/message"
)

// initStorage opens the quota database and brings its schema up to date.
func initStorage(ctx context.Context) (service.QuotaStore, error) {
	dbPath := config.DatabasePath(viper.GetViper())

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	common.LogDebug("Opened quota database", common.Fields{"path": store.Path()})
	return store, nil
}

// closeStorage is deferred by every command that opened the store.
func closeStorage(store service.QuotaStore) {
	if err := store.Close(); err != nil {
		common.LogError(err, "failed to close storage", nil)
	}
}

// newPrinter returns the printer for the configured display locale.
func newPrinter() *message.Printer {
	return draw.NewPrinter(config.Locale(viper.GetViper()))
}

// ticketText joins positional arguments into ticket input. With no
// arguments it reads standard input when something is piped in.
func ticketText(ctx context.Context, args []string, stdin *os.File) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, ","), nil
	}
	if stdin == nil || isTerminal(stdin) {
		return "", nil
	}
	return cli.ReadInput(ctx, stdin)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
