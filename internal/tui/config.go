package tui

import (
	"github.com/Veraticus/sorteio/internal/draw"
	"github.com/Veraticus/sorteio/internal/tui/themes"
	"golang.org/x/text/message"
)

// Config holds TUI configuration.
type Config struct {
	Theme     themes.Theme
	Printer   *message.Printer
	Tickets   string
	ExportDir string
	Draw      draw.Config
	ShowHelp  bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Printer:   draw.NewPrinter(draw.DefaultLocale),
		ExportDir: ".",
		Draw: draw.Config{
			GroupSize:    1000,
			DisplayLimit: 600,
		},
		ShowHelp: true,
	}
}

// WithTheme sets the color theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithPrinter sets the locale printer used for percentages and odds.
func WithPrinter(p *message.Printer) Option {
	return func(c *Config) {
		c.Printer = p
	}
}

// WithDrawConfig sets the initial group size, display limit and quotas.
func WithDrawConfig(cfg draw.Config) Option {
	return func(c *Config) {
		c.Draw = cfg
	}
}

// WithTickets pre-fills the ticket field.
func WithTickets(raw string) Option {
	return func(c *Config) {
		c.Tickets = raw
	}
}

// WithExportDir sets where ctrl+s writes the CSV files.
func WithExportDir(dir string) Option {
	return func(c *Config) {
		c.ExportDir = dir
	}
}
