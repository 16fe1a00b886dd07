package config

import (
	"fmt"
	"strings"

	"github.com/Veraticus/sorteio/internal/common"
	"github.com/Veraticus/sorteio/internal/draw"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyGroupSize    = "draw.group_size"
	KeyDisplayLimit = "draw.display_limit"
	KeyQuotas       = "draw.quotas"
	KeyLocale       = "display.locale"
	KeyDatabasePath = "database.path"
	KeyExportDir    = "export.dir"
)

// Accepted bounds for draw settings.
const (
	MinGroupSize    = 2
	MaxGroupSize    = 10000
	MinDisplayLimit = 0
	MaxDisplayLimit = 10000
)

// Defaults used when neither the config file, the environment nor a flag sets a value.
const (
	DefaultGroupSize    = 1000
	DefaultDisplayLimit = 600
	DefaultDatabasePath = "$HOME/.local/share/sorteio/sorteio.db"
	DefaultExportDir    = "."
)

// EnvKeyReplacer maps nested keys to environment names, so draw.group_size
// is read from SORTEIO_DRAW_GROUP_SIZE.
func EnvKeyReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyGroupSize, DefaultGroupSize)
	v.SetDefault(KeyDisplayLimit, DefaultDisplayLimit)
	v.SetDefault(KeyQuotas, "")
	v.SetDefault(KeyLocale, draw.DefaultLocale)
	v.SetDefault(KeyDatabasePath, DefaultDatabasePath)
	v.SetDefault(KeyExportDir, DefaultExportDir)
}

// LoadDrawConfig reads the draw settings from v and validates them.
func LoadDrawConfig(v *viper.Viper) (draw.Config, error) {
	cfg := draw.Config{
		GroupSize:    v.GetInt(KeyGroupSize),
		DisplayLimit: v.GetInt(KeyDisplayLimit),
		QuotaText:    v.GetString(KeyQuotas),
	}

	if err := ValidateDrawConfig(cfg); err != nil {
		return draw.Config{}, err
	}
	return cfg, nil
}

// ValidateDrawConfig enforces the accepted bounds of the draw settings.
func ValidateDrawConfig(cfg draw.Config) error {
	if cfg.GroupSize < MinGroupSize || cfg.GroupSize > MaxGroupSize {
		return fmt.Errorf("%w: group size must be between %d and %d, got %d",
			common.ErrInvalidConfig, MinGroupSize, MaxGroupSize, cfg.GroupSize)
	}
	if cfg.DisplayLimit < MinDisplayLimit || cfg.DisplayLimit > MaxDisplayLimit {
		return fmt.Errorf("%w: display limit must be between %d and %d, got %d",
			common.ErrInvalidConfig, MinDisplayLimit, MaxDisplayLimit, cfg.DisplayLimit)
	}
	return nil
}

// DatabasePath returns the expanded path of the quota database.
func DatabasePath(v *viper.Viper) string {
	path := v.GetString(KeyDatabasePath)
	if path == "" {
		path = DefaultDatabasePath
	}
	return ExpandPath(path)
}

// ExportDir returns the expanded directory CSV exports are written to.
func ExportDir(v *viper.Viper) (string, error) {
	dir := v.GetString(KeyExportDir)
	if dir == "" {
		return "", fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyExportDir)
	}
	return ExpandPath(dir), nil
}

// Locale returns the display locale, defaulting to Brazilian Portuguese.
func Locale(v *viper.Viper) string {
	if l := v.GetString(KeyLocale); l != "" {
		return l
	}
	return draw.DefaultLocale
}
