package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
)

// Config is the full configuration surface of the dashboard backend.
// Map keys are lowercased data-kind names (viper lowercases map keys).
type Config struct {
	SpreadsheetID string

	// GIDs selects the spreadsheet tab per data kind.
	GIDs map[string]string
	// Ranges selects the Sheets API read range used when CSV export fails.
	Ranges map[string]string
	// StaticFallback marks the kinds that substitute built-in records when
	// every fetch strategy fails; the others degrade to an empty collection.
	StaticFallback map[string]bool

	APIKey      string
	HTTPTimeout time.Duration
	CacheTTL    time.Duration
	CacheSize   int
	Port        string
}

// GID returns the sheet tab for a data kind.
func (c *Config) GID(kind string) string {
	return c.GIDs[strings.ToLower(kind)]
}

// Range returns the Sheets API read range for a data kind.
func (c *Config) Range(kind string) string {
	return c.Ranges[strings.ToLower(kind)]
}

// UseStaticFallback reports whether a kind substitutes built-in records on
// total fetch failure.
func (c *Config) UseStaticFallback(kind string) bool {
	return c.StaticFallback[strings.ToLower(kind)]
}

// Defaults mirror the production spreadsheet so the binary works out of the
// box; everything is overridable via config.yaml, env (NGSDASH_*) or flags.
func setDefaults(v *viper.Viper) {
	v.SetDefault("spreadsheet_id", "1aU9Z2ofa93NZcti57l403fFDxJAyDFwe4Ux1LbI28tk")
	v.SetDefault("gids.debt", "0")
	v.SetDefault("gids.sales", "1")
	v.SetDefault("gids.transaction", "17627704")
	v.SetDefault("gids.solditems", "1522583917")
	v.SetDefault("gids.categorysales", "1609460300")
	v.SetDefault("ranges.debt", "Sheet1!A:Z")
	v.SetDefault("ranges.sales", "Sheet2!A:Z")
	v.SetDefault("ranges.transaction", "Sheet3!A:Z")
	v.SetDefault("ranges.solditems", "Sheet4!A:Z")
	v.SetDefault("ranges.categorysales", "Sheet5!A:Z")
	v.SetDefault("fallback.debt", true)
	v.SetDefault("fallback.sales", true)
	v.SetDefault("fallback.solditems", true)
	v.SetDefault("fallback.transaction", false)
	v.SetDefault("fallback.categorysales", false)
	v.SetDefault("api_key", "")
	v.SetDefault("http_timeout", 10*time.Second)
	v.SetDefault("cache_ttl", 5*time.Minute)
	v.SetDefault("cache_size", 20)
	v.SetDefault("port", "3000")
}

// Build loads configuration from .env, an optional config file, the
// environment and the given flag set, in increasing precedence.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	_ = gotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("NGSDASH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	cfg := &Config{
		SpreadsheetID:  v.GetString("spreadsheet_id"),
		GIDs:           v.GetStringMapString("gids"),
		Ranges:         v.GetStringMapString("ranges"),
		StaticFallback: make(map[string]bool),
		APIKey:         v.GetString("api_key"),
		HTTPTimeout:    v.GetDuration("http_timeout"),
		CacheTTL:       v.GetDuration("cache_ttl"),
		CacheSize:      v.GetInt("cache_size"),
		Port:           v.GetString("port"),
	}
	for kind := range v.GetStringMap("fallback") {
		cfg.StaticFallback[kind] = v.GetBool("fallback." + kind)
	}

	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet_id must not be empty")
	}
	return cfg, nil
}
