package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/thyge/edidinfo/internal/logging"
)

// Output formats understood by the renderer.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCBOR = "cbor"
	FormatHex  = "hex"
)

var formats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatYAML: true,
	FormatCBOR: true,
	FormatHex:  true,
}

type Config struct {
	Format      string
	LogLevel    string
	ShowHex     bool
	VendorNames bool
}

type fileConfig struct {
	Format      string `toml:"format"`
	LogLevel    string `toml:"log_level"`
	ShowHex     bool   `toml:"show_hex"`
	VendorNames bool   `toml:"vendor_names"`
}

func Default() Config {
	return Config{
		Format:      FormatText,
		LogLevel:    "info",
		ShowHex:     false,
		VendorNames: true,
	}
}

// Load reads a TOML file on top of Default. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(raw.Format))
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("show_hex") {
		cfg.ShowHex = raw.ShowHex
	}
	if meta.IsDefined("vendor_names") {
		cfg.VendorNames = raw.VendorNames
	}

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Validate(cfg Config) error {
	if !formats[cfg.Format] {
		return fmt.Errorf("config: unsupported format %q", cfg.Format)
	}
	if cfg.LogLevel != "" {
		if _, ok := logging.ParseLevel(cfg.LogLevel); !ok {
			return fmt.Errorf("config: unknown log level %q", cfg.LogLevel)
		}
	}
	return nil
}
