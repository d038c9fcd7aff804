package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edidinfo.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
format = "YAML"
log_level = "debug"
show_hex = true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Format:      FormatYAML,
		LogLevel:    "debug",
		ShowHex:     true,
		VendorNames: true,
	}, cfg)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeConfig(t, `vendor_names = false`)
	cfg, err := Load(path)
	require.NoError(t, err)

	want := Default()
	want.VendorNames = false
	assert.Equal(t, want, cfg)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := writeConfig(t, `format = "xml"`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "unsupported format")
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, `colour = "red"`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "unknown key")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	for _, f := range []string{FormatText, FormatJSON, FormatYAML, FormatCBOR, FormatHex} {
		cfg := Default()
		cfg.Format = f
		assert.NoError(t, Validate(cfg), f)
	}
	cfg := Default()
	cfg.Format = ""
	assert.Error(t, Validate(cfg))

	cfg = Default()
	cfg.LogLevel = "loud"
	assert.Error(t, Validate(cfg))
	cfg.LogLevel = ""
	assert.NoError(t, Validate(cfg))
}
