package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEDIDBinary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edid.bin")
	require.NoError(t, os.WriteFile(path, []byte{0x00, 0xFF, 0x10}, 0o600))

	b, err := readEDID(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xFF, 0x10}, b)
}

func TestReadEDIDHexDump(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edid.txt")
	require.NoError(t, os.WriteFile(path, []byte("00 ff\r\n10 0a\n"), 0o600))

	b, err := readEDID(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xFF, 0x10, 0x0A}, b)
}

func TestReadEDIDMissing(t *testing.T) {
	_, err := readEDID(filepath.Join(t.TempDir(), "missing.bin"))
	assert.Error(t, err)
}
