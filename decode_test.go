package edid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	info, err := Decode(mustHex(t, edidStr))
	require.NoError(t, err)

	assert.True(t, info.HeaderValid)
	assert.Equal(t, "APP", info.ManufacturerID)
	assert.Equal(t, "APPLE COMPUTER INC", info.Vendor)
	assert.Equal(t, "9227", info.ProductID)
	assert.Equal(t, "162C0C25", info.SerialNumber)
	assert.Equal(t, byte(44), info.Week)
	assert.Equal(t, 2012, info.Year)
	assert.Equal(t, "1.4", info.Version)
	assert.True(t, info.VideoInput.Digital)
	assert.Equal(t, 60, info.HorizontalSizeCm)
	assert.Equal(t, 34, info.VerticalSizeCm)
	assert.Equal(t, 1, info.ExtensionCount)
	assert.Equal(t, byte(0xC7), info.Checksum)
	assert.True(t, info.ChecksumValid)
	assert.Len(t, info.Fingerprint, 64)

	require.Len(t, info.Descriptors, DescriptorCount)
	assert.Equal(t, DescriptorInfo{
		Index:   2,
		Type:    "0xFF",
		Kind:    "Serial Number",
		Summary: "C02JM2PFF2GC",
	}, info.Descriptors[2])
	require.NotNil(t, info.Descriptors[0].Timing)
	assert.Equal(t, uint16(1440), info.Descriptors[0].Timing.VerticalActive)
	assert.Nil(t, info.Descriptors[0].Limits)
}

func TestDecodeRangeLimitsDescriptor(t *testing.T) {
	info, err := Decode(mustHex(t, edidStr2))
	require.NoError(t, err)

	d := info.Descriptors[2]
	assert.Equal(t, "Range Limits", d.Kind)
	require.NotNil(t, d.Limits)
	assert.Equal(t, 770, d.Limits.MaxPixelClockMHz)
	assert.Nil(t, d.Timing)
	assert.False(t, info.ChecksumValid)
}

func TestDecodeIgnoresExtensionBlocks(t *testing.T) {
	base := mustHex(t, edidStr)
	withExt := append(append([]byte(nil), base...), make([]byte, BlockSize)...)

	want, err := Decode(base)
	require.NoError(t, err)
	got, err := Decode(withExt)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFingerprint(t *testing.T) {
	a := mustHex(t, edidStr)
	b := mustHex(t, edidStr2)

	assert.Equal(t, Fingerprint(a), Fingerprint(a))
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))
	assert.Equal(t, Fingerprint(a), Fingerprint(append(a, 0x02, 0x03)))
}
