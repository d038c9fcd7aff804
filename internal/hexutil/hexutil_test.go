package hexutil

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixture = "00FFFFFFFFFFFF000610279225"

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{
		fixture,
		"000000FF004330324A4D325046463247430A",
		"",
	} {
		b, err := HexStringToBytes(s)
		require.NoError(t, err)
		assert.Equal(t, s, BytesToHexString(b))
	}
}

func TestHexStringToBytesLowercase(t *testing.T) {
	b, err := HexStringToBytes("0aff")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0A, 0xFF}, b)
	assert.Equal(t, "0AFF", BytesToHexString(b))
}

func TestHexStringToBytesInvalid(t *testing.T) {
	_, err := HexStringToBytes("ABC")
	assert.Error(t, err)

	_, err = HexStringToBytes("ZZ")
	assert.Error(t, err)
}

func TestFromDump(t *testing.T) {
	dump := "00 ff ff ff ff ff ff 00\r\n06 10\n\t0x27 0X92  "
	b, err := FromDump(dump)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x06, 0x10, 0x27, 0x92}, b)
}

func TestDump(t *testing.T) {
	b := make([]byte, 20)
	for i := range b {
		b[i] = byte(i)
	}
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, b))
	assert.Equal(t,
		"00 01 02 03 04 05 06 07 08 09 0A 0B 0C 0D 0E 0F\n10 11 12 13\n",
		buf.String())
}
