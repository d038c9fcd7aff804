// Package hexutil converts between EDID bytes and the hex text produced by
// tools such as xrandr --verbose or edid-decode.
package hexutil

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
)

const dumpWidth = 16

// HexStringToBytes decodes an even length hex string. Case is ignored.
func HexStringToBytes(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("hexutil: decode: %w", err)
	}
	return b, nil
}

// BytesToHexString encodes b as uppercase hex without separators.
func BytesToHexString(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// FromDump decodes a pasted hex dump, ignoring whitespace and an optional
// 0x prefix on each token.
func FromDump(s string) ([]byte, error) {
	var sb strings.Builder
	for _, field := range strings.Fields(s) {
		field = strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "0X")
		sb.WriteString(field)
	}
	return HexStringToBytes(sb.String())
}

// Dump writes b as rows of 16 space separated uppercase bytes.
func Dump(w io.Writer, b []byte) error {
	for start := 0; start < len(b); start += dumpWidth {
		end := start + dumpWidth
		if end > len(b) {
			end = len(b)
		}
		row := make([]string, 0, dumpWidth)
		for _, v := range b[start:end] {
			row = append(row, fmt.Sprintf("%02X", v))
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return nil
}
