package edid

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Base block layout.
const (
	BlockSize = 128

	offsetHeader       = 0
	offsetManufacturer = 8
	offsetProduct      = 10
	offsetSerial       = 12
	offsetWeek         = 16
	offsetYear         = 17
	offsetVersion      = 18
	offsetRevision     = 19
	offsetVideoInput   = 20
	offsetHSize        = 21
	offsetVSize        = 22
	offsetDescriptors  = 54
	offsetExtensions   = 126
	offsetChecksum     = 127

	yearBase = 1990
)

// The manufacturer id packs three letters into bits 14-0 of a big-endian
// word, 5 bits each, where 1 is 'A'.
const (
	letterBits   = 5
	letterMask   = 1<<letterBits - 1
	letterOffset = 'A' - 1
	letterCount  = 3
)

var header = []byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

// HasHeader reports whether b starts with the fixed EDID header.
func HasHeader(b []byte) bool {
	return len(b) >= len(header) && bytes.Equal(b[offsetHeader:len(header)], header)
}

// ManufacturerID returns the three letter PNP id stored in bytes 8-9.
func ManufacturerID(b []byte) (string, error) {
	if err := need(b, "manufacturer id", offsetManufacturer+2); err != nil {
		return "", err
	}
	packed := binary.BigEndian.Uint16(b[offsetManufacturer:])
	id := make([]byte, letterCount)
	for i := 0; i < letterCount; i++ {
		shift := uint(letterBits * (letterCount - 1 - i))
		code := byte(packed>>shift) & letterMask
		if code < 1 || code > 'Z'-letterOffset {
			return "", fmt.Errorf("%w: letter %d has code %d", ErrInvalidManufacturer, i+1, code)
		}
		id[i] = code + letterOffset
	}
	return string(id), nil
}

// manufacturerLabel is ManufacturerID for reports: invalid letter codes
// fall back to the raw packed value, e.g. "0x0000".
func manufacturerLabel(b []byte) (string, error) {
	id, err := ManufacturerID(b)
	if errors.Is(err, ErrInvalidManufacturer) {
		return fmt.Sprintf("0x%04X", binary.BigEndian.Uint16(b[offsetManufacturer:])), nil
	}
	return id, err
}

// ProductID returns the product code as 4 hex digits, most significant byte first.
func ProductID(b []byte) (string, error) {
	if err := need(b, "product id", offsetProduct+2); err != nil {
		return "", err
	}
	return fmt.Sprintf("%04X", binary.LittleEndian.Uint16(b[offsetProduct:])), nil
}

// SerialNumber returns the numeric serial as 8 hex digits, most significant byte first.
func SerialNumber(b []byte) (string, error) {
	if err := need(b, "serial number", offsetSerial+4); err != nil {
		return "", err
	}
	return fmt.Sprintf("%08X", binary.LittleEndian.Uint32(b[offsetSerial:])), nil
}

// Week returns the week of manufacture, byte 16.
func Week(b []byte) (byte, error) {
	if err := need(b, "week", offsetWeek+1); err != nil {
		return 0, err
	}
	return b[offsetWeek], nil
}

// Year returns the year of manufacture, byte 17 plus 1990.
func Year(b []byte) (int, error) {
	if err := need(b, "year", offsetYear+1); err != nil {
		return 0, err
	}
	return int(b[offsetYear]) + yearBase, nil
}

// Version returns "version.revision", e.g. "1.4".
func Version(b []byte) (string, error) {
	if err := need(b, "version", offsetRevision+1); err != nil {
		return "", err
	}
	return fmt.Sprintf("%d.%d", b[offsetVersion], b[offsetRevision]), nil
}

// IsDigital reports bit 7 of the video input byte.
func IsDigital(b []byte) (bool, error) {
	if err := need(b, "video input", offsetVideoInput+1); err != nil {
		return false, err
	}
	return b[offsetVideoInput]&0x80 > 0, nil
}

// HorizontalSizeCm returns the physical width. 0 means undefined.
func HorizontalSizeCm(b []byte) (int, error) {
	if err := need(b, "horizontal size", offsetHSize+1); err != nil {
		return 0, err
	}
	return int(b[offsetHSize]), nil
}

// VerticalSizeCm returns the physical height. 0 means undefined.
func VerticalSizeCm(b []byte) (int, error) {
	if err := need(b, "vertical size", offsetVSize+1); err != nil {
		return 0, err
	}
	return int(b[offsetVSize]), nil
}

// ExtensionCount returns the number of extension blocks that follow.
func ExtensionCount(b []byte) (int, error) {
	if err := need(b, "extension count", offsetExtensions+1); err != nil {
		return 0, err
	}
	return int(b[offsetExtensions]), nil
}

// Checksum returns the stored checksum byte.
func Checksum(b []byte) (byte, error) {
	if err := need(b, "checksum", offsetChecksum+1); err != nil {
		return 0, err
	}
	return b[offsetChecksum], nil
}

// ComputeChecksum returns the byte that makes the first 128 bytes sum to 0.
func ComputeChecksum(b []byte) (byte, error) {
	if err := need(b, "checksum", offsetChecksum); err != nil {
		return 0, err
	}
	var sum byte
	for _, v := range b[:offsetChecksum] {
		sum += v
	}
	return 0xFF - sum + 1, nil
}

// ChecksumValid is informational. Decoding never depends on it.
func ChecksumValid(b []byte) (bool, error) {
	stored, err := Checksum(b)
	if err != nil {
		return false, err
	}
	want, err := ComputeChecksum(b)
	if err != nil {
		return false, err
	}
	return stored == want, nil
}

// VideoInput is byte 20 of the base block.
type VideoInput struct {
	Digital   bool           `json:"digital" yaml:"digital" cbor:"digital"`
	BitDepth  BitDepth       `json:"bitDepth,omitempty" yaml:"bitDepth,omitempty" cbor:"bitDepth,omitempty"`
	Interface VideoInterface `json:"interface,omitempty" yaml:"interface,omitempty" cbor:"interface,omitempty"`
}

// ParseVideoInput decodes byte 20. Bit depth and interface are only set for
// digital inputs.
func ParseVideoInput(b []byte) (VideoInput, error) {
	if err := need(b, "video input", offsetVideoInput+1); err != nil {
		return VideoInput{}, err
	}
	params := b[offsetVideoInput]
	if params&0x80 == 0 {
		return VideoInput{}, nil
	}
	return VideoInput{
		Digital:   true,
		BitDepth:  BitDepth(params & 0x70 >> 4),
		Interface: VideoInterface(params & 0x0F),
	}, nil
}

type BitDepth byte

const (
	BPP_UNDEFINED BitDepth = 0
	BPP6          BitDepth = 1
	BPP8          BitDepth = 2
	BPP10         BitDepth = 3
	BPP12         BitDepth = 4
	BPP14         BitDepth = 5
	BPP16         BitDepth = 6
)

func (d BitDepth) String() string {
	switch d {
	default:
		return "UNDEFINED"
	case BPP6:
		return "6"
	case BPP8:
		return "8"
	case BPP10:
		return "10"
	case BPP12:
		return "12"
	case BPP14:
		return "14"
	case BPP16:
		return "16"
	}
}

func (d BitDepth) MarshalJSON() ([]byte, error) {
	return quoted(d.String()), nil
}

func (d BitDepth) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

func (d BitDepth) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(d.String())
}

type VideoInterface byte

const (
	InterfaceUndefined   VideoInterface = 0
	InterfaceDVI         VideoInterface = 1
	InterfaceHDMIa       VideoInterface = 2
	InterfaceHDMIb       VideoInterface = 3
	InterfaceMDDI        VideoInterface = 4
	InterfaceDisplayPort VideoInterface = 5
)

var videoInterfaceLookup = map[VideoInterface]string{
	InterfaceUndefined:   "Undefined",
	InterfaceDVI:         "DVI",
	InterfaceHDMIa:       "HDMIa",
	InterfaceHDMIb:       "HDMIb",
	InterfaceMDDI:        "MDDI",
	InterfaceDisplayPort: "DisplayPort",
}

func (v VideoInterface) String() string {
	if s, ok := videoInterfaceLookup[v]; ok {
		return s
	}
	return "Reserved"
}

func (v VideoInterface) MarshalJSON() ([]byte, error) {
	return quoted(v.String()), nil
}

func (v VideoInterface) MarshalYAML() (interface{}, error) {
	return v.String(), nil
}

func (v VideoInterface) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(v.String())
}

func quoted(s string) []byte {
	buffer := bytes.NewBufferString(`"`)
	buffer.WriteString(s)
	buffer.WriteString(`"`)
	return buffer.Bytes()
}
