package edid

import (
	"encoding/binary"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

const (
	DescriptorSize  = 18
	DescriptorCount = 4
)

// Descriptor is one 18 byte slot of the detailed descriptor table.
type Descriptor [DescriptorSize]byte

// Descriptors copies the four descriptor slots at offsets 54, 72, 90 and 108.
func Descriptors(b []byte) ([DescriptorCount]Descriptor, error) {
	var descs [DescriptorCount]Descriptor
	end := offsetDescriptors + DescriptorCount*DescriptorSize
	if err := need(b, "descriptors", end); err != nil {
		return descs, err
	}
	for i := range descs {
		start := offsetDescriptors + i*DescriptorSize
		copy(descs[i][:], b[start:start+DescriptorSize])
	}
	return descs, nil
}

// DescriptorType is the big-endian value of the first four descriptor bytes.
// Monitor descriptors start with three zero bytes, so their type is the tag.
type DescriptorType uint32

func (t DescriptorType) String() string {
	return fmt.Sprintf("0x%X", uint32(t))
}

// Type returns the raw type of the descriptor.
func (d *Descriptor) Type() DescriptorType {
	return DescriptorType(binary.BigEndian.Uint32(d[0:4]))
}

// PixelClock returns the raw pixel clock in 10 kHz units. Zero marks a
// monitor descriptor.
func (d *Descriptor) PixelClock() uint16 {
	return binary.LittleEndian.Uint16(d[0:2])
}

func (d *Descriptor) isMonitorDescriptor() bool {
	return d.PixelClock() == 0 && d[2] == 0
}

// Tag returns byte 3, the monitor descriptor tag.
func (d *Descriptor) Tag() byte {
	return d[3]
}

// Kind classifies the descriptor. Every byte pattern maps to exactly one kind.
func (d *Descriptor) Kind() DescriptorKind {
	if d.PixelClock() != 0 {
		return KindDetailedTiming
	}
	if !d.isMonitorDescriptor() {
		return KindUnknown
	}
	if k, ok := tagKinds[d.Tag()]; ok {
		return k
	}
	return KindUnknown
}

type DescriptorKind byte

const (
	KindUnknown DescriptorKind = iota
	KindDetailedTiming
	KindSerialNumber
	KindDisplayName
	KindUnspecifiedText
	KindRangeLimits
	KindStandardTimingIDs
	KindColorPoint
)

// Monitor descriptor tags.
const (
	TagSerialNumber      byte = 0xFF
	TagUnspecifiedText   byte = 0xFE
	TagRangeLimits       byte = 0xFD
	TagDisplayName       byte = 0xFC
	TagColorPoint        byte = 0xFB
	TagStandardTimingIDs byte = 0xFA
)

var tagKinds = map[byte]DescriptorKind{
	TagSerialNumber:      KindSerialNumber,
	TagUnspecifiedText:   KindUnspecifiedText,
	TagRangeLimits:       KindRangeLimits,
	TagDisplayName:       KindDisplayName,
	TagColorPoint:        KindColorPoint,
	TagStandardTimingIDs: KindStandardTimingIDs,
}

var kindLookup = map[DescriptorKind]string{
	KindUnknown:           "Unknown Descriptor",
	KindDetailedTiming:    "Detailed Timing",
	KindSerialNumber:      "Serial Number",
	KindDisplayName:       "Monitor Name",
	KindUnspecifiedText:   "Unspecified Text",
	KindRangeLimits:       "Range Limits",
	KindStandardTimingIDs: "Standard Timing ID",
	KindColorPoint:        "White Point Data",
}

func (k DescriptorKind) String() string {
	return kindLookup[k]
}

func (k DescriptorKind) MarshalJSON() ([]byte, error) {
	return quoted(k.String()), nil
}

func (k DescriptorKind) MarshalYAML() (interface{}, error) {
	return k.String(), nil
}

func (k DescriptorKind) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(k.String())
}

// IsText reports whether descriptors of this kind carry a 13 byte text field.
func (k DescriptorKind) IsText() bool {
	switch k {
	case KindSerialNumber, KindDisplayName, KindUnspecifiedText, KindStandardTimingIDs, KindColorPoint:
		return true
	}
	return false
}
