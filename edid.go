// Package edid decodes the 128 byte EDID base block reported by displays.
//
// Every function works on a caller supplied byte slice, never modifies it
// and keeps no state, so all of them are safe for concurrent use. Scalar
// fields are read with the accessors in base.go, the four 18 byte
// descriptors with Descriptors and Classify, and Describe renders the
// human readable report. Decode collects everything into an Info value for
// structured output.
package edid

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Info is the fully decoded base block.
type Info struct {
	HeaderValid      bool             `json:"headerValid" yaml:"headerValid" cbor:"headerValid"`
	ManufacturerID   string           `json:"manufacturerId" yaml:"manufacturerId" cbor:"manufacturerId"`
	Vendor           string           `json:"vendor,omitempty" yaml:"vendor,omitempty" cbor:"vendor,omitempty"`
	ProductID        string           `json:"productId" yaml:"productId" cbor:"productId"`
	SerialNumber     string           `json:"serialNumber" yaml:"serialNumber" cbor:"serialNumber"`
	Week             byte             `json:"week" yaml:"week" cbor:"week"`
	Year             int              `json:"year" yaml:"year" cbor:"year"`
	Version          string           `json:"version" yaml:"version" cbor:"version"`
	VideoInput       VideoInput       `json:"videoInput" yaml:"videoInput" cbor:"videoInput"`
	HorizontalSizeCm int              `json:"horizontalSizeCm" yaml:"horizontalSizeCm" cbor:"horizontalSizeCm"`
	VerticalSizeCm   int              `json:"verticalSizeCm" yaml:"verticalSizeCm" cbor:"verticalSizeCm"`
	Descriptors      []DescriptorInfo `json:"descriptors" yaml:"descriptors" cbor:"descriptors"`
	ExtensionCount   int              `json:"extensionCount" yaml:"extensionCount" cbor:"extensionCount"`
	Checksum         byte             `json:"checksum" yaml:"checksum" cbor:"checksum"`
	ChecksumValid    bool             `json:"checksumValid" yaml:"checksumValid" cbor:"checksumValid"`
	Fingerprint      string           `json:"fingerprint" yaml:"fingerprint" cbor:"fingerprint"`
}

// DescriptorInfo is one decoded descriptor slot.
type DescriptorInfo struct {
	Index   int                       `json:"index" yaml:"index" cbor:"index"`
	Type    string                    `json:"type" yaml:"type" cbor:"type"`
	Kind    string                    `json:"kind" yaml:"kind" cbor:"kind"`
	Summary string                    `json:"summary" yaml:"summary" cbor:"summary"`
	Timing  *DetailedTimingDescriptor `json:"timing,omitempty" yaml:"timing,omitempty" cbor:"timing,omitempty"`
	Limits  *RangeLimits              `json:"limits,omitempty" yaml:"limits,omitempty" cbor:"limits,omitempty"`
}

// Decode reads every field of a base block. b must hold at least 128 bytes;
// anything after the base block is ignored.
func Decode(b []byte) (*Info, error) {
	if err := need(b, "base block", BlockSize); err != nil {
		return nil, err
	}
	manufacturer, err := manufacturerLabel(b)
	if err != nil {
		return nil, err
	}
	descs, err := Descriptors(b)
	if err != nil {
		return nil, err
	}

	info := &Info{
		HeaderValid:    HasHeader(b),
		ManufacturerID: manufacturer,
		Fingerprint:    Fingerprint(b),
	}
	if pnp, ok := pnpLookup[manufacturer]; ok {
		info.Vendor = pnp.Company
	}
	info.ProductID, _ = ProductID(b)
	info.SerialNumber, _ = SerialNumber(b)
	info.Week, _ = Week(b)
	info.Year, _ = Year(b)
	info.Version, _ = Version(b)
	info.VideoInput, _ = ParseVideoInput(b)
	info.HorizontalSizeCm, _ = HorizontalSizeCm(b)
	info.VerticalSizeCm, _ = VerticalSizeCm(b)
	info.ExtensionCount, _ = ExtensionCount(b)
	info.Checksum, _ = Checksum(b)
	info.ChecksumValid, _ = ChecksumValid(b)

	for i := range descs {
		v := Classify(&descs[i])
		di := DescriptorInfo{
			Index:   i,
			Type:    descs[i].Type().String(),
			Kind:    v.Kind().String(),
			Summary: v.Summary(),
		}
		switch v := v.(type) {
		case TimingVariant:
			timing := v.Timing
			di.Timing = &timing
		case RangeLimitsVariant:
			limits := v.Limits
			di.Limits = &limits
		}
		info.Descriptors = append(info.Descriptors, di)
	}
	return info, nil
}

// Fingerprint is a hex BLAKE2b-256 digest of the base block, usable as a
// stable key for a physical display. Shorter input is hashed as given.
func Fingerprint(b []byte) string {
	if len(b) > BlockSize {
		b = b[:BlockSize]
	}
	sum := blake2b.Sum256(b)
	return hex.EncodeToString(sum[:])
}
