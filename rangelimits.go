package edid

import "fmt"

const (
	rangeOffsetBias = 255
	// NoMaxPixelClock is reported when the descriptor leaves the max clock unset.
	NoMaxPixelClock = -1

	flagVerticalOffset   = 0x01
	flagHorizontalOffset = 0x02
)

// RangeLimits holds the rates of a 0xFD display range limits descriptor.
type RangeLimits struct {
	VerticalMinHz    int `json:"verticalMinHz" yaml:"verticalMinHz" cbor:"verticalMinHz"`
	VerticalMaxHz    int `json:"verticalMaxHz" yaml:"verticalMaxHz" cbor:"verticalMaxHz"`
	HorizontalMin    int `json:"horizontalMin" yaml:"horizontalMin" cbor:"horizontalMin"`
	HorizontalMax    int `json:"horizontalMax" yaml:"horizontalMax" cbor:"horizontalMax"`
	MaxPixelClockMHz int `json:"maxPixelClockMHz" yaml:"maxPixelClockMHz" cbor:"maxPixelClockMHz"`
}

// ParseRangeLimits reads bytes 4-9 of a range limits descriptor. The rate
// and clock bytes are signed. When the offset flag for a pair of rates is set
// both rates are shifted by -255 on top of that, so the result can be
// negative.
func ParseRangeLimits(d *Descriptor) RangeLimits {
	flags := d[4]
	r := RangeLimits{
		VerticalMinHz: signed(d[5]),
		VerticalMaxHz: signed(d[6]),
		HorizontalMin: signed(d[7]),
		HorizontalMax: signed(d[8]),
	}
	if flags&flagVerticalOffset != 0 {
		r.VerticalMinHz -= rangeOffsetBias
		r.VerticalMaxHz -= rangeOffsetBias
	}
	if flags&flagHorizontalOffset != 0 {
		r.HorizontalMin -= rangeOffsetBias
		r.HorizontalMax -= rangeOffsetBias
	}
	if d[9] == 0 {
		r.MaxPixelClockMHz = NoMaxPixelClock
	} else {
		r.MaxPixelClockMHz = signed(d[9]) * 10
	}
	return r
}

func signed(b byte) int {
	return int(int8(b))
}

func (r RangeLimits) String() string {
	return fmt.Sprintf("Field Rate %d-%d Hz vertical, %d-%d Hz horizontal, Max clock: %d MHz",
		r.VerticalMinHz, r.VerticalMaxHz, r.HorizontalMin, r.HorizontalMax, r.MaxPixelClockMHz)
}

func DecodeRangeLimits(d *Descriptor) string {
	return ParseRangeLimits(d).String()
}
