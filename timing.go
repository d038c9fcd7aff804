package edid

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// DecodeDetailedTiming summarises the pixel clock and active area of a
// detailed timing descriptor. The trailing space is part of the format.
func DecodeDetailedTiming(d *Descriptor) string {
	dtd := DecodeDTD(d)
	return fmt.Sprintf("Clock %dMHz, Active Pixels %dx%d ", dtd.PixelClockMHz(), dtd.HorizontalActive, dtd.VerticalActive)
}

type DetailedTimingDescriptor struct {
	PixelClock10KHz          uint16       `json:"pixelClock10kHz" yaml:"pixelClock10kHz" cbor:"pixelClock10kHz"`
	HorizontalActive         uint16       `json:"horizontalActive" yaml:"horizontalActive" cbor:"horizontalActive"`
	HorizontalBlanking       uint16       `json:"horizontalBlanking" yaml:"horizontalBlanking" cbor:"horizontalBlanking"`
	HorizontalFrontPorch     uint16       `json:"horizontalFrontPorch" yaml:"horizontalFrontPorch" cbor:"horizontalFrontPorch"`
	HorizontalSyncPulseWidth uint16       `json:"horizontalSyncPulseWidth" yaml:"horizontalSyncPulseWidth" cbor:"horizontalSyncPulseWidth"`
	VerticalActive           uint16       `json:"verticalActive" yaml:"verticalActive" cbor:"verticalActive"`
	VerticalBlanking         uint16       `json:"verticalBlanking" yaml:"verticalBlanking" cbor:"verticalBlanking"`
	VerticalFrontPorch       uint16       `json:"verticalFrontPorch" yaml:"verticalFrontPorch" cbor:"verticalFrontPorch"`
	VerticalSyncPulseWidth   uint16       `json:"verticalSyncPulseWidth" yaml:"verticalSyncPulseWidth" cbor:"verticalSyncPulseWidth"`
	HorizontalImageSizeMM    uint16       `json:"horizontalImageSizeMM" yaml:"horizontalImageSizeMM" cbor:"horizontalImageSizeMM"`
	VerticalImageSizeMM      uint16       `json:"verticalImageSizeMM" yaml:"verticalImageSizeMM" cbor:"verticalImageSizeMM"`
	HorizontalBorder         byte         `json:"horizontalBorder" yaml:"horizontalBorder" cbor:"horizontalBorder"`
	VerticalBorder           byte         `json:"verticalBorder" yaml:"verticalBorder" cbor:"verticalBorder"`
	Interlaced               bool         `json:"interlaced" yaml:"interlaced" cbor:"interlaced"`
	Stereo                   StereoMode   `json:"stereo" yaml:"stereo" cbor:"stereo"`
	SyncType                 string       `json:"syncType" yaml:"syncType" cbor:"syncType"`
	HorizontalSyncPolarity   SyncPolarity `json:"horizontalSyncPolarity" yaml:"horizontalSyncPolarity" cbor:"horizontalSyncPolarity"`
	VerticalSyncPolarity     SyncPolarity `json:"verticalSyncPolarity" yaml:"verticalSyncPolarity" cbor:"verticalSyncPolarity"`
}

// PixelClockMHz truncates the pixel clock to whole MHz.
func (dtd *DetailedTimingDescriptor) PixelClockMHz() int {
	return int(dtd.PixelClock10KHz) / 100
}

// RefreshHz is the vertical refresh rate, or 0 when the totals are zero.
func (dtd *DetailedTimingDescriptor) RefreshHz() float64 {
	hTotal := float64(dtd.HorizontalActive) + float64(dtd.HorizontalBlanking)
	vTotal := float64(dtd.VerticalActive) + float64(dtd.VerticalBlanking)
	if hTotal == 0 || vTotal == 0 {
		return 0
	}
	return float64(dtd.PixelClock10KHz) * 10000 / (hTotal * vTotal)
}

// DecodeDTD unpacks every field of a detailed timing descriptor. The result
// is meaningless for monitor descriptors.
func DecodeDTD(d *Descriptor) DetailedTimingDescriptor {
	var dtd DetailedTimingDescriptor
	dtd.PixelClock10KHz = d.PixelClock()
	dtd.HorizontalActive = uint16(d[4]>>4)<<8 | uint16(d[2])
	dtd.HorizontalBlanking = uint16(d[4]&0xF)<<8 | uint16(d[3])
	dtd.VerticalActive = uint16(d[7]>>4)<<8 | uint16(d[5])
	dtd.VerticalBlanking = uint16(d[7]&0xF)<<8 | uint16(d[6])

	dtd.HorizontalFrontPorch = (uint16(d[11])&0xC0)<<2 | uint16(d[8])
	dtd.HorizontalSyncPulseWidth = (uint16(d[11])&0x30)<<4 | uint16(d[9])
	dtd.VerticalFrontPorch = (uint16(d[11])&0xC)<<2 | (uint16(d[10])&0xF0)>>4
	dtd.VerticalSyncPulseWidth = (uint16(d[11])&0x3)<<4 | uint16(d[10])&0xF

	dtd.HorizontalImageSizeMM = (uint16(d[14])&0xF0)<<4 | uint16(d[12])
	dtd.VerticalImageSizeMM = (uint16(d[14])&0xF)<<8 | uint16(d[13])
	dtd.HorizontalBorder = d[15]
	dtd.VerticalBorder = d[16]
	dtd.Interlaced = d[17]&0x80 > 0
	dtd.VerticalSyncPolarity = d[17]&0x4 > 0
	dtd.HorizontalSyncPolarity = d[17]&0x2 > 0

	switch (d[17] & 0x18) >> 3 {
	case 0:
		dtd.SyncType = "Analog composite"
	case 1:
		dtd.SyncType = "Bipolar analog composite"
	case 2:
		dtd.SyncType = "Digital composite (on HSync)"
	case 3:
		dtd.SyncType = "Digital separate"
	}
	dtd.Stereo = StereoMode(d[17] & 0x61)
	return dtd
}

type SyncPolarity bool

const (
	SYNC_ON_POSITIVE SyncPolarity = true
	SYNC_ON_NEGATIVE SyncPolarity = false
)

func (sp SyncPolarity) String() string {
	if sp {
		return "Positive"
	}
	return "Negative"
}

func (sp SyncPolarity) MarshalJSON() ([]byte, error) {
	return quoted(sp.String()), nil
}

func (sp SyncPolarity) MarshalYAML() (interface{}, error) {
	return sp.String(), nil
}

func (sp SyncPolarity) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(sp.String())
}

type StereoMode byte

const (
	Stereo_None                   StereoMode = 0x00
	Stereo_None_Alt               StereoMode = 0x01
	Stereo_Sequential_Right       StereoMode = 0x20
	Stereo_Sequential_Left        StereoMode = 0x40
	Stereo_2way_Interleaved_Right StereoMode = 0x21
	Stereo_2way_Interleaved_Left  StereoMode = 0x41
	Stereo_4way_Interleaved       StereoMode = 0x60
	Stereo_SideBySide_Interleaved StereoMode = 0x61
)

func (sm StereoMode) String() string {
	switch sm {
	case Stereo_None, Stereo_None_Alt:
		return "No Stereo"
	case Stereo_Sequential_Right:
		return "field sequential, right during stereo sync"
	case Stereo_Sequential_Left:
		return "field sequential, left during stereo sync"
	case Stereo_2way_Interleaved_Right:
		return "2-way interleaved, right image on even lines"
	case Stereo_2way_Interleaved_Left:
		return "2-way interleaved, left image on even lines"
	case Stereo_4way_Interleaved:
		return "4-way interleaved"
	case Stereo_SideBySide_Interleaved:
		return "side-by-side interleaved"
	default:
		return "RESERVED"
	}
}

func (sm StereoMode) MarshalJSON() ([]byte, error) {
	return quoted(sm.String()), nil
}

func (sm StereoMode) MarshalYAML() (interface{}, error) {
	return sm.String(), nil
}

func (sm StereoMode) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(sm.String())
}
