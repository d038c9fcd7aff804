package edid

import "fmt"

// Variant is the decoded form of a descriptor. The concrete types are
// TimingVariant, RangeLimitsVariant, TextVariant and UnknownVariant.
type Variant interface {
	Kind() DescriptorKind
	Summary() string
}

type TimingVariant struct {
	Timing  DetailedTimingDescriptor
	summary string
}

func (v TimingVariant) Kind() DescriptorKind { return KindDetailedTiming }
func (v TimingVariant) Summary() string      { return v.summary }

type RangeLimitsVariant struct {
	Limits RangeLimits
}

func (v RangeLimitsVariant) Kind() DescriptorKind { return KindRangeLimits }
func (v RangeLimitsVariant) Summary() string      { return v.Limits.String() }

type TextVariant struct {
	TextKind DescriptorKind
	Text     string
}

func (v TextVariant) Kind() DescriptorKind { return v.TextKind }
func (v TextVariant) Summary() string      { return v.Text }

// UnknownVariant covers reserved and manufacturer tags as well as blocks
// whose header is neither a pixel clock nor a monitor descriptor.
type UnknownVariant struct {
	Type DescriptorType
}

func (v UnknownVariant) Kind() DescriptorKind { return KindUnknown }
func (v UnknownVariant) Summary() string      { return fmt.Sprintf("type %s", v.Type) }

type variantDecoder func(d *Descriptor) Variant

var variantDecoders = map[DescriptorKind]variantDecoder{
	KindDetailedTiming: func(d *Descriptor) Variant {
		return TimingVariant{Timing: DecodeDTD(d), summary: DecodeDetailedTiming(d)}
	},
	KindRangeLimits: func(d *Descriptor) Variant {
		return RangeLimitsVariant{Limits: ParseRangeLimits(d)}
	},
}

// Classify decodes d with the decoder registered for its kind. Kinds with a
// text field share one decoder.
func Classify(d *Descriptor) Variant {
	kind := d.Kind()
	if kind.IsText() {
		return TextVariant{TextKind: kind, Text: DecodeText(d)}
	}
	if decode, ok := variantDecoders[kind]; ok {
		return decode(d)
	}
	return UnknownVariant{Type: d.Type()}
}
