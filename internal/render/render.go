// Package render writes a decoded EDID base block in one of the configured
// output formats.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	edid "github.com/thyge/edidinfo"
	"github.com/thyge/edidinfo/internal/config"
	"github.com/thyge/edidinfo/internal/hexutil"
)

var encMode cbor.EncMode

func init() {
	var err error
	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}
}

type Renderer struct {
	cfg    config.Config
	logger zerolog.Logger
}

func New(cfg config.Config, logger zerolog.Logger) *Renderer {
	return &Renderer{cfg: cfg, logger: logger}
}

// Render decodes b and writes it to w.
func (r *Renderer) Render(w io.Writer, b []byte) error {
	if err := config.Validate(r.cfg); err != nil {
		return err
	}
	info, err := edid.Decode(b)
	if err != nil {
		return err
	}
	r.inspect(info, len(b))

	if !r.cfg.VendorNames {
		info.Vendor = ""
	}

	switch r.cfg.Format {
	case config.FormatText:
		return r.text(w, b)
	case config.FormatJSON:
		pretty, err := json.MarshalIndent(info, "", "    ")
		if err != nil {
			return fmt.Errorf("render json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(pretty))
		return err
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(info); err != nil {
			return fmt.Errorf("render yaml: %w", err)
		}
		return enc.Close()
	case config.FormatCBOR:
		data, err := encMode.Marshal(info)
		if err != nil {
			return fmt.Errorf("render cbor: %w", err)
		}
		_, err = w.Write(data)
		return err
	case config.FormatHex:
		return hexutil.Dump(w, b[:edid.BlockSize])
	}
	return fmt.Errorf("render: unsupported format %q", r.cfg.Format)
}

func (r *Renderer) text(w io.Writer, b []byte) error {
	report, err := edid.Describe(b)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, report); err != nil {
		return err
	}
	if r.cfg.ShowHex {
		return hexutil.Dump(w, b[:edid.BlockSize])
	}
	return nil
}

// inspect logs findings that do not stop decoding.
func (r *Renderer) inspect(info *edid.Info, size int) {
	if !info.HeaderValid {
		r.logger.Warn().Msg("fixed EDID header missing")
	}
	if !info.ChecksumValid {
		r.logger.Warn().Uint8("stored", info.Checksum).Msg("checksum mismatch")
	}
	for _, d := range info.Descriptors {
		if d.Kind == edid.KindUnknown.String() {
			r.logger.Debug().Int("index", d.Index).Str("type", d.Type).Msg("unknown descriptor")
		}
	}
	if info.ExtensionCount > 0 || size > edid.BlockSize {
		r.logger.Info().Int("extensions", info.ExtensionCount).Int("bytes", size).Msg("extension blocks are not decoded")
	}
}
