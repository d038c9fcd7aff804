// Command parser prints the contents of an EDID base block.
//
// The input is either a raw binary dump or, for files ending in .txt, a hex
// dump with arbitrary whitespace. With -interactive hex dumps are read from
// the terminal one per line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/thyge/edidinfo/internal/config"
	"github.com/thyge/edidinfo/internal/hexutil"
	"github.com/thyge/edidinfo/internal/logging"
	"github.com/thyge/edidinfo/internal/render"
)

var (
	edidfile    = flag.String("edidfile", "./edid.bin", "path to edid file")
	configPath  = flag.String("config", "", "optional TOML config file")
	format      = flag.String("format", "", "output format: text, json, yaml, cbor or hex")
	showHex     = flag.Bool("hex", false, "append a hex dump to the text report")
	interactive = flag.Bool("interactive", false, "read hex dumps from the terminal")
)

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logging.Init("parser", "")
			log.Fatal().Err(err).Str("path", *configPath).Msg("failed to load config")
		}
		cfg = loaded
	}
	applyFlags(&cfg)

	logger := logging.Init("parser", cfg.LogLevel)
	if err := config.Validate(cfg); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}
	r := render.New(cfg, logger)

	if *interactive {
		if err := runInteractive(r, logger); err != nil {
			logger.Fatal().Err(err).Msg("interactive session failed")
		}
		return
	}

	edidBytes, err := readEDID(*edidfile)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *edidfile).Msg("unable to read file")
	}
	logger.Debug().Str("path", *edidfile).Int("bytes", len(edidBytes)).Msg("read edid")
	if err := r.Render(os.Stdout, edidBytes); err != nil {
		logger.Fatal().Err(err).Msg("unable to decode EDID")
	}
}

// applyFlags lets explicitly set flags override the config file.
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = strings.ToLower(strings.TrimSpace(*format))
		case "hex":
			cfg.ShowHex = *showHex
		}
	})
}

func readEDID(path string) ([]byte, error) {
	edidBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if filepath.Ext(path) == ".txt" {
		return hexutil.FromDump(string(edidBytes))
	}
	return edidBytes, nil
}

func runInteractive(r *render.Renderer, logger zerolog.Logger) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "edid> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(rl.Stdout(), "Paste an EDID hex dump on one line, or type exit.")
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		input := strings.TrimSpace(line)
		switch input {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		edidBytes, err := hexutil.FromDump(input)
		if err != nil {
			logger.Error().Err(err).Msg("invalid hex")
			continue
		}
		if err := r.Render(rl.Stdout(), edidBytes); err != nil {
			logger.Error().Err(err).Msg("unable to decode EDID")
		}
	}
}
