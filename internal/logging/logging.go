package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const EnvLogLevel = "EDIDINFO_LOG_LEVEL"

type Profile int

const (
	ProfileRuntime Profile = iota
	ProfileTest
)

// Init builds the console logger for app, installs it as the zerolog global
// logger and returns it. level may be empty; EDIDINFO_LOG_LEVEL wins over it.
func Init(app string, level string) zerolog.Logger {
	return New(os.Stderr, app, level, ProfileRuntime)
}

func New(out io.Writer, app string, level string, profile Profile) zerolog.Logger {
	lvl := defaultLevel(profile)
	if l, ok := ParseLevel(level); ok {
		lvl = l
	}
	if l, ok := ParseLevel(os.Getenv(EnvLogLevel)); ok {
		lvl = l
	}

	output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: profile == ProfileTest}
	ctx := zerolog.New(output).Level(lvl).With().Str("app", app)
	if profile == ProfileRuntime {
		ctx = ctx.Timestamp()
	}
	logger := ctx.Logger()
	log.Logger = logger
	return logger
}

func defaultLevel(profile Profile) zerolog.Level {
	if profile == ProfileTest {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// ParseLevel accepts the level names used in config files and the
// environment. The bool is false for empty or unknown input.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
