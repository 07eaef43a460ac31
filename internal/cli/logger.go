package cli

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

func newLogger(cfg Config, w io.Writer) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return zerolog.Nop(), ErrBadRequest.F("log level %q", cfg.LogLevel)
	}

	var zl zerolog.Logger
	switch strings.ToLower(cfg.LogFormat) {
	case "console", "pretty":
		zl = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true})
	case "json":
		zl = zerolog.New(w)
	default:
		return zerolog.Nop(), ErrBadRequest.F("log format %q, expected console or json", cfg.LogFormat)
	}

	return zl.Level(level).With().Timestamp().Logger(), nil
}
