package logging

import (
	"io"
	"os"
	"time"

	"github.com/chronos-tachyon/grin/internal/config"
	"github.com/rs/zerolog"
)

// New builds the process logger from the logger.* settings.  Logs go to
// stderr so that they never mix with data written to stdout.
func New(conf *config.Conf) (zerolog.Logger, error) {
	return newLogger(conf, os.Stderr)
}

func newLogger(conf *config.Conf, out io.Writer) (zerolog.Logger, error) {
	zerolog.TimeFieldFormat = conf.String("logger.time-format", time.RFC3339)

	l, err := zerolog.ParseLevel(conf.String("logger.level", "info"))
	if err != nil {
		return zerolog.Nop(), err
	}

	if conf.Bool("logger.prettier", false) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: zerolog.TimeFieldFormat}
	}

	return zerolog.New(out).Level(l).With().Timestamp().Str("name", "grin").Logger(), nil
}
