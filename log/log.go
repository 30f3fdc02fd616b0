// Thin zerolog wrapper shared by the server and the CLI. Stack traces from
// oops errors are marshaled into the "stack" field.
package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

var logger zerolog.Logger

func init() {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.TimeFieldFormat = time.RFC3339
	logger = zerolog.New(os.Stderr).With().Stack().Logger()
}

func Info() *zerolog.Event {
	return logger.Info().Timestamp()
}

func Warn() *zerolog.Event {
	return logger.Warn().Timestamp()
}

func Error() *zerolog.Event {
	return logger.Error().Timestamp()
}

func Fatal() *zerolog.Event {
	return logger.Fatal().Timestamp()
}
