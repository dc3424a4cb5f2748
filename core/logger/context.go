package logger

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/diode"
)

// NewContextWithLogger attaches a console logger writing to w. The returned
// function flushes buffered messages and must be called before exit.
func NewContextWithLogger(ctx context.Context, w io.Writer, debug bool) (context.Context, func()) {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}

	// Ring buffer so logging never blocks the prompt. Closing it must leave
	// w open for whoever prints after the shell, e.g. cobra's error line.
	wr := diode.NewWriter(writerOnly{w}, 1000, 5*time.Millisecond, func(missed int) {
		fmt.Fprintf(w, "logger dropped %d messages\n", missed)
	})

	output := zerolog.ConsoleWriter{
		Out:        wr,
		TimeFormat: time.DateTime,
		PartsOrder: []string{
			zerolog.LevelFieldName,
			zerolog.TimestampFieldName,
			zerolog.MessageFieldName,
		},
	}

	logger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()

	return logger.WithContext(ctx), func() {
		wr.Close()
	}
}

// writerOnly hides any Close method of the wrapped writer.
type writerOnly struct {
	io.Writer
}

// FromCtx returns the logger attached to ctx, or a disabled logger.
func FromCtx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
