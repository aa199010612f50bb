// Package logging builds the zerolog logger shared by the namegen commands.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures New.
type Options struct {
	Level  string
	Pretty bool
	Output io.Writer
}

// New returns a logger writing to Output (stderr by default). Pretty selects
// the human-readable console writer instead of JSON lines.
func New(opts Options) (zerolog.Logger, error) {
	level := zerolog.WarnLevel
	if raw := strings.TrimSpace(opts.Level); raw != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(raw))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: out != os.Stderr}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
