package tui

import (
	"io"

	"github.com/rs/zerolog"
)

// Option configures a Runner.
type Option func(*Runner)

// WithPromptDriver overrides the prompt driver.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Runner) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutput redirects surface output.
func WithOutput(out io.Writer) Option {
	return func(r *Runner) {
		if out != nil {
			r.out = out
		}
	}
}

// WithStyles replaces the default styles.
func WithStyles(styles Styles) Option {
	return func(r *Runner) {
		r.styles = styles
	}
}

// WithCopyPrompt toggles the final copy-to-clipboard question.
func WithCopyPrompt(enabled bool) Option {
	return func(r *Runner) {
		r.copyPrompt = enabled
	}
}

// WithLogger sets the logger used for flow events.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}
