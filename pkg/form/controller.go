package form

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-namegen/pkg/engine"
	"github.com/goliatone/go-namegen/pkg/model"
)

// Option customises a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for selection and copy events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// WithClipboard replaces the system clipboard. Passing nil disables copy.
func WithClipboard(cb Clipboard) Option {
	return func(c *Controller) {
		c.clipboard = cb
	}
}

// WithExampleCount sets how many examples accompany a selected entry. Zero or
// less disables examples.
func WithExampleCount(n int) Option {
	return func(c *Controller) {
		c.exampleCount = n
	}
}

// WithExampleOptions forwards options to engine.Examples.
func WithExampleOptions(opts ...engine.ExampleOption) Option {
	return func(c *Controller) {
		c.exampleOpts = append(c.exampleOpts, opts...)
	}
}

// Controller connects a catalog to a surface.
type Controller struct {
	catalog      model.Catalog
	surface      Surface
	logger       zerolog.Logger
	clipboard    Clipboard
	exampleCount int
	exampleOpts  []engine.ExampleOption
	session      *Session
}

// New constructs a Controller. A nil surface is replaced by NopSurface.
func New(catalog model.Catalog, surface Surface, options ...Option) *Controller {
	if surface == nil {
		surface = NopSurface{}
	}
	c := &Controller{
		catalog:      catalog,
		surface:      surface,
		logger:       zerolog.Nop(),
		clipboard:    SystemClipboard{},
		exampleCount: engine.DefaultExampleCount,
	}
	for _, opt := range options {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Catalog returns the catalog the controller was built with.
func (c *Controller) Catalog() model.Catalog {
	return c.catalog
}

// Entries lists the selectable entries.
func (c *Controller) Entries() []model.Summary {
	return c.catalog.Summaries()
}

// Present pushes the entry list to the surface.
func (c *Controller) Present() {
	c.surface.ShowEntries(c.catalog.Summaries())
}

// Warn forwards a user-visible notice to the surface.
func (c *Controller) Warn(message string) {
	if message == "" {
		return
	}
	c.surface.Warn(message)
}

// Select opens a session for the entry. An empty id clears the current
// session and hides the form.
func (c *Controller) Select(id string) (*Session, error) {
	if id == "" {
		c.session = nil
		c.surface.Hide()
		return nil, nil
	}
	entry, ok := c.catalog.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEntryNotFound, id)
	}

	session := &Session{
		entry:     entry,
		states:    make(map[string]engine.FieldState, len(entry.Fields)),
		surface:   c.surface,
		clipboard: c.clipboard,
		logger:    c.logger.With().Str("entry", entry.ID).Logger(),
	}
	c.session = session

	c.surface.ShowForm(View{
		Entry:    entry.Summary(),
		Template: entry.Template,
		Fields:   Describe(entry),
	})
	session.recompute()
	session.examples = engine.Examples(entry, c.exampleCount, c.exampleOpts...)
	c.surface.ShowExamples(session.Examples())

	c.logger.Debug().Str("entry", entry.ID).Int("fields", len(entry.Fields)).Msg("entry selected")
	return session, nil
}

// Session returns the active session or ErrNoSession.
func (c *Controller) Session() (*Session, error) {
	if c.session == nil {
		return nil, ErrNoSession
	}
	return c.session, nil
}
