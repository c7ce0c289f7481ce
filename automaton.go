package automaton

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	loamAdapter "github.com/aretw0/automaton/pkg/adapters/loam"
	"github.com/aretw0/automaton/pkg/dfa"
	"github.com/aretw0/automaton/pkg/domain"
	"github.com/aretw0/automaton/pkg/ports"
	"github.com/aretw0/automaton/pkg/schema"
)

// Catalog is the high-level entry point of the library.
// It loads definitions, builds automata and reports decisions through hooks.
type Catalog struct {
	loader ports.DefinitionLoader
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	clock  func() time.Time
	Name   string
}

var _ ports.Catalog = (*Catalog)(nil)

// Option defines a functional option for configuring the Catalog.
type Option func(*Catalog)

// WithLoader injects a custom DefinitionLoader, bypassing the default Loam initialization.
func WithLoader(l ports.DefinitionLoader) Option {
	return func(c *Catalog) {
		c.loader = l
	}
}

// WithHooks registers observability hooks. Calling it more than once merges the hooks.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(c *Catalog) {
		c.hooks = c.hooks.Merge(hooks)
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

// WithClock overrides the time source used to stamp events.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		c.clock = now
	}
}

// New initializes a Catalog.
// By default, it reads a Loam repository at dir.
// If WithLoader is provided, dir can be empty and Loam is skipped.
func New(dir string, opts ...Option) (*Catalog, error) {
	c := &Catalog{clock: time.Now}
	for _, opt := range opts {
		opt(c)
	}

	if c.loader == nil {
		if dir == "" {
			return nil, fmt.Errorf("dir is required when no custom loader is provided")
		}
		loader, err := loamAdapter.Open(dir)
		if err != nil {
			return nil, err
		}
		c.loader = loader
	}
	if dir != "" {
		c.Name = filepath.Base(dir)
	}

	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.Name != "" {
		c.logger = c.logger.With("catalog", c.Name)
	}
	return c, nil
}

// Loader returns the loader backing the catalog.
func (c *Catalog) Loader() ports.DefinitionLoader {
	return c.loader
}

// List returns the names of the available automata.
func (c *Catalog) List(ctx context.Context) ([]string, error) {
	return c.loader.List(ctx)
}

// Definition returns the raw definition of the named automaton.
func (c *Catalog) Definition(ctx context.Context, name string) (*domain.Definition, error) {
	return c.loader.Get(ctx, name)
}

// Get loads and builds the named automaton.
func (c *Catalog) Get(ctx context.Context, name string) (*dfa.DFA, error) {
	def, err := c.loader.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	d, err := schema.Build(def)
	if err != nil {
		return nil, fmt.Errorf("automaton %s: %w", name, err)
	}
	return d, nil
}

// Trace runs input through the named automaton and reports the decision.
func (c *Catalog) Trace(ctx context.Context, name, input string) (dfa.Run, error) {
	d, err := c.Get(ctx, name)
	if err != nil {
		return dfa.Run{}, err
	}
	run := d.Trace(input)

	c.logger.Debug("decision", "automaton", name, "input", input, "status", run.Status)
	if c.hooks.OnAccept != nil {
		event := &domain.AcceptEvent{
			EventBase: c.event(domain.EventAccept, name),
			Input:     input,
			Path:      run.Path,
			Accepted:  run.Accepted(),
		}
		if run.Err != nil {
			event.Reason = run.Err.Error()
		}
		c.hooks.OnAccept(ctx, event)
	}
	return run, nil
}

// Accepts decides whether input belongs to the language of the named automaton.
func (c *Catalog) Accepts(ctx context.Context, name, input string) (bool, error) {
	run, err := c.Trace(ctx, name, input)
	if err != nil {
		return false, err
	}
	return run.Accepted(), nil
}

// Swap returns a new automaton with symbols a and b interchanged.
// The stored definition is left untouched.
func (c *Catalog) Swap(ctx context.Context, name string, a, b dfa.Symbol) (*dfa.DFA, error) {
	d, err := c.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	swapped := d.Swap(a, b)

	c.logger.Debug("swap", "automaton", name, "a", a, "b", b)
	if c.hooks.OnSwap != nil {
		c.hooks.OnSwap(ctx, &domain.SwapEvent{
			EventBase: c.event(domain.EventSwap, name),
			A:         a.String(),
			B:         b.String(),
		})
	}
	return swapped, nil
}

func (c *Catalog) event(t domain.EventType, name string) domain.EventBase {
	return domain.EventBase{
		Timestamp: c.clock(),
		Type:      t,
		Automaton: name,
	}
}
