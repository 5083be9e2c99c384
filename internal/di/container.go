// Package di wires module dependencies: logger provider, tag registry,
// document parser, and the render fold.
package di

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-landing/internal/logging"
	"github.com/goliatone/go-landing/internal/logging/gologger"
	"github.com/goliatone/go-landing/internal/markdown"
	"github.com/goliatone/go-landing/internal/render"
	"github.com/goliatone/go-landing/internal/runtimeconfig"
	"github.com/goliatone/go-landing/internal/tags"
	"github.com/goliatone/go-landing/pkg/interfaces"
)

// Container holds the wired services behind the facade.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	registry       interfaces.TagRegistry
	definitions    []interfaces.TagDefinition
	parser         interfaces.DocumentParser
	renderer       interfaces.PageRenderer
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the provider built from config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithRegistry replaces the default registry implementation.
func WithRegistry(registry interfaces.TagRegistry) Option {
	return func(c *Container) {
		c.registry = registry
	}
}

// WithDefinitions registers additional tag definitions after the builtin
// catalogue.
func WithDefinitions(defs ...interfaces.TagDefinition) Option {
	return func(c *Container) {
		c.definitions = append(c.definitions, defs...)
	}
}

// NewContainer validates the configuration and wires the services.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{Config: cfg}

	for _, opt := range opts {
		opt(c)
	}

	if c.loggerProvider == nil {
		provider, err := buildLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	if c.registry == nil {
		c.registry = tags.NewRegistry(tags.NewValidator())
	}

	if !cfg.Tags.DisableBuiltin {
		for _, def := range tags.Builtin() {
			if err := c.registry.Register(def); err != nil {
				return nil, fmt.Errorf("di: register builtin tag %s: %w", def.Name, err)
			}
		}
	}
	for _, def := range c.definitions {
		if err := c.registry.Register(def); err != nil {
			return nil, fmt.Errorf("di: register tag %s: %w", def.Name, err)
		}
	}

	c.parser = markdown.NewParser(markdown.Config{
		Extensions: cfg.Markdown.Extensions,
	})
	c.renderer = render.New(c.registry,
		render.WithLogger(logging.RenderLogger(c.loggerProvider)),
	)

	return c, nil
}

// LoggerProvider exposes the wired logging provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// Registry exposes the wired tag registry.
func (c *Container) Registry() interfaces.TagRegistry {
	return c.registry
}

// Parser exposes the wired document parser.
func (c *Container) Parser() interfaces.DocumentParser {
	return c.parser
}

// Renderer exposes the wired page renderer.
func (c *Container) Renderer() interfaces.PageRenderer {
	return c.renderer
}

func buildLoggerProvider(cfg runtimeconfig.LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "noop":
		return noopProvider{}, nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
		})
	default:
		return nil, fmt.Errorf("%w: %s", runtimeconfig.ErrLoggingProviderUnknown, cfg.Provider)
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}
