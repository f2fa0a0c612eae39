package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/topoconf/internal/cardinality"
	"github.com/vk/topoconf/internal/config"
	"github.com/vk/topoconf/internal/ctxlog"
	"github.com/vk/topoconf/internal/registry"
	"github.com/vk/topoconf/internal/resolver"
	"github.com/vk/topoconf/internal/stack"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	model    *config.Model
	stack    *stack.Stack
	registry *registry.Registry
	resolver *resolver.Resolver
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger. Resolved
// documents are written to outW unless the config names an output path;
// logs are written to logW.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load both documents into the format-agnostic model first.
	cfgModel, err := loader.Load(ctx, appConfig.BlueprintPath, appConfig.TopologyPath)
	if err != nil {
		// A failure to load config is a fatal startup error.
		panic(fmt.Errorf("failed to load configuration: %w", err))
	}
	logger.Debug("Documents loaded and translated into unified model.")

	stk, err := buildStack(cfgModel)
	if err != nil {
		panic(fmt.Errorf("failed to apply stack overrides: %w", err))
	}

	// Validate the integrity of the property table against the stack.
	reg := registry.Default()
	if err := reg.Validate(ctx, stk); err != nil {
		// This is a programmer error (mismatch between table and stack), so
		// we panic.
		panic(err)
	}
	logger.Debug("Property table validation passed.", "entries", reg.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		model:    cfgModel,
		stack:    stk,
		registry: reg,
		resolver: resolver.New(reg, stk),
	}
}

// Model returns the loaded configuration model. This is primarily for testing.
func (a *App) Model() *config.Model {
	return a.model
}

// buildStack starts from the built-in stack definition and layers any
// stack_component override blocks from the loaded documents on top.
func buildStack(model *config.Model) (*stack.Stack, error) {
	stk := stack.Default()
	for _, o := range model.StackOverrides {
		card, err := cardinality.Parse(o.Cardinality)
		if err != nil {
			return nil, fmt.Errorf("stack_component %q: %w", o.Name, err)
		}
		stk.Override(stack.Component{
			Name:        o.Name,
			Service:     o.Service,
			Cardinality: card,
			Master:      o.Master,
		})
	}
	return stk, nil
}
