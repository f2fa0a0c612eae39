package hcladapter

import (
	"context"
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/topoconf/internal/config"
	"github.com/vk/topoconf/internal/ctxlog"
	"github.com/vk/topoconf/internal/schema"
)

// translateConfiguration evaluates a configuration block's properties
// expression into a plain string map. Property values must be strings (or
// convertible to strings): the resolver operates on literal values only.
func (l *Loader) translateConfiguration(ctx context.Context, c *schema.Configuration) (*config.Configuration, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Translating configuration block.", "type", c.Type)

	val, diags := c.Properties.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("configuration %q: evaluating properties: %w", c.Type, diags)
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("configuration %q: properties must be a map of strings", c.Type)
	}

	props := make(map[string]string)
	for key, v := range val.AsValueMap() {
		str, err := convert.Convert(v, cty.String)
		if err != nil {
			return nil, fmt.Errorf("configuration %q: property %q: %w", c.Type, key, err)
		}
		if str.IsNull() {
			return nil, fmt.Errorf("configuration %q: property %q is null", c.Type, key)
		}
		props[key] = str.AsString()
	}

	return &config.Configuration{Type: c.Type, Properties: props}, nil
}
