// Package configuration holds the two-level cluster configuration map
// (configuration type -> property key -> string value) plus the parallel
// attributes map. The resolver mutates a Configuration in place; the caller
// owns it before and after resolution.
package configuration

import "sort"

// Configuration is the mutable property store a resolution call operates on.
type Configuration struct {
	// Properties maps configuration type -> property key -> value, e.g.
	// Properties["hdfs-site"]["dfs.namenode.rpc-address"].
	Properties map[string]map[string]string

	// Attributes maps configuration type -> attribute name -> property key
	// -> attribute value. Carried through untouched except for property
	// removals on export.
	Attributes map[string]map[string]map[string]string
}

// New returns an empty Configuration with both maps allocated.
func New() *Configuration {
	return &Configuration{
		Properties: make(map[string]map[string]string),
		Attributes: make(map[string]map[string]map[string]string),
	}
}

// Get returns the value for (configType, key) and whether it is present.
func (c *Configuration) Get(configType, key string) (string, bool) {
	props, ok := c.Properties[configType]
	if !ok {
		return "", false
	}
	v, ok := props[key]
	return v, ok
}

// Set stores a value, allocating the type map on first use.
func (c *Configuration) Set(configType, key, value string) {
	props, ok := c.Properties[configType]
	if !ok {
		props = make(map[string]string)
		c.Properties[configType] = props
	}
	props[key] = value
}

// Remove drops a property and any attributes recorded for it. Used by export
// when a value references a host outside the topology.
func (c *Configuration) Remove(configType, key string) {
	if props, ok := c.Properties[configType]; ok {
		delete(props, key)
		if len(props) == 0 {
			delete(c.Properties, configType)
		}
	}
	for _, byKey := range c.Attributes[configType] {
		delete(byKey, key)
	}
}

// Types returns all configuration type names in sorted order, for
// deterministic iteration and output.
func (c *Configuration) Types() []string {
	types := make([]string, 0, len(c.Properties))
	for t := range c.Properties {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Keys returns the property keys of one configuration type in sorted order.
func (c *Configuration) Keys(configType string) []string {
	keys := make([]string, 0, len(c.Properties[configType]))
	for k := range c.Properties[configType] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone deep-copies the configuration. The resolver plans against the
// original and never needs the copy, but callers comparing before/after
// states (tests, round-trip checks) do.
func (c *Configuration) Clone() *Configuration {
	out := New()
	for t, props := range c.Properties {
		for k, v := range props {
			out.Set(t, k, v)
		}
	}
	for t, byAttr := range c.Attributes {
		outAttr := make(map[string]map[string]string, len(byAttr))
		for attr, byKey := range byAttr {
			inner := make(map[string]string, len(byKey))
			for k, v := range byKey {
				inner[k] = v
			}
			outAttr[attr] = inner
		}
		out.Attributes[t] = outAttr
	}
	return out
}
