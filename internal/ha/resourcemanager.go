package ha

import (
	"github.com/vk/topoconf/internal/cardinality"
	"github.com/vk/topoconf/internal/configuration"
)

// ResourceManagerHAEnabled reports whether YARN ResourceManager HA is active.
func ResourceManagerHAEnabled(cfg *configuration.Configuration) bool {
	v, ok := cfg.Get("yarn-site", "yarn.resourcemanager.ha.enabled")
	return ok && v == "true"
}

// ResourceManagerCardinality is the relaxed constraint applied to
// RESOURCEMANAGER-owned properties while RM HA is active: up to two host
// groups resolve without an ambiguity failure. Hosts already supplied as
// FQDNs are left untouched by the base single-host strategy.
func ResourceManagerCardinality() cardinality.Cardinality {
	return cardinality.Cardinality{Min: 1, Max: 2}
}
