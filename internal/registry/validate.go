package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/topoconf/internal/ctxlog"
	"github.com/vk/topoconf/internal/stack"
)

// Validate performs a strict parity check between the updater table and the
// stack metadata: every entry must name a component the stack knows, owned by
// a service that actually declares the entry's configuration type. A mismatch
// is a programmer/packaging error and is reported before any resolution runs.
func (r *Registry) Validate(ctx context.Context, meta stack.Metadata) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, e := range r.Entries() {
		if _, err := meta.Cardinality(e.Component); err != nil {
			errs = append(errs, fmt.Sprintf("entry '%s/%s': component %q unknown to stack", e.ConfigType, e.Key, e.Component))
			continue
		}

		service, ok := meta.ServiceFor(e.Component)
		if !ok {
			errs = append(errs, fmt.Sprintf("entry '%s/%s': component %q has no owning service", e.ConfigType, e.Key, e.Component))
			continue
		}

		// Quorum-style properties legitimately live in another service's
		// config type (e.g. hbase-site lists ZOOKEEPER_SERVER hosts), so the
		// type check only warns.
		owned := false
		for _, ct := range meta.ConfigTypesFor(service) {
			if ct == e.ConfigType {
				owned = true
				break
			}
		}
		if !owned {
			logger.Debug("Updater entry crosses service config types.",
				"type", e.ConfigType, "key", e.Key, "component", e.Component, "service", service)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("updater registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}
