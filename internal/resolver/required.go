package resolver

import (
	"context"
	"sort"

	"github.com/vk/topoconf/internal/configuration"
	"github.com/vk/topoconf/internal/placeholder"
	"github.com/vk/topoconf/internal/topology"
	"github.com/vk/topoconf/internal/updater"
)

// RequiredHostGroups reports the host group names the configuration actually
// depends on: every group named by a placeholder token in a registry-covered
// property, plus every group a default-literal property would resolve to.
// Provisioning callers use the result to validate topology completeness
// before creating anything; groups named by placeholders are reported even
// when absent from the topology so the caller can see the gap.
func (r *Resolver) RequiredHostGroups(ctx context.Context, top *topology.Topology, cfg *configuration.Configuration) ([]string, error) {
	state := detectHA(cfg)
	required := make(map[string]struct{})

	for _, configType := range cfg.Types() {
		for _, key := range cfg.Keys(configType) {
			entry, ok := r.registry.Lookup(configType, key)
			if !ok {
				continue
			}
			value, _ := cfg.Get(configType, key)

			for _, tok := range placeholder.FindAll(value) {
				required[tok.HostGroup] = struct{}{}
			}
			if placeholder.Contains(value) {
				continue
			}

			// A default literal resolves to the owning component's groups.
			if !wouldResolveDefault(value, entry.ElementSeparator()) {
				continue
			}
			matches, err := r.matchesFor(state, entry, top)
			if err != nil {
				return nil, err
			}
			for _, m := range matches {
				required[m.Group.Name] = struct{}{}
			}
		}
	}

	if state.nameNode != nil {
		for _, prop := range state.nameNode.AddressProperties(cfg) {
			value, _ := cfg.Get("hdfs-site", prop.Key)
			for _, tok := range placeholder.FindAll(value) {
				required[tok.HostGroup] = struct{}{}
			}
		}
	}

	out := make([]string, 0, len(required))
	for name := range required {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// wouldResolveDefault reports whether import-direction resolution would
// rewrite the value because it carries a default host literal.
func wouldResolveDefault(value, separator string) bool {
	return updater.ListHasDefaultHost(value, separator)
}
