package resolver

import (
	"context"
	"fmt"

	"github.com/vk/topoconf/internal/cardinality"
	"github.com/vk/topoconf/internal/configuration"
	"github.com/vk/topoconf/internal/ctxlog"
	"github.com/vk/topoconf/internal/ha"
	"github.com/vk/topoconf/internal/registry"
	"github.com/vk/topoconf/internal/stack"
	"github.com/vk/topoconf/internal/topology"
	"github.com/vk/topoconf/internal/updater"
)

// Resolver orchestrates topology resolution. It holds only immutable state
// (the updater table and stack metadata) and is safe for concurrent use
// across independent calls.
type Resolver struct {
	registry *registry.Registry
	stack    stack.Metadata
}

// New builds a resolver over an updater registry and stack metadata.
func New(reg *registry.Registry, meta stack.Metadata) *Resolver {
	return &Resolver{registry: reg, stack: meta}
}

// mutation is one planned configuration change. Plans are applied only after
// every property resolved without a fatal error.
type mutation struct {
	configType string
	key        string
	value      string
	remove     bool
}

func commit(cfg *configuration.Configuration, plan []mutation) {
	for _, m := range plan {
		if m.remove {
			cfg.Remove(m.configType, m.key)
			continue
		}
		cfg.Set(m.configType, m.key, m.value)
	}
}

// haState is the per-call view of every HA family's activation markers.
type haState struct {
	nameNode  *ha.NameNodeHA
	rmEnabled bool
	hive      bool
	oozie     bool
}

func detectHA(cfg *configuration.Configuration) haState {
	return haState{
		nameNode:  ha.DetectNameNodeHA(cfg),
		rmEnabled: ha.ResourceManagerHAEnabled(cfg),
		hive:      ha.HiveHAEnabled(cfg),
		oozie:     ha.OozieHAEnabled(cfg),
	}
}

func (s haState) nameservices() []string {
	if s.nameNode == nil {
		return nil
	}
	return s.nameNode.Nameservices
}

// effectiveKind applies the HA strategy overrides: Oozie HA switches
// OOZIE_SERVER address properties from single-host to multi-host.
func (s haState) effectiveKind(e registry.Entry) registry.Kind {
	if s.oozie && e.Component == "OOZIE_SERVER" && e.Kind == registry.SingleHost {
		return registry.MultiHost
	}
	return e.Kind
}

// effectiveCardinality applies the HA cardinality overrides: RM HA tolerates
// up to two RESOURCEMANAGER host groups.
func (s haState) effectiveCardinality(e registry.Entry, declared cardinality.Cardinality) cardinality.Cardinality {
	if s.rmEnabled && e.Component == "RESOURCEMANAGER" {
		return ha.ResourceManagerCardinality()
	}
	return declared
}

// ResolveForClusterCreate rewrites every registry-covered property of cfg for
// deployment onto the given topology. Fatal cardinality and reference errors
// are returned before any mutation is committed.
func (r *Resolver) ResolveForClusterCreate(ctx context.Context, top *topology.Topology, cfg *configuration.Configuration) error {
	logger := ctxlog.FromContext(ctx)
	state := detectHA(cfg)

	var plan []mutation
	for _, configType := range cfg.Types() {
		for _, key := range cfg.Keys(configType) {
			entry, ok := r.registry.Lookup(configType, key)
			if !ok {
				continue
			}
			value, _ := cfg.Get(configType, key)

			matches, err := r.matchesFor(state, entry, top)
			if err != nil {
				return fmt.Errorf("resolving %s/%s: %w", configType, key, err)
			}

			res := updater.Resolution{
				Topology:     top,
				Matches:      matches,
				Separator:    entry.ElementSeparator(),
				Nameservices: state.nameservices(),
			}

			var resolved string
			if ha.IsTempletonHiveProperties(entry) {
				result, err := ha.ResolveTempletonHiveProperties(ctx, res, value, false)
				if err != nil {
					return fmt.Errorf("resolving %s/%s: %w", configType, key, err)
				}
				resolved = result.Value
			} else {
				resolved, err = updater.ForClusterCreate(ctx, state.effectiveKind(entry), res, value)
				if err != nil {
					return fmt.Errorf("resolving %s/%s: %w", configType, key, err)
				}
			}

			if resolved != value {
				plan = append(plan, mutation{configType: configType, key: key, value: resolved})
			}
		}
	}

	haPlan, err := r.planNameNodeHA(ctx, state, top, cfg)
	if err != nil {
		return err
	}
	plan = append(plan, haPlan...)

	commit(cfg, plan)
	logger.Debug("Cluster-create resolution committed.", "mutations", len(plan))
	return nil
}

// planNameNodeHA resolves the dynamic per-namenode address family and then
// the hadoop-env active/standby fixups. The fixups are planned strictly after
// the address rewrites (the one declared ordering dependency of a call).
func (r *Resolver) planNameNodeHA(ctx context.Context, state haState, top *topology.Topology, cfg *configuration.Configuration) ([]mutation, error) {
	if state.nameNode == nil {
		return nil, nil
	}

	card, err := r.stack.Cardinality("NAMENODE")
	if err != nil {
		return nil, err
	}
	matches, err := top.GroupsFor("NAMENODE", card)
	if err != nil {
		return nil, fmt.Errorf("resolving NameNode HA addresses: %w", err)
	}

	var plan []mutation
	for _, prop := range state.nameNode.AddressProperties(cfg) {
		value, _ := cfg.Get("hdfs-site", prop.Key)
		resolved, err := state.nameNode.ResolveAddress(top, matches, prop, value)
		if err != nil {
			return nil, fmt.Errorf("resolving hdfs-site/%s: %w", prop.Key, err)
		}
		if resolved != value {
			plan = append(plan, mutation{configType: "hdfs-site", key: prop.Key, value: resolved})
		}
	}

	for _, fixup := range state.nameNode.InitialNameNodeFixups(cfg, matches) {
		plan = append(plan, mutation{configType: fixup.ConfigType, key: fixup.Key, value: fixup.Value})
	}
	return plan, nil
}

// matchesFor runs the host-group index for a property's owning component
// under the effective cardinality. An empty result (optional component not
// deployed) is legal and leaves the property unchanged downstream.
func (r *Resolver) matchesFor(state haState, entry registry.Entry, top *topology.Topology) ([]topology.Match, error) {
	declared, err := r.stack.Cardinality(entry.Component)
	if err != nil {
		return nil, err
	}
	matches, err := top.GroupsFor(entry.Component, state.effectiveCardinality(entry, declared))
	if err != nil {
		return nil, err
	}

	// Without Hive HA there is exactly one live metastore endpoint: the
	// multi-valued URI properties collapse to the first resolved host. A
	// matched group may still be empty in a pre-provisioning topology; the
	// value then stays unchanged downstream.
	if entry.Component == "HIVE_METASTORE" && !state.hive && len(matches) > 0 && len(matches[0].Hosts) > 0 {
		first := matches[0]
		matches = []topology.Match{{Group: first.Group, Hosts: first.Hosts[:1]}}
	}
	return matches, nil
}

// ResolveForBlueprintExport rewrites cfg into its portable, host-group
// relative form. Hosts that map into the topology become placeholder tokens;
// single-host properties naming external hosts are dropped from the result.
// Export never raises cardinality errors.
func (r *Resolver) ResolveForBlueprintExport(ctx context.Context, top *topology.Topology, cfg *configuration.Configuration) error {
	logger := ctxlog.FromContext(ctx)
	state := detectHA(cfg)

	var plan []mutation
	for _, configType := range cfg.Types() {
		for _, key := range cfg.Keys(configType) {
			entry, ok := r.registry.Lookup(configType, key)
			if !ok {
				continue
			}
			value, _ := cfg.Get(configType, key)

			res := updater.Resolution{
				Topology:     top,
				Separator:    entry.ElementSeparator(),
				Nameservices: state.nameservices(),
			}

			var result updater.ExportResult
			var err error
			if ha.IsTempletonHiveProperties(entry) {
				result, err = ha.ResolveTempletonHiveProperties(ctx, res, value, true)
			} else {
				result, err = updater.ForBlueprintExport(ctx, state.effectiveKind(entry), res, value)
			}
			if err != nil {
				return fmt.Errorf("exporting %s/%s: %w", configType, key, err)
			}

			switch {
			case result.Omit:
				plan = append(plan, mutation{configType: configType, key: key, remove: true})
			case result.Value != value:
				plan = append(plan, mutation{configType: configType, key: key, value: result.Value})
			}
		}
	}

	if state.nameNode != nil {
		for _, prop := range state.nameNode.AddressProperties(cfg) {
			value, _ := cfg.Get("hdfs-site", prop.Key)
			res := updater.Resolution{Topology: top, Nameservices: state.nameservices()}
			result, err := updater.ForBlueprintExport(ctx, registry.SingleHost, res, value)
			if err != nil {
				return fmt.Errorf("exporting hdfs-site/%s: %w", prop.Key, err)
			}
			switch {
			case result.Omit:
				plan = append(plan, mutation{configType: "hdfs-site", key: prop.Key, remove: true})
			case result.Value != value:
				plan = append(plan, mutation{configType: "hdfs-site", key: prop.Key, value: result.Value})
			}
		}
	}

	commit(cfg, plan)
	logger.Debug("Blueprint export resolution committed.", "mutations", len(plan))
	return nil
}
