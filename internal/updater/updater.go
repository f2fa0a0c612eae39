package updater

import (
	"context"
	"fmt"

	"github.com/vk/topoconf/internal/registry"
	"github.com/vk/topoconf/internal/topology"
)

// Resolution carries everything a strategy needs for one property: the
// concrete topology, the host groups matched for the property's owning
// component (import direction), the list separator, and the currently
// declared HA nameservices for the pass-through guard.
type Resolution struct {
	Topology     *topology.Topology
	Matches      []topology.Match
	Separator    string
	Nameservices []string
}

func (r Resolution) separator() string {
	if r.Separator == "" {
		return ","
	}
	return r.Separator
}

// hosts flattens the matched host groups in topology declaration order.
func (r Resolution) hosts() []string {
	return topology.HostsFor(r.Matches)
}

// ExportResult is the outcome of an export-direction rewrite. Omit marks a
// property whose host is external to the topology; the orchestrator removes
// it from the exported configuration instead of rewriting it.
type ExportResult struct {
	Value string
	Omit  bool
}

// ForClusterCreate applies the import-direction rewrite for a strategy kind.
// The returned value equals the input whenever the value is pass-through,
// already concrete, external, or malformed for the kind.
func ForClusterCreate(ctx context.Context, kind registry.Kind, res Resolution, value string) (string, error) {
	if isPassThrough(value, res.Nameservices) {
		return value, nil
	}

	switch kind {
	case registry.SingleHost, registry.EmbeddedURL:
		return singleHostCreate(ctx, res, value)
	case registry.MultiHost:
		return multiHostCreate(ctx, res, value)
	case registry.BracketedList:
		return bracketedListCreate(ctx, res, value)
	case registry.PassThrough:
		return value, nil
	default:
		return value, fmt.Errorf("unknown updater kind %s", kind)
	}
}

// ForBlueprintExport applies the export-direction rewrite for a strategy kind.
func ForBlueprintExport(ctx context.Context, kind registry.Kind, res Resolution, value string) (ExportResult, error) {
	if isPassThrough(value, res.Nameservices) {
		return ExportResult{Value: value}, nil
	}

	switch kind {
	case registry.SingleHost:
		return singleHostExport(res, value, true)
	case registry.EmbeddedURL:
		// Embedded URLs (JDBC endpoints and the like) may legitimately point
		// at hosts outside the cluster; those stay literal instead of being
		// dropped from the export.
		return singleHostExport(res, value, false)
	case registry.MultiHost:
		return multiHostExport(ctx, res, value)
	case registry.BracketedList:
		return bracketedListExport(ctx, res, value)
	case registry.PassThrough:
		return ExportResult{Value: value}, nil
	default:
		return ExportResult{}, fmt.Errorf("unknown updater kind %s", kind)
	}
}
