package updater

import (
	"context"

	"github.com/vk/topoconf/internal/ctxlog"
	"github.com/vk/topoconf/internal/placeholder"
	"github.com/vk/topoconf/internal/topology"
)

// singleHostCreate resolves a single host[:port] token (possibly embedded in
// a URL) for cluster creation. Rewrites happen only for placeholder tokens
// and default literals; concrete hosts — in or out of the topology — pass
// through untouched, which also makes the operation idempotent.
func singleHostCreate(ctx context.Context, res Resolution, value string) (string, error) {
	if placeholder.Contains(value) {
		return resolvePlaceholdersSingle(res.Topology, value)
	}

	tok, ok := splitHostToken(value)
	if !ok {
		ctxlog.FromContext(ctx).Warn("Value has no recognizable host token, leaving unchanged.", "value", value)
		return value, nil
	}
	if !isDefaultHost(tok.host) {
		return value, nil
	}

	hosts := res.hosts()
	if len(hosts) == 0 {
		// Optional component not deployed: the default stays.
		return value, nil
	}
	return tok.withHost(hosts[0]), nil
}

// resolvePlaceholdersSingle substitutes each %HOSTGROUP::name% token with the
// first host of the named group, keeping any :port suffix.
func resolvePlaceholdersSingle(top *topology.Topology, value string) (string, error) {
	return placeholder.ReplaceAll(value, func(t placeholder.Token) (string, error) {
		group, ok := top.Group(t.HostGroup)
		if !ok || len(group.Hosts) == 0 {
			return "", &topology.UnresolvableReferenceError{HostGroup: t.HostGroup}
		}
		host := group.Hosts[0]
		if t.HasPort() {
			return host + ":" + t.Port, nil
		}
		return host, nil
	})
}

// singleHostExport maps the value's host back to its host group placeholder.
// When the host is external, omitWhenExternal decides between dropping the
// property (plain single-host) and keeping it literal (embedded URLs).
func singleHostExport(res Resolution, value string, omitWhenExternal bool) (ExportResult, error) {
	if placeholder.Contains(value) {
		// Already portable.
		return ExportResult{Value: value}, nil
	}

	tok, ok := splitHostToken(value)
	if !ok || isDefaultHost(tok.host) {
		return ExportResult{Value: value}, nil
	}

	group, found := res.Topology.GroupOfHost(tok.host)
	if !found {
		if omitWhenExternal {
			return ExportResult{Omit: true}, nil
		}
		return ExportResult{Value: value}, nil
	}
	return ExportResult{Value: tok.withHost(placeholder.Format(group.Name))}, nil
}
