package updater

import (
	"context"
	"strings"

	"github.com/vk/topoconf/internal/ctxlog"
	"github.com/vk/topoconf/internal/placeholder"
	"github.com/vk/topoconf/internal/topology"
)

// multiHostCreate resolves a separator-joined list of host[:port] tokens.
// Placeholder elements expand to one element per host of the named group;
// default-literal lists expand to the full host list of the matched groups in
// topology order. Lists that already name concrete hosts are left unchanged.
func multiHostCreate(ctx context.Context, res Resolution, value string) (string, error) {
	sep := res.separator()

	if placeholder.Contains(value) {
		return expandPlaceholderList(res.Topology, value, sep)
	}

	elements := splitElements(value, sep)
	if hasEmptyElement(elements) {
		ctxlog.FromContext(ctx).Warn("Value is not a well-formed host list, leaving unchanged.", "value", value)
		return value, nil
	}

	if !listHasDefaultHost(elements) {
		// Concrete or external hosts: idempotent pass-through.
		return value, nil
	}

	hosts := res.hosts()
	if len(hosts) == 0 {
		return value, nil
	}

	// Positional ports: a source list carrying one token per resolved host
	// keeps each position's own port. Otherwise the first element is the
	// template for every expanded host.
	if len(elements) == len(hosts) {
		out := make([]string, len(hosts))
		for i, el := range elements {
			tok, ok := splitHostToken(el)
			if !ok {
				ctxlog.FromContext(ctx).Warn("List element has no host token, leaving value unchanged.", "element", el)
				return value, nil
			}
			out[i] = tok.withHost(hosts[i])
		}
		return strings.Join(out, sep), nil
	}

	tok, ok := splitHostToken(elements[0])
	if !ok {
		ctxlog.FromContext(ctx).Warn("List element has no host token, leaving value unchanged.", "element", elements[0])
		return value, nil
	}
	out := make([]string, len(hosts))
	for i, h := range hosts {
		out[i] = tok.withHost(h)
	}
	return strings.Join(out, sep), nil
}

// expandPlaceholderList expands each placeholder-bearing element to one copy
// per host of its group, preserving the element's surrounding literal text
// (scheme prefixes, ports) on every copy.
func expandPlaceholderList(top *topology.Topology, value, sep string) (string, error) {
	var out []string
	for _, el := range splitElements(value, sep) {
		if !placeholder.Contains(el) {
			out = append(out, el)
			continue
		}

		tokens := placeholder.FindAll(el)
		group, ok := top.Group(tokens[0].HostGroup)
		if !ok || len(group.Hosts) == 0 {
			return "", &topology.UnresolvableReferenceError{HostGroup: tokens[0].HostGroup}
		}

		for _, host := range group.Hosts {
			expanded, err := placeholder.ReplaceAll(el, func(t placeholder.Token) (string, error) {
				if _, ok := top.Group(t.HostGroup); !ok {
					return "", &topology.UnresolvableReferenceError{HostGroup: t.HostGroup}
				}
				if t.HasPort() {
					return host + ":" + t.Port, nil
				}
				return host, nil
			})
			if err != nil {
				return "", err
			}
			out = append(out, expanded)
		}
	}
	return strings.Join(out, sep), nil
}

// multiHostExport maps each host token to its group placeholder, keeping
// ports and collapsing immediately repeated group tokens so N hosts of one
// group export as a single placeholder. External hosts stay literal.
func multiHostExport(ctx context.Context, res Resolution, value string) (ExportResult, error) {
	sep := res.separator()
	elements := splitElements(value, sep)
	if hasEmptyElement(elements) {
		ctxlog.FromContext(ctx).Warn("Value is not a well-formed host list, leaving unchanged.", "value", value)
		return ExportResult{Value: value}, nil
	}

	var out []string
	for _, el := range elements {
		if placeholder.Contains(el) {
			appendUnlessRepeat(&out, el)
			continue
		}
		tok, ok := splitHostToken(el)
		if !ok || isDefaultHost(tok.host) {
			appendUnlessRepeat(&out, el)
			continue
		}
		group, found := res.Topology.GroupOfHost(tok.host)
		if !found {
			appendUnlessRepeat(&out, el)
			continue
		}
		appendUnlessRepeat(&out, tok.withHost(placeholder.Format(group.Name)))
	}
	return ExportResult{Value: strings.Join(out, sep)}, nil
}

// appendUnlessRepeat drops an element identical to the one just emitted,
// which is how placeholder runs for a single group collapse.
func appendUnlessRepeat(out *[]string, el string) {
	if n := len(*out); n > 0 && (*out)[n-1] == el {
		return
	}
	*out = append(*out, el)
}

func listHasDefaultHost(elements []string) bool {
	for _, el := range elements {
		if tok, ok := splitHostToken(el); ok && isDefaultHost(tok.host) {
			return true
		}
	}
	return false
}

func hasEmptyElement(elements []string) bool {
	if len(elements) == 0 {
		return true
	}
	for _, el := range elements {
		if el == "" {
			return true
		}
	}
	return false
}
