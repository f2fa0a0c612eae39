package topology

import "github.com/vk/topoconf/internal/cardinality"

// Match is one host group found to deploy a component, paired with its hosts
// in declared order.
type Match struct {
	Group *HostGroup
	Hosts []string
}

// GroupsFor scans all host groups for a component and classifies the result
// against the component's cardinality:
//
//   - zero matches while cardinality requires at least one yields
//     *MissingComponentError;
//   - more matches than a max-1 cardinality allows yields
//     *AmbiguousHostGroupError;
//   - zero matches for an optional component yields an empty, non-nil-error
//     result — the caller must leave the property untouched;
//   - otherwise all matches are returned in topology declaration order and
//     the caller chooses how to combine them.
func (t *Topology) GroupsFor(component string, card cardinality.Cardinality) ([]Match, error) {
	var matches []Match
	for _, g := range t.groups {
		if g.HasComponent(component) {
			matches = append(matches, Match{Group: g, Hosts: g.Hosts})
		}
	}

	if len(matches) == 0 {
		if card.Min >= 1 {
			return nil, &MissingComponentError{Component: component, Cardinality: card.String()}
		}
		return nil, nil
	}

	if len(matches) > 1 && card.Max == 1 {
		names := make([]string, 0, len(matches))
		for _, m := range matches {
			names = append(names, m.Group.Name)
		}
		return nil, &AmbiguousHostGroupError{Component: component, Cardinality: card.String(), HostGroups: names}
	}

	return matches, nil
}

// HostsFor concatenates the hosts of every group matched for a component, in
// topology declaration order. Multi-host strategies use this flattened view.
func HostsFor(matches []Match) []string {
	var hosts []string
	for _, m := range matches {
		hosts = append(hosts, m.Hosts...)
	}
	return hosts
}
