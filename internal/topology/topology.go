package topology

import (
	"fmt"
	"slices"
)

// HostGroup is a named set of hosts sharing one component assignment.
type HostGroup struct {
	Name       string
	Hosts      []string
	Components []string
}

// HasComponent reports whether the named component is deployed on the group.
func (g *HostGroup) HasComponent(component string) bool {
	return slices.Contains(g.Components, component)
}

// HasHost reports whether the hostname is assigned to the group.
func (g *HostGroup) HasHost(host string) bool {
	return slices.Contains(g.Hosts, host)
}

// Topology is the concrete cluster shape a blueprint is resolved against.
// Host group order is the declaration order and is observable: multi-host
// expansions concatenate hosts in this order.
type Topology struct {
	groups []*HostGroup
	byName map[string]*HostGroup
}

// New builds a topology from host groups in declaration order. Duplicate
// group names and hosts assigned to more than one group violate the topology
// invariants and are rejected.
func New(groups ...*HostGroup) (*Topology, error) {
	t := &Topology{byName: make(map[string]*HostGroup, len(groups))}
	hostOwner := make(map[string]string)

	for _, g := range groups {
		if g.Name == "" {
			return nil, fmt.Errorf("host group with empty name")
		}
		if _, exists := t.byName[g.Name]; exists {
			return nil, fmt.Errorf("duplicate host group name: %q", g.Name)
		}
		for _, h := range g.Hosts {
			if owner, taken := hostOwner[h]; taken {
				return nil, fmt.Errorf("host %q assigned to host groups %q and %q", h, owner, g.Name)
			}
			hostOwner[h] = g.Name
		}
		t.byName[g.Name] = g
		t.groups = append(t.groups, g)
	}
	return t, nil
}

// Groups returns all host groups in declaration order.
func (t *Topology) Groups() []*HostGroup {
	return t.groups
}

// Group looks a host group up by name.
func (t *Topology) Group(name string) (*HostGroup, bool) {
	g, ok := t.byName[name]
	return g, ok
}

// GroupOfHost returns the host group a hostname belongs to. Export direction
// uses this to map concrete hosts back to placeholder tokens; a miss means
// the host is external to the cluster.
func (t *Topology) GroupOfHost(host string) (*HostGroup, bool) {
	for _, g := range t.groups {
		if g.HasHost(host) {
			return g, true
		}
	}
	return nil, false
}

// HasHost reports whether any host group contains the hostname.
func (t *Topology) HasHost(host string) bool {
	_, ok := t.GroupOfHost(host)
	return ok
}

// GroupNames returns all host group names in declaration order.
func (t *Topology) GroupNames() []string {
	names := make([]string, 0, len(t.groups))
	for _, g := range t.groups {
		names = append(names, g.Name)
	}
	return names
}
