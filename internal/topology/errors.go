package topology

import "fmt"

// MissingComponentError reports a component that cardinality requires at
// least once but that no host group deploys. Fatal for the resolution call.
type MissingComponentError struct {
	Component   string
	Cardinality string
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf("component %q (cardinality %s) is not deployed to any host group", e.Component, e.Cardinality)
}

// AmbiguousHostGroupError reports a component deployed to more host groups
// than its cardinality allows, so no single group can be chosen. Fatal.
type AmbiguousHostGroupError struct {
	Component   string
	Cardinality string
	HostGroups  []string
}

func (e *AmbiguousHostGroupError) Error() string {
	return fmt.Sprintf("component %q (cardinality %s) is deployed to %d host groups %v; cannot choose one",
		e.Component, e.Cardinality, len(e.HostGroups), e.HostGroups)
}

// UnresolvableReferenceError reports an explicit %HOSTGROUP::name% token that
// names a host group absent from the topology. Fatal.
type UnresolvableReferenceError struct {
	HostGroup string
}

func (e *UnresolvableReferenceError) Error() string {
	return fmt.Sprintf("placeholder references host group %q which is not part of the topology", e.HostGroup)
}
