// Package topology models a concrete cluster topology: named host groups,
// each carrying the hostnames assigned to it and the component names deployed
// on it.
//
// The package also provides the host-group index used by the resolver: given
// a component name and its declared cardinality, it either returns the
// ordered matching host groups or classifies the failure (missing component,
// ambiguous host group). A topology is built once per resolution call and
// treated as immutable afterwards.
package topology
