// Package resolver drives both resolution directions over a configuration:
// cluster-create (import) and blueprint export, plus the required-host-group
// report a provisioning caller validates the topology with.
//
// A resolution call is a pure, synchronous, single-threaded transformation.
// The orchestrator first plans every mutation — consulting the updater
// registry, the host-group index guarded by cardinality, and the HA
// specializations — and only commits the plan to the caller's Configuration
// once no fatal error was found. A MissingComponent, AmbiguousHostGroup or
// UnresolvableReference failure therefore leaves the configuration untouched.
// The NameNode HA active/standby fixups are planned as a declared second
// pass, after all per-address rewrites.
package resolver
