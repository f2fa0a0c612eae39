// Package ha implements the high-availability specializations layered over
// the base update strategies: NameNode HA, ResourceManager HA, Hive
// Metastore/Server2 HA and Oozie HA.
//
// Each family detects its own activation marker in the current configuration
// and, when active, overrides how the resolver treats a dynamic family of
// property names: relaxed cardinality, multi-host instead of single-host
// semantics, or per-namenode address resolution. The NameNode active/standby
// fixups are exposed as an explicit list the orchestrator applies as a second
// pass, after every per-address rewrite.
package ha
