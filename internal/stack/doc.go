// Package stack supplies the read-only stack metadata the resolver consults:
// per-component cardinality, owning service and master flag, and per-service
// configuration types (including excluded types).
//
// A built-in table covers the Hadoop service family the default updater
// registry targets. Blueprint documents may override or extend individual
// components through stack_component blocks.
package stack
