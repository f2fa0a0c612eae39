// Package registry provides the updater registry: the immutable table that
// tells the resolver, per (configuration type, property key), which rewrite
// strategy applies and which component owns the property.
//
// The table is built once at startup and is read-only afterwards, so a single
// registry is safe to share across concurrent resolution calls. Properties
// with no registry entry are never touched by the resolver.
//
// Strategies are a closed tagged-variant set (Kind) rather than an open
// hierarchy: every entry carries the data its strategy needs and nothing
// else. At startup the registry is validated against the stack metadata so a
// table/stack mismatch fails loudly before any resolution runs.
package registry
