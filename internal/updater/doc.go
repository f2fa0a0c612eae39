// Package updater implements the base rewrite strategies the resolver
// dispatches to: single-host, multi-host, embedded-URL and bracketed-list,
// plus the pass-through guards that protect wildcard binds, sentinel literals
// and HA nameservice references.
//
// Strategies are pure string transformations. Everything that is not a host
// token — ports, paths, scheme prefixes, surrounding literal text — survives
// a rewrite byte-for-byte in both directions. Values whose shape does not
// match the registered strategy are left unchanged (lenient policy: unknown
// custom values must never block provisioning); only unresolvable
// %HOSTGROUP::...% references are fatal.
package updater
