package registry

import (
	"fmt"
	"log/slog"
	"sort"
)

// Kind is the closed set of rewrite strategy variants.
type Kind int

const (
	// SingleHost expects exactly one host[:port] token (or a placeholder /
	// default literal on import).
	SingleHost Kind = iota

	// MultiHost expects a separator-joined list of host[:port] tokens.
	MultiHost

	// EmbeddedURL rewrites only the host substring inside a larger literal
	// such as a JDBC URL.
	EmbeddedURL

	// BracketedList expects a bracket-delimited, single-quoted list, e.g.
	// ['h1:2181','h2:2181'], with MultiHost semantics per element.
	BracketedList

	// PassThrough registers a property the resolver must recognize but never
	// rewrite.
	PassThrough
)

func (k Kind) String() string {
	switch k {
	case SingleHost:
		return "single-host"
	case MultiHost:
		return "multi-host"
	case EmbeddedURL:
		return "embedded-url"
	case BracketedList:
		return "bracketed-list"
	case PassThrough:
		return "pass-through"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Entry binds one (configuration type, property key) pair to its strategy.
type Entry struct {
	ConfigType string
	Key        string
	Component  string // owning component, resolved through the host-group index
	Kind       Kind
	Separator  string // MultiHost/BracketedList element separator; "," when empty
}

// ElementSeparator returns the list separator, defaulting to a comma.
func (e Entry) ElementSeparator() string {
	if e.Separator == "" {
		return ","
	}
	return e.Separator
}

type tableKey struct {
	configType string
	key        string
}

// Registry is the immutable (type, key) -> Entry table.
type Registry struct {
	entries map[tableKey]Entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[tableKey]Entry)}
}

// Register adds one entry. Registering the same (type, key) twice is a
// programmer error and panics, matching the one-table-at-init contract.
func (r *Registry) Register(e Entry) {
	k := tableKey{configType: e.ConfigType, key: e.Key}
	if _, exists := r.entries[k]; exists {
		panic(fmt.Sprintf("updater for '%s/%s' already registered", e.ConfigType, e.Key))
	}
	slog.Debug("Registering property updater.", "type", e.ConfigType, "key", e.Key, "kind", e.Kind.String())
	r.entries[k] = e
}

// Lookup returns the entry for a property, if one is registered.
func (r *Registry) Lookup(configType, key string) (Entry, bool) {
	e, ok := r.entries[tableKey{configType: configType, key: key}]
	return e, ok
}

// Entries returns all entries sorted by (type, key) for deterministic
// iteration.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ConfigType != out[j].ConfigType {
			return out[i].ConfigType < out[j].ConfigType
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
