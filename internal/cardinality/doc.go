// Package cardinality parses and evaluates component-count constraints as
// declared by stack metadata, e.g. "1", "1+", "0-1".
//
// A cardinality is a closed range {Min, Max} over the number of host groups
// (or hosts) a component is deployed to. Malformed specs are a
// configuration-integrity fault: stack metadata is authored, not user input,
// so Parse returns an error rather than guessing.
package cardinality
