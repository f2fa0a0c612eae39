// Package hcladapter is the HCL implementation of config.Loader. It
// discovers .hcl files under the given paths, parses and decodes them against
// the schema package, evaluates property maps to plain strings, and merges
// host groups that appear in both the blueprint and the topology document.
package hcladapter
