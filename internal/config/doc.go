// Package config defines the format-agnostic document model for a resolution
// run — the blueprint (host groups plus configuration template), the concrete
// topology bindings, and optional stack overrides — along with the Loader
// interface format-specific parsers implement.
//
// The config.Model is the single source of truth handed to the application
// layer; the HCL implementation lives in the hcladapter package.
package config
