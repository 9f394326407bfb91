// Package config manages repo-level settings stored in .monoref.yaml at the
// monorepo root, overridable through MONOREF_* environment variables.
package config
