// Package manifest parses and validates the package.json manifests of
// internal monorepo packages. Each manifest is checked against an embedded
// JSON Schema before it is decoded, and knows how to resolve which of its
// declared dependencies are internal to the monorepo.
package manifest
