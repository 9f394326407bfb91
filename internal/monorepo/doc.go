// Package monorepo discovers the internal packages of a JavaScript monorepo.
// Workspace globs are read from lerna.json, the root package.json
// "workspaces" field or pnpm-workspace.yaml, expanded against the
// filesystem, and each matching package.json is parsed into a manifest.
package monorepo
