// Package linker keeps TypeScript project references in step with the
// monorepo package graph. Two passes share one manifest enumeration: the
// children pass gives every ancestor directory of a package a configuration
// that references its immediate children, and the dependencies pass gives
// every package references to its internal dependencies. Each file is either
// left alone, rewritten (ActionWrite) or reported (ActionLint).
package linker
