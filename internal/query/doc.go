// Package query answers read-only questions about the internal package
// graph of a monorepo, such as which internal packages each package
// depends on.
package query
