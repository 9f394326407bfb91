// Package tsconfig reads and writes TypeScript configuration files. Documents
// keep their key order and leave every value they do not manage untouched, so
// rewriting a file only changes its "references" field.
package tsconfig
