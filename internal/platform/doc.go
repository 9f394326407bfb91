// Package platform provides cross-platform filesystem helpers: atomic file
// replacement for configuration writes and permission management that is a
// no-op on Windows.
package platform
