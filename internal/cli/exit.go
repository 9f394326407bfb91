package cli

import (
	"errors"

	"github.com/monoref/monoref/internal/linker"
)

// Process exit codes.
const (
	ExitOK         = 0
	ExitOutOfDate  = 1
	ExitToolFailed = 2
)

// ExitCode maps an error returned by Execute to a process exit code, so CI
// can tell stale references apart from a failed run.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, linker.ErrProjectReferencesOutOfDate):
		return ExitOutOfDate
	default:
		return ExitToolFailed
	}
}
