package linker

import (
	"errors"
	"fmt"
)

// ErrProjectReferencesOutOfDate is returned by a lint run that found at least
// one stale configuration file. It is an expected result, not a failure of
// the tool, and never wraps another error.
var ErrProjectReferencesOutOfDate = errors.New("TypeScript project references are not up-to-date")

// ErrorKind classifies a LinkError.
type ErrorKind int

const (
	// KindEnumerateManifests covers discovering or parsing package manifests.
	KindEnumerateManifests ErrorKind = iota + 1
	// KindReadConfig covers reading or decoding a configuration file.
	KindReadConfig
	// KindWriteConfig covers persisting a configuration file.
	KindWriteConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindEnumerateManifests:
		return "enumerating package manifests"
	case KindReadConfig:
		return "reading configuration"
	case KindWriteConfig:
		return "writing configuration"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// LinkError is a fatal I/O or parse failure during linking.
type LinkError struct {
	Kind ErrorKind
	Path string // configuration file or directory involved, empty for enumeration errors
	Err  error
}

func (e *LinkError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("error linking TypeScript project references: %s %s: %v", e.Kind, e.Path, e.Err)
	}
	return fmt.Sprintf("error linking TypeScript project references: %s: %v", e.Kind, e.Err)
}

func (e *LinkError) Unwrap() error {
	return e.Err
}
