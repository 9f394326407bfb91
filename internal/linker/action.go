package linker

import "fmt"

// Action selects what happens to a configuration file whose references are
// out of date.
type Action int

const (
	// ActionWrite overwrites stale references on disk.
	ActionWrite Action = iota
	// ActionLint reports stale references and never writes.
	ActionLint
)

func (a Action) String() string {
	switch a {
	case ActionWrite:
		return "write"
	case ActionLint:
		return "lint"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ParseAction converts "write" or "lint" to an Action.
func ParseAction(s string) (Action, error) {
	switch s {
	case "write":
		return ActionWrite, nil
	case "lint":
		return ActionLint, nil
	default:
		return ActionWrite, fmt.Errorf("unknown action %q: expected write or lint", s)
	}
}

// Outcome is the result of reconciling one configuration file.
type Outcome int

const (
	// Unchanged means the file already holds the desired references.
	Unchanged Outcome = iota
	// Updated means the file was stale and has been rewritten.
	Updated
	// Divergent means the file is stale and was reported, not written.
	Divergent
)

func (o Outcome) String() string {
	switch o {
	case Unchanged:
		return "unchanged"
	case Updated:
		return "updated"
	case Divergent:
		return "divergent"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}
