package linker

import (
	"sort"

	"github.com/monoref/monoref/internal/tsconfig"
)

// decide compares the current references of a file with the desired ones.
// Order does not matter; the lists are compared after sorting each.
func decide(current, desired []tsconfig.ProjectReference, action Action) Outcome {
	if referencesEqual(current, desired) {
		return Unchanged
	}
	if action == ActionLint {
		return Divergent
	}
	return Updated
}

func referencesEqual(a, b []tsconfig.ProjectReference) bool {
	if len(a) != len(b) {
		return false
	}
	as, bs := sortedPaths(a), sortedPaths(b)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

func sortedPaths(refs []tsconfig.ProjectReference) []string {
	paths := make([]string, len(refs))
	for i, ref := range refs {
		paths[i] = ref.Path
	}
	sort.Strings(paths)
	return paths
}
