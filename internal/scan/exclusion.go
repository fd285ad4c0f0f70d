// Package scan performs the full filesystem traversal that produces aggregate
// statistics for the scanned root. It also defines the exclusion set shared
// with the tree renderer so both traversals skip identical names.
package scan

import (
	"sort"
	"strings"
)

// exclusionListSeparator splits the raw CLI ignore list into individual names.
const exclusionListSeparator = ","

// DefaultExclusions names the build, dependency, and VCS entries skipped when no
// override is supplied. Overriding replaces this list entirely; there is no merge.
var DefaultExclusions = []string{
	".git", ".hg", ".svn", ".DS_Store",
	"node_modules", "dist", "build", ".next", ".expo",
	".venv", "venv", ".env", "__pycache__", ".pytest_cache",
	".parcel-cache", ".turbo", ".cache", "target", "out", ".gradle",
	".idea", ".vscode", ".pnpm-store",
}

// ExclusionSet holds bare entry names skipped uniformly at every depth. Matching
// is exact name equality against a path's final component and applies to files
// and directories alike. The set is immutable once constructed.
type ExclusionSet struct {
	names map[string]struct{}
}

// NewExclusionSet parses a comma-separated list of names into a deduplicated set.
// Entries are trimmed and empty entries dropped; an empty input excludes nothing.
func NewExclusionSet(rawNames string) ExclusionSet {
	return NewExclusionSetFromNames(strings.Split(rawNames, exclusionListSeparator))
}

// NewExclusionSetFromNames builds a set from individual names, trimming each and
// dropping empties and duplicates.
func NewExclusionSetFromNames(entryNames []string) ExclusionSet {
	nameSet := make(map[string]struct{}, len(entryNames))
	for _, entryName := range entryNames {
		trimmedName := strings.TrimSpace(entryName)
		if trimmedName == "" {
			continue
		}
		nameSet[trimmedName] = struct{}{}
	}
	return ExclusionSet{names: nameSet}
}

// Contains reports whether the bare entry name is excluded.
func (exclusionSet ExclusionSet) Contains(entryName string) bool {
	_, excluded := exclusionSet.names[entryName]
	return excluded
}

// Len returns the number of distinct excluded names.
func (exclusionSet ExclusionSet) Len() int {
	return len(exclusionSet.names)
}

// SortedNames returns the excluded names in lexical order for display.
func (exclusionSet ExclusionSet) SortedNames() []string {
	sortedNames := make([]string, 0, len(exclusionSet.names))
	for entryName := range exclusionSet.names {
		sortedNames = append(sortedNames, entryName)
	}
	sort.Strings(sortedNames)
	return sortedNames
}
