// Package tree renders a depth-bounded directory tree as box-drawing lines.
// It walks the filesystem independently from the scan package but honors the
// same exclusion set, so both traversals present an identical view.
package tree

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/outlinekit/outline/internal/scan"
)

const (
	branchConnector   = "├── "
	terminalConnector = "└── "
	continuationGlyph = "│   "
	spacerGlyph       = "    "
	directorySuffix   = "/"
)

// Renderer produces the ordered tree lines for a root directory. MaxDepth
// counts the root's direct children as depth 1; a MaxDepth of 0 renders only
// the root line.
type Renderer struct {
	Exclusions scan.ExclusionSet
	MaxDepth   int
}

// Render returns the tree lines for rootDirectoryPath. The first line is always
// the root's base name with a trailing separator. Unreadable directories render
// no children; no error surfaces.
func (renderer *Renderer) Render(rootDirectoryPath string) []string {
	absoluteRootPath, absolutePathError := filepath.Abs(rootDirectoryPath)
	if absolutePathError != nil {
		absoluteRootPath = filepath.Clean(rootDirectoryPath)
	}
	treeLines := []string{filepath.Base(absoluteRootPath) + directorySuffix}
	renderer.renderChildren(absoluteRootPath, "", 1, &treeLines)
	return treeLines
}

// renderChildren appends one line per non-excluded child of directoryPath and
// recurses into subdirectories while currentDepth stays within MaxDepth.
func (renderer *Renderer) renderChildren(directoryPath string, linePrefix string, currentDepth int, treeLines *[]string) {
	if currentDepth > renderer.MaxDepth {
		return
	}
	directoryEntries, readDirectoryError := os.ReadDir(directoryPath)
	if readDirectoryError != nil {
		return
	}

	visibleEntries := make([]os.DirEntry, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		if renderer.Exclusions.Contains(directoryEntry.Name()) {
			continue
		}
		visibleEntries = append(visibleEntries, directoryEntry)
	}
	sortEntries(visibleEntries)

	for entryIndex, directoryEntry := range visibleEntries {
		isLastChild := entryIndex == len(visibleEntries)-1
		connector := branchConnector
		childPrefixExtension := continuationGlyph
		if isLastChild {
			connector = terminalConnector
			childPrefixExtension = spacerGlyph
		}
		entryName := directoryEntry.Name()
		if directoryEntry.IsDir() {
			entryName += directorySuffix
		}
		*treeLines = append(*treeLines, linePrefix+connector+entryName)
		if directoryEntry.IsDir() {
			renderer.renderChildren(
				filepath.Join(directoryPath, directoryEntry.Name()),
				linePrefix+childPrefixExtension,
				currentDepth+1,
				treeLines,
			)
		}
	}
}

// sortEntries orders directories before files, each group case-insensitively by name.
func sortEntries(directoryEntries []os.DirEntry) {
	sort.SliceStable(directoryEntries, func(firstIndex, secondIndex int) bool {
		firstIsFile := !directoryEntries[firstIndex].IsDir()
		secondIsFile := !directoryEntries[secondIndex].IsDir()
		if firstIsFile != secondIsFile {
			return !firstIsFile
		}
		return strings.ToLower(directoryEntries[firstIndex].Name()) < strings.ToLower(directoryEntries[secondIndex].Name())
	})
}
