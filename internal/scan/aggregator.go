package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/outlinekit/outline/internal/lang"
	"github.com/outlinekit/outline/internal/types"
)

const (
	// TopFileCount is the number of largest files retained in the scan result.
	TopFileCount = 15
	// TopFolderCount is the number of heaviest folders retained in the scan result.
	TopFolderCount = 10

	folderPathSeparator = "/"
)

// Aggregator walks a directory tree exactly once and accumulates totals,
// per-language counts, per-file sizes, and cumulative folder sizes. Unreadable
// files and directories are skipped silently; a single bad entry never aborts
// the traversal.
type Aggregator struct {
	Exclusions ExclusionSet
	Classifier *lang.Classifier
}

// Collect traverses the subtree rooted at rootDirectoryPath and returns the
// aggregate statistics. The root is assumed to exist and be a directory; an
// unreadable root yields zero-valued statistics.
func (aggregator *Aggregator) Collect(rootDirectoryPath string) types.ScanStats {
	absoluteRootPath, absolutePathError := filepath.Abs(rootDirectoryPath)
	if absolutePathError != nil {
		absoluteRootPath = filepath.Clean(rootDirectoryPath)
	}

	var totalFiles int
	var totalBytes int64
	var fileRecords []types.FileRecord
	folderSizes := make(map[string]int64)
	var folderOrder []string
	languageCounts := make(map[string]int)
	var languageOrder []string

	walkFunction := func(currentPath string, directoryEntry fs.DirEntry, walkError error) error {
		if walkError != nil {
			// Unreadable listings contribute nothing; siblings continue.
			return nil
		}
		if currentPath == absoluteRootPath {
			return nil
		}
		entryName := directoryEntry.Name()
		if aggregator.Exclusions.Contains(entryName) {
			if directoryEntry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if directoryEntry.IsDir() {
			return nil
		}
		// Stat follows symlinks: a dangling link is skipped and a link to a
		// file contributes the target's size, never the link text's length.
		entryInfo, statError := os.Stat(currentPath)
		if statError != nil {
			return nil
		}
		if entryInfo.IsDir() {
			return nil
		}
		entrySize := entryInfo.Size()

		relativePath, relativeError := filepath.Rel(absoluteRootPath, currentPath)
		if relativeError != nil {
			return nil
		}
		relativePath = filepath.ToSlash(relativePath)

		totalFiles++
		totalBytes += entrySize
		fileRecords = append(fileRecords, types.FileRecord{Path: relativePath, SizeBytes: entrySize})

		for _, ancestorPath := range ancestorFolderPaths(relativePath) {
			if _, seen := folderSizes[ancestorPath]; !seen {
				folderOrder = append(folderOrder, ancestorPath)
			}
			folderSizes[ancestorPath] += entrySize
		}

		if aggregator.Classifier != nil {
			if languageLabel, classified := aggregator.Classifier.LanguageForFile(entryName); classified {
				if _, seen := languageCounts[languageLabel]; !seen {
					languageOrder = append(languageOrder, languageLabel)
				}
				languageCounts[languageLabel]++
			}
		}
		return nil
	}
	_ = filepath.WalkDir(absoluteRootPath, walkFunction)

	return types.ScanStats{
		TotalFiles: totalFiles,
		TotalBytes: totalBytes,
		Languages:  orderedLanguageTallies(languageOrder, languageCounts),
		TopFiles:   topFileRecords(fileRecords, TopFileCount),
		TopFolders: topFolderSizes(folderOrder, folderSizes, TopFolderCount),
	}
}

// ancestorFolderPaths lists every folder entry a file contributes to, from its
// immediate parent up to the first path component below the root. A file placed
// directly at the root contributes to no folder entry.
func ancestorFolderPaths(relativeFilePath string) []string {
	parentPath := filepath.ToSlash(filepath.Dir(relativeFilePath))
	if parentPath == "." {
		return nil
	}
	segments := strings.Split(parentPath, folderPathSeparator)
	ancestorPaths := make([]string, 0, len(segments))
	for segmentCount := 1; segmentCount <= len(segments); segmentCount++ {
		ancestorPaths = append(ancestorPaths, strings.Join(segments[:segmentCount], folderPathSeparator))
	}
	return ancestorPaths
}

// topFileRecords returns the limit largest records by size descending. The sort
// is stable so encounter order breaks ties.
func topFileRecords(fileRecords []types.FileRecord, limit int) []types.FileRecord {
	rankedRecords := make([]types.FileRecord, len(fileRecords))
	copy(rankedRecords, fileRecords)
	sort.SliceStable(rankedRecords, func(firstIndex, secondIndex int) bool {
		return rankedRecords[firstIndex].SizeBytes > rankedRecords[secondIndex].SizeBytes
	})
	if len(rankedRecords) > limit {
		rankedRecords = rankedRecords[:limit]
	}
	return rankedRecords
}

// topFolderSizes returns the limit heaviest folders by cumulative size
// descending, with first-encounter order breaking ties.
func topFolderSizes(folderOrder []string, folderSizes map[string]int64, limit int) []types.FolderSize {
	rankedFolders := make([]types.FolderSize, 0, len(folderOrder))
	for _, folderPath := range folderOrder {
		rankedFolders = append(rankedFolders, types.FolderSize{Path: folderPath, SizeBytes: folderSizes[folderPath]})
	}
	sort.SliceStable(rankedFolders, func(firstIndex, secondIndex int) bool {
		return rankedFolders[firstIndex].SizeBytes > rankedFolders[secondIndex].SizeBytes
	})
	if len(rankedFolders) > limit {
		rankedFolders = rankedFolders[:limit]
	}
	return rankedFolders
}

// orderedLanguageTallies preserves first-encounter order of labels.
func orderedLanguageTallies(languageOrder []string, languageCounts map[string]int) []types.LanguageTally {
	tallies := make([]types.LanguageTally, 0, len(languageOrder))
	for _, languageLabel := range languageOrder {
		tallies = append(tallies, types.LanguageTally{Label: languageLabel, Files: languageCounts[languageLabel]})
	}
	return tallies
}
