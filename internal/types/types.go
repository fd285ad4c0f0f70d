// Package types defines every cross-package data structure used by the outline CLI.
package types

const (
	// SummaryFileName is the fixed name of the generated report at the scanned root.
	SummaryFileName = "PROJECT_SUMMARY.md"

	// DefaultTreeDepth bounds the rendered directory tree when no override is given.
	DefaultTreeDepth = 3

	// PreviewByteLimit caps the report preview printed to standard output.
	PreviewByteLimit = 2000
)

// FileRecord captures one scanned file as a root-relative posix path and its byte size.
type FileRecord struct {
	Path      string
	SizeBytes int64
}

// FolderSize captures the cumulative byte size of one folder. The size includes
// every non-excluded file transitively contained in the folder, not only direct
// children.
type FolderSize struct {
	Path      string
	SizeBytes int64
}

// LanguageTally counts the files classified under one language label.
type LanguageTally struct {
	Label string
	Files int
}

// ScanStats is the aggregate result of a single full traversal of the scanned root.
// Languages preserves first-encounter order so downstream rendering can break
// count ties deterministically. TopFiles and TopFolders are ordered by size
// descending with encounter order breaking ties.
type ScanStats struct {
	TotalFiles int
	TotalBytes int64
	Languages  []LanguageTally
	TopFiles   []FileRecord
	TopFolders []FolderSize
}

// GitSummary holds best-effort version-control metadata for the scanned root.
// A zero value with IsRepository false means git was unavailable or the root is
// not inside a work tree.
type GitSummary struct {
	IsRepository   bool
	CurrentBranch  string
	Remotes        []string
	RemoteBranches []string
	RecentCommits  []string
}
