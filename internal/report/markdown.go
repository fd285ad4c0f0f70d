// Package report assembles the final Markdown summary from the scan, tree,
// manifest, and git collaborator outputs, and writes it at the scanned root.
package report

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/outlinekit/outline/internal/types"
	"github.com/outlinekit/outline/internal/utils"
)

const (
	remoteBranchDisplayLimit = 10

	notGitRepositoryNote = "_Not a Git repository (or Git not available)._"
	noManifestsNote      = "_None detected from common manifests._"
	noLanguagesNote      = "_No recognized language extensions found._"
	attributionLine      = "> Generated by `outline`. Share this markdown to get a tailored walkthrough."
)

// Data bundles every input the Markdown assembly needs. Collaborator outputs
// are passed through unmodified.
type Data struct {
	RootPath  string
	TreeDepth int
	Ignored   []string
	Stats     types.ScanStats
	Manifests []string
	Git       types.GitSummary
	TreeLines []string
}

// BuildMarkdown renders the full summary document.
func BuildMarkdown(data Data) string {
	var lines []string
	appendLine := func(format string, arguments ...any) {
		lines = append(lines, fmt.Sprintf(format, arguments...))
	}

	appendLine("# Project Summary — `%s`\n", filepath.Base(data.RootPath))
	appendLine("**Path:** `%s`\n", filepath.ToSlash(data.RootPath))

	appendLine("## Git\n")
	lines = append(lines, gitSectionLines(data.Git)...)
	appendLine("")

	appendLine("## Manifests & Config")
	if len(data.Manifests) > 0 {
		for _, manifestName := range data.Manifests {
			appendLine("- `%s`", manifestName)
		}
	} else {
		appendLine(noManifestsNote)
	}
	appendLine("")

	appendLine("## Languages (by file count)")
	lines = append(lines, languageSectionLines(data.Stats.Languages)...)
	appendLine("")

	appendLine("## Size & Files")
	appendLine("- Total files scanned: **%d**", data.Stats.TotalFiles)
	appendLine("- Total size: **%s**", utils.FormatByteSize(data.Stats.TotalBytes))
	appendLine("")
	if len(data.Stats.TopFolders) > 0 {
		appendLine("### Heaviest folders")
		for _, folderSize := range data.Stats.TopFolders {
			appendLine("- `%s` — %s", folderSize.Path, utils.FormatByteSize(folderSize.SizeBytes))
		}
		appendLine("")
	}
	if len(data.Stats.TopFiles) > 0 {
		appendLine("### Largest files")
		for _, fileRecord := range data.Stats.TopFiles {
			appendLine("- `%s` — %s", fileRecord.Path, utils.FormatByteSize(fileRecord.SizeBytes))
		}
		appendLine("")
	}

	appendLine("## Directory tree (depth ≤ %d)", data.TreeDepth)
	appendLine("_Ignored: %s_\n", strings.Join(data.Ignored, ", "))
	appendLine("```")
	lines = append(lines, data.TreeLines...)
	appendLine("```\n")
	appendLine(attributionLine)

	return strings.Join(lines, "\n")
}

// gitSectionLines renders the version-control block, or the not-applicable note.
func gitSectionLines(gitSummary types.GitSummary) []string {
	if !gitSummary.IsRepository {
		return []string{notGitRepositoryNote}
	}
	currentBranch := gitSummary.CurrentBranch
	if currentBranch == "" {
		currentBranch = "unknown"
	}
	sectionLines := []string{fmt.Sprintf("- Current branch: `%s`", currentBranch)}
	if len(gitSummary.Remotes) > 0 {
		sectionLines = append(sectionLines, "- Remotes:")
		for _, remoteLine := range gitSummary.Remotes {
			sectionLines = append(sectionLines, fmt.Sprintf("  - `%s`", remoteLine))
		}
	}
	if len(gitSummary.RemoteBranches) > 0 {
		sectionLines = append(sectionLines, "- Remote branches (truncated):")
		remoteBranches := gitSummary.RemoteBranches
		if len(remoteBranches) > remoteBranchDisplayLimit {
			remoteBranches = remoteBranches[:remoteBranchDisplayLimit]
		}
		for _, remoteBranch := range remoteBranches {
			sectionLines = append(sectionLines, fmt.Sprintf("  - `%s`", remoteBranch))
		}
	}
	if len(gitSummary.RecentCommits) > 0 {
		sectionLines = append(sectionLines, "- Recent commits:")
		for _, commitLine := range gitSummary.RecentCommits {
			sectionLines = append(sectionLines, fmt.Sprintf("  - %s", commitLine))
		}
	}
	return sectionLines
}

// languageSectionLines renders language counts sorted by file count descending,
// with first-encounter order breaking ties. Percentages are relative to the
// classified file population, not the full scan total.
func languageSectionLines(languageTallies []types.LanguageTally) []string {
	if len(languageTallies) == 0 {
		return []string{noLanguagesNote}
	}
	rankedTallies := make([]types.LanguageTally, len(languageTallies))
	copy(rankedTallies, languageTallies)
	sort.SliceStable(rankedTallies, func(firstIndex, secondIndex int) bool {
		return rankedTallies[firstIndex].Files > rankedTallies[secondIndex].Files
	})
	var classifiedTotal int
	for _, languageTally := range rankedTallies {
		classifiedTotal += languageTally.Files
	}
	sectionLines := make([]string, 0, len(rankedTallies))
	for _, languageTally := range rankedTallies {
		percentage := float64(languageTally.Files) / float64(classifiedTotal) * 100
		sectionLines = append(sectionLines, fmt.Sprintf("- **%s**: %d files (%.1f%%)", languageTally.Label, languageTally.Files, percentage))
	}
	return sectionLines
}
