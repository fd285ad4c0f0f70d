package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/outlinekit/outline/internal/types"
	"github.com/outlinekit/outline/internal/utils"
)

const summaryFileMode = 0o644

// WriteSummary stores the Markdown document as PROJECT_SUMMARY.md at the
// scanned root and returns the written path.
func WriteSummary(rootDirectoryPath string, markdownContent string) (string, error) {
	summaryPath := filepath.Join(rootDirectoryPath, types.SummaryFileName)
	if writeError := os.WriteFile(summaryPath, []byte(markdownContent), summaryFileMode); writeError != nil {
		return "", fmt.Errorf("writing summary to %s: %w", summaryPath, writeError)
	}
	return summaryPath, nil
}

// Preview returns the truncated document text printed to standard output.
func Preview(markdownContent string) string {
	return utils.TruncateForPreview(markdownContent, types.PreviewByteLimit)
}
