package utils

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"
)

const (
	unknownVersion   = "unknown"
	gitDirectoryName = ".git"
)

// GetApplicationVersion attempts to determine the application version.
// It checks Go build info first and falls back to git describe when a
// repository is available.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		return buildInfo.Main.Version
	}

	repositoryDirectoryPath, repositoryLookupError := findGitRepositoryDirectory(".")
	if repositoryLookupError == nil && repositoryDirectoryPath != "" {
		// #nosec G204
		gitDescribeCommand := exec.Command("git", "describe", "--tags", "--always", "--dirty")
		gitDescribeCommand.Dir = repositoryDirectoryPath
		gitDescribeOutput, gitDescribeError := gitDescribeCommand.Output()
		if gitDescribeError == nil && len(gitDescribeOutput) > 0 {
			return strings.TrimSpace(string(gitDescribeOutput))
		}
	}

	return unknownVersion
}

// findGitRepositoryDirectory walks upward from the starting directory until
// it finds a directory containing a .git folder.
func findGitRepositoryDirectory(startDirectory string) (string, error) {
	absoluteStartDirectory, absolutePathError := filepath.Abs(startDirectory)
	if absolutePathError != nil {
		return "", absolutePathError
	}

	currentDirectory := absoluteStartDirectory
	for {
		gitDirectoryPath := filepath.Join(currentDirectory, gitDirectoryName)
		directoryInformation, statError := os.Stat(gitDirectoryPath)
		if statError == nil && directoryInformation.IsDir() {
			return currentDirectory, nil
		}

		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			break
		}
		currentDirectory = parentDirectory
	}

	return "", os.ErrNotExist
}
