// Package gitmeta queries version-control metadata for the scanned root by
// running the external git tool. Every query is best effort: a missing binary,
// a non-zero exit, or a root outside any work tree yields an absent summary,
// never an error.
package gitmeta

import (
	"os/exec"
	"strings"

	"github.com/outlinekit/outline/internal/types"
)

const (
	gitExecutableName   = "git"
	insideWorkTreeValue = "true"
	recentCommitLimit   = "10"
)

// Runner executes an external command in a working directory and returns its
// trimmed standard output. Implementations must not raise on non-zero exit or
// command-not-found beyond returning the error; callers treat any error as
// "output unavailable".
type Runner interface {
	Run(workingDirectory string, executableName string, arguments ...string) (string, error)
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct{}

// Run executes the command and captures its standard output.
func (ExecRunner) Run(workingDirectory string, executableName string, arguments ...string) (string, error) {
	command := exec.Command(executableName, arguments...)
	command.Dir = workingDirectory
	outputBytes, runError := command.Output()
	return strings.TrimSpace(string(outputBytes)), runError
}

var _ Runner = ExecRunner{}

// Collector gathers the git summary through an injected Runner.
type Collector struct {
	Runner Runner
}

// Collect returns the version-control summary for rootDirectoryPath. When the
// directory is not a git work tree or git is unavailable, the returned summary
// has IsRepository false and every other field empty.
func (collector *Collector) Collect(rootDirectoryPath string) types.GitSummary {
	insideOutput, insideError := collector.Runner.Run(rootDirectoryPath, gitExecutableName, "rev-parse", "--is-inside-work-tree")
	if insideError != nil || insideOutput != insideWorkTreeValue {
		return types.GitSummary{}
	}

	summary := types.GitSummary{IsRepository: true}
	if remoteOutput, remoteError := collector.Runner.Run(rootDirectoryPath, gitExecutableName, "remote", "-v"); remoteError == nil {
		summary.Remotes = splitOutputLines(remoteOutput)
	}
	if branchOutput, branchError := collector.Runner.Run(rootDirectoryPath, gitExecutableName, "branch", "--show-current"); branchError == nil {
		summary.CurrentBranch = branchOutput
	}
	if refOutput, refError := collector.Runner.Run(rootDirectoryPath, gitExecutableName, "for-each-ref", "--format=%(refname:short)", "refs/remotes"); refError == nil {
		summary.RemoteBranches = splitOutputLines(refOutput)
	}
	if logOutput, logError := collector.Runner.Run(rootDirectoryPath, gitExecutableName, "log", "--oneline", "-n", recentCommitLimit); logError == nil {
		summary.RecentCommits = splitOutputLines(logOutput)
	}
	return summary
}

// splitOutputLines splits command output into lines, returning nil for empty output.
func splitOutputLines(commandOutput string) []string {
	if commandOutput == "" {
		return nil
	}
	return strings.Split(commandOutput, "\n")
}
