// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/outlinekit/outline/internal/config"
	"github.com/outlinekit/outline/internal/gitmeta"
	"github.com/outlinekit/outline/internal/lang"
	"github.com/outlinekit/outline/internal/manifest"
	"github.com/outlinekit/outline/internal/report"
	"github.com/outlinekit/outline/internal/scan"
	"github.com/outlinekit/outline/internal/services/clipboard"
	"github.com/outlinekit/outline/internal/tokenizer"
	"github.com/outlinekit/outline/internal/tree"
	"github.com/outlinekit/outline/internal/types"
	"github.com/outlinekit/outline/internal/utils"
)

const (
	depthFlagName     = "depth"
	ignoreFlagName    = "ignore"
	clipboardFlagName = "clipboard"
	tokensFlagName    = "tokens"
	modelFlagName     = "model"
	configFlagName    = "config"
	versionFlagName   = "version"

	rootUse              = "outline [path]"
	rootShortDescription = "outline summarizes the structure of a directory tree"
	rootLongDescription  = `outline walks a directory once and writes PROJECT_SUMMARY.md at its root:
language mix, detected manifests, git metadata, size distribution, and a
depth-bounded directory tree. The scan is read-only.`
	rootUsageExample = `  # Summarize the current directory three levels deep
  outline

  # Summarize a project, ignoring only the listed names
  outline ~/src/demo --depth 2 --ignore .git,node_modules`

	depthFlagDescription     = "maximum tree depth"
	ignoreFlagDescription    = "comma-separated names to ignore (replaces the default list)"
	clipboardFlagDescription = "copy the generated summary to the clipboard"
	tokensFlagDescription    = "report the token footprint of the generated summary"
	modelFlagDescription     = "tokenizer model for the token footprint"
	configFlagDescription    = "configuration file path"
	versionFlagDescription   = "display application version"

	versionTemplate          = "outline version: %s\n"
	defaultTokenizerModel    = "gpt-4o"
	previewHeader            = "\n--- Preview ---\n"
	summaryWrittenFormat     = "Wrote %s\n"
	tokenFootprintFormat     = "Token footprint (%s): %d tokens\n"
	warningClipboardFormat   = "Warning: failed to copy summary to clipboard: %v\n"
	warningTokenCountFormat  = "Warning: failed to count tokens for the summary: %v\n"
	warningLanguagesFormat   = "Warning: failed to load language overrides: %v\n"
	errorInvalidRootFormat   = "path does not exist or is not a directory: %s"
	errorStatRootFormat      = "stat failed for '%s': %w"
	errorAbsolutePathFormat  = "abs failed for '%s': %w"
	workingDirectoryErrorFmt = "unable to determine working directory: %w"
)

// Execute runs the outline application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// scanOptions carries flag values into the run after precedence resolution.
type scanOptions struct {
	treeDepth        int
	rawIgnoreList    string
	ignoreProvided   bool
	depthProvided    bool
	clipboardEnabled bool
	tokensEnabled    bool
	tokenizerModel   string
	configFilePath   string
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool
	var options scanOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			rootPath := "."
			if len(arguments) == 1 {
				rootPath = arguments[0]
			}
			options.depthProvided = command.Flags().Changed(depthFlagName)
			options.ignoreProvided = command.Flags().Changed(ignoreFlagName)
			return runOutline(rootPath, options, command.OutOrStdout())
		},
	}

	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.Flags().IntVar(&options.treeDepth, depthFlagName, types.DefaultTreeDepth, depthFlagDescription)
	rootCommand.Flags().StringVar(&options.rawIgnoreList, ignoreFlagName, "", ignoreFlagDescription)
	rootCommand.Flags().BoolVar(&options.clipboardEnabled, clipboardFlagName, false, clipboardFlagDescription)
	rootCommand.Flags().BoolVar(&options.tokensEnabled, tokensFlagName, false, tokensFlagDescription)
	rootCommand.Flags().StringVar(&options.tokenizerModel, modelFlagName, defaultTokenizerModel, modelFlagDescription)
	rootCommand.Flags().StringVar(&options.configFilePath, configFlagName, "", configFlagDescription)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// runOutline validates the root, resolves configuration, executes both
// traversals, and assembles and writes the summary.
func runOutline(rootPath string, options scanOptions, standardOutput io.Writer) error {
	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return fmt.Errorf(errorAbsolutePathFormat, rootPath, absolutePathError)
	}
	rootInfo, statError := os.Stat(absoluteRootPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return fmt.Errorf(errorInvalidRootFormat, absoluteRootPath)
		}
		return fmt.Errorf(errorStatRootFormat, absoluteRootPath, statError)
	}
	if !rootInfo.IsDir() {
		return fmt.Errorf(errorInvalidRootFormat, absoluteRootPath)
	}

	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFmt, workingDirectoryError)
	}
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.configFilePath,
	})
	if configurationError != nil {
		return configurationError
	}

	resolved := resolveRunSettings(options, applicationConfiguration)
	classifier := buildClassifier(applicationConfiguration.Languages)

	aggregator := &scan.Aggregator{Exclusions: resolved.exclusions, Classifier: classifier}
	renderer := &tree.Renderer{Exclusions: resolved.exclusions, MaxDepth: resolved.treeDepth}

	var stats types.ScanStats
	var treeLines []string
	var traversalGroup errgroup.Group
	traversalGroup.Go(func() error {
		stats = aggregator.Collect(absoluteRootPath)
		return nil
	})
	traversalGroup.Go(func() error {
		treeLines = renderer.Render(absoluteRootPath)
		return nil
	})
	// Both traversals only write disjoint results; neither returns an error.
	_ = traversalGroup.Wait()

	detectedManifests := manifest.Detect(absoluteRootPath)
	gitCollector := &gitmeta.Collector{Runner: gitmeta.ExecRunner{}}
	gitSummary := gitCollector.Collect(absoluteRootPath)

	markdownContent := report.BuildMarkdown(report.Data{
		RootPath:  absoluteRootPath,
		TreeDepth: resolved.treeDepth,
		Ignored:   resolved.exclusions.SortedNames(),
		Stats:     stats,
		Manifests: detectedManifests,
		Git:       gitSummary,
		TreeLines: treeLines,
	})

	summaryPath, writeError := report.WriteSummary(absoluteRootPath, markdownContent)
	if writeError != nil {
		return writeError
	}
	fmt.Fprintf(standardOutput, summaryWrittenFormat, summaryPath)
	fmt.Fprint(standardOutput, previewHeader)
	fmt.Fprintln(standardOutput, report.Preview(markdownContent))

	if resolved.clipboardEnabled {
		if copyError := clipboard.NewService().Copy(markdownContent); copyError != nil {
			fmt.Fprintf(os.Stderr, warningClipboardFormat, copyError)
		}
	}
	if resolved.tokensEnabled {
		reportTokenFootprint(markdownContent, resolved.tokenizerModel, standardOutput)
	}
	return nil
}

// runSettings is the flag/configuration precedence result for one invocation.
type runSettings struct {
	treeDepth        int
	exclusions       scan.ExclusionSet
	clipboardEnabled bool
	tokensEnabled    bool
	tokenizerModel   string
}

// resolveRunSettings applies the precedence: explicit flags beat configuration
// file values, which beat built-in defaults. An explicit --ignore replaces the
// default exclusion list entirely.
func resolveRunSettings(options scanOptions, applicationConfiguration config.ApplicationConfiguration) runSettings {
	resolved := runSettings{
		treeDepth:        options.treeDepth,
		clipboardEnabled: options.clipboardEnabled,
		tokensEnabled:    options.tokensEnabled,
		tokenizerModel:   options.tokenizerModel,
	}
	if !options.depthProvided && applicationConfiguration.Depth != nil {
		resolved.treeDepth = *applicationConfiguration.Depth
	}
	switch {
	case options.ignoreProvided:
		resolved.exclusions = scan.NewExclusionSet(options.rawIgnoreList)
	case len(applicationConfiguration.Ignore) > 0:
		resolved.exclusions = scan.NewExclusionSetFromNames(applicationConfiguration.Ignore)
	default:
		resolved.exclusions = scan.NewExclusionSetFromNames(scan.DefaultExclusions)
	}
	if !resolved.clipboardEnabled && applicationConfiguration.Clipboard != nil {
		resolved.clipboardEnabled = *applicationConfiguration.Clipboard
	}
	if !resolved.tokensEnabled && applicationConfiguration.Tokens.Enabled != nil {
		resolved.tokensEnabled = *applicationConfiguration.Tokens.Enabled
	}
	if strings.TrimSpace(applicationConfiguration.Tokens.Model) != "" && resolved.tokenizerModel == defaultTokenizerModel {
		resolved.tokenizerModel = applicationConfiguration.Tokens.Model
	}
	return resolved
}

// buildClassifier loads optional language overrides; failures fall back to the
// built-in table with a warning.
func buildClassifier(overrideFilePath string) *lang.Classifier {
	if overrideFilePath == "" {
		return lang.NewClassifier(nil)
	}
	overrideTable, loadError := lang.LoadOverrideTable(overrideFilePath)
	if loadError != nil {
		fmt.Fprintf(os.Stderr, warningLanguagesFormat, loadError)
		return lang.NewClassifier(nil)
	}
	return lang.NewClassifier(overrideTable)
}

// reportTokenFootprint estimates and prints the token cost of the summary.
func reportTokenFootprint(markdownContent string, tokenizerModel string, standardOutput io.Writer) {
	tokenCounter, resolvedModel, counterError := tokenizer.NewCounter(tokenizerModel)
	if counterError != nil {
		fmt.Fprintf(os.Stderr, warningTokenCountFormat, counterError)
		return
	}
	tokenCount, countError := tokenCounter.CountString(markdownContent)
	if countError != nil {
		fmt.Fprintf(os.Stderr, warningTokenCountFormat, countError)
		return
	}
	fmt.Fprintf(standardOutput, tokenFootprintFormat, resolvedModel, tokenCount)
}
