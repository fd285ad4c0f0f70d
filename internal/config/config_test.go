package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/outlinekit/outline/internal/config"
)

func writeConfigFile(t *testing.T, fullPath string, content string) {
	t.Helper()
	if makeDirError := os.MkdirAll(filepath.Dir(fullPath), 0o755); makeDirError != nil {
		t.Fatalf("mkdir: %v", makeDirError)
	}
	if writeError := os.WriteFile(fullPath, []byte(content), 0o644); writeError != nil {
		t.Fatalf("writing %s: %v", fullPath, writeError)
	}
}

func isolateHome(t *testing.T) string {
	t.Helper()
	homeDirectory := t.TempDir()
	t.Setenv("HOME", homeDirectory)
	t.Setenv("USERPROFILE", homeDirectory)
	return homeDirectory
}

func TestLoadApplicationConfigurationMissingFiles(t *testing.T) {
	isolateHome(t)
	configuration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{WorkingDirectory: t.TempDir()})
	if loadError != nil {
		t.Fatalf("LoadApplicationConfiguration error: %v", loadError)
	}
	if configuration.Depth != nil || configuration.Ignore != nil || configuration.Clipboard != nil {
		t.Fatalf("expected zero configuration, got %+v", configuration)
	}
}

func TestLoadApplicationConfigurationLocalFile(t *testing.T) {
	isolateHome(t)
	workingDirectory := t.TempDir()
	writeConfigFile(t, filepath.Join(workingDirectory, config.LocalConfigFileName), "depth: 5\nignore:\n  - .git\n  - vendor\ntokens:\n  enabled: true\n  model: gpt-4o\n")

	configuration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{WorkingDirectory: workingDirectory})
	if loadError != nil {
		t.Fatalf("LoadApplicationConfiguration error: %v", loadError)
	}
	if configuration.Depth == nil || *configuration.Depth != 5 {
		t.Fatalf("expected depth 5, got %+v", configuration.Depth)
	}
	if len(configuration.Ignore) != 2 || configuration.Ignore[1] != "vendor" {
		t.Fatalf("expected ignore list, got %v", configuration.Ignore)
	}
	if configuration.Tokens.Enabled == nil || !*configuration.Tokens.Enabled || configuration.Tokens.Model != "gpt-4o" {
		t.Fatalf("expected token configuration, got %+v", configuration.Tokens)
	}
}

func TestLoadApplicationConfigurationLocalOverridesGlobal(t *testing.T) {
	homeDirectory := isolateHome(t)
	writeConfigFile(t, filepath.Join(homeDirectory, ".config", "outline", "config.yaml"), "depth: 2\nlanguages: /etc/outline/languages.yml\n")
	workingDirectory := t.TempDir()
	writeConfigFile(t, filepath.Join(workingDirectory, config.LocalConfigFileName), "depth: 7\n")

	configuration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{WorkingDirectory: workingDirectory})
	if loadError != nil {
		t.Fatalf("LoadApplicationConfiguration error: %v", loadError)
	}
	if configuration.Depth == nil || *configuration.Depth != 7 {
		t.Fatalf("expected local depth 7, got %+v", configuration.Depth)
	}
	if configuration.Languages != "/etc/outline/languages.yml" {
		t.Fatalf("expected global languages path retained, got %q", configuration.Languages)
	}
}

func TestLoadApplicationConfigurationExplicitPath(t *testing.T) {
	isolateHome(t)
	workingDirectory := t.TempDir()
	writeConfigFile(t, filepath.Join(workingDirectory, "custom.yaml"), "clipboard: true\n")

	configuration, loadError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: "custom.yaml",
	})
	if loadError != nil {
		t.Fatalf("LoadApplicationConfiguration error: %v", loadError)
	}
	if configuration.Clipboard == nil || !*configuration.Clipboard {
		t.Fatalf("expected clipboard enabled, got %+v", configuration.Clipboard)
	}
}

func TestLoadApplicationConfigurationMalformedFile(t *testing.T) {
	isolateHome(t)
	workingDirectory := t.TempDir()
	writeConfigFile(t, filepath.Join(workingDirectory, config.LocalConfigFileName), "depth: [not an int\n")

	if _, loadError := config.LoadApplicationConfiguration(config.LoadOptions{WorkingDirectory: workingDirectory}); loadError == nil {
		t.Fatalf("expected error for malformed configuration")
	}
}

func TestMergePrefersOverrideFields(t *testing.T) {
	baseDepth := 3
	overrideDepth := 6
	enabled := true
	base := config.ApplicationConfiguration{Depth: &baseDepth, Ignore: []string{".git"}, Languages: "base.yml"}
	override := config.ApplicationConfiguration{
		Depth:  &overrideDepth,
		Tokens: config.TokenConfiguration{Enabled: &enabled},
	}
	merged := base.Merge(override)
	if merged.Depth == nil || *merged.Depth != 6 {
		t.Fatalf("expected override depth, got %+v", merged.Depth)
	}
	if len(merged.Ignore) != 1 || merged.Ignore[0] != ".git" {
		t.Fatalf("expected base ignore retained, got %v", merged.Ignore)
	}
	if merged.Languages != "base.yml" {
		t.Fatalf("expected base languages retained, got %q", merged.Languages)
	}
	if merged.Tokens.Enabled == nil || !*merged.Tokens.Enabled {
		t.Fatalf("expected override tokens enabled, got %+v", merged.Tokens)
	}
}
