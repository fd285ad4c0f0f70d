package scan_test

import (
	"reflect"
	"testing"

	"github.com/outlinekit/outline/internal/scan"
)

func TestNewExclusionSetParsing(t *testing.T) {
	testCases := []struct {
		name          string
		rawNames      string
		expectedNames []string
	}{
		{name: "empty input excludes nothing", rawNames: "", expectedNames: []string{}},
		{name: "single name", rawNames: "node_modules", expectedNames: []string{"node_modules"}},
		{name: "trims and drops empties", rawNames: " dist , ,build,", expectedNames: []string{"build", "dist"}},
		{name: "deduplicates", rawNames: ".git,.git,dist", expectedNames: []string{".git", "dist"}},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			exclusionSet := scan.NewExclusionSet(testCase.rawNames)
			if exclusionSet.Len() != len(testCase.expectedNames) {
				t.Fatalf("expected %d names, got %d", len(testCase.expectedNames), exclusionSet.Len())
			}
			sortedNames := exclusionSet.SortedNames()
			if len(testCase.expectedNames) > 0 && !reflect.DeepEqual(sortedNames, testCase.expectedNames) {
				t.Fatalf("expected names %v, got %v", testCase.expectedNames, sortedNames)
			}
		})
	}
}

func TestExclusionSetContains(t *testing.T) {
	exclusionSet := scan.NewExclusionSet("node_modules,.git")
	if !exclusionSet.Contains("node_modules") || !exclusionSet.Contains(".git") {
		t.Fatalf("expected listed names to be excluded")
	}
	if exclusionSet.Contains("src") {
		t.Fatalf("expected unlisted name to pass")
	}
	if exclusionSet.Contains("node_module") || exclusionSet.Contains("anode_modules") {
		t.Fatalf("matching must be exact name equality, not substring")
	}
}

func TestDefaultExclusionsCoverCommonNames(t *testing.T) {
	defaultSet := scan.NewExclusionSetFromNames(scan.DefaultExclusions)
	for _, expectedName := range []string{".git", "node_modules", "dist", "build", "__pycache__", "target"} {
		if !defaultSet.Contains(expectedName) {
			t.Fatalf("expected default exclusion %q", expectedName)
		}
	}
}
