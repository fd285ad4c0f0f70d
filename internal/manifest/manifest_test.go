package manifest_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/outlinekit/outline/internal/manifest"
)

func TestDetectReturnsPresentManifestsInListOrder(t *testing.T) {
	rootDirectory := t.TempDir()
	for _, manifestName := range []string{"go.mod", "Makefile", "package.json"} {
		if writeError := os.WriteFile(filepath.Join(rootDirectory, manifestName), []byte("x"), 0o644); writeError != nil {
			t.Fatalf("writing %s: %v", manifestName, writeError)
		}
	}

	detected := manifest.Detect(rootDirectory)
	expected := []string{"package.json", "go.mod", "Makefile"}
	if !reflect.DeepEqual(detected, expected) {
		t.Fatalf("expected %v, got %v", expected, detected)
	}
}

func TestDetectIgnoresNestedManifests(t *testing.T) {
	rootDirectory := t.TempDir()
	nestedDirectory := filepath.Join(rootDirectory, "service")
	if makeDirError := os.MkdirAll(nestedDirectory, 0o755); makeDirError != nil {
		t.Fatalf("mkdir: %v", makeDirError)
	}
	if writeError := os.WriteFile(filepath.Join(nestedDirectory, "go.mod"), []byte("x"), 0o644); writeError != nil {
		t.Fatalf("writing nested manifest: %v", writeError)
	}

	if detected := manifest.Detect(rootDirectory); detected != nil {
		t.Fatalf("expected no manifests at root, got %v", detected)
	}
}

func TestDetectEmptyRoot(t *testing.T) {
	if detected := manifest.Detect(t.TempDir()); len(detected) != 0 {
		t.Fatalf("expected no manifests, got %v", detected)
	}
}
