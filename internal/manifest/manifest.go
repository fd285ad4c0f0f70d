// Package manifest checks the scanned root for well-known package-manager and
// build-tool files. The check is a non-recursive existence probe against a
// fixed list; the list is data, not logic.
package manifest

import (
	"os"
	"path/filepath"
)

// wellKnownManifests is checked in order so reports stay reproducible.
var wellKnownManifests = []string{
	"package.json", "pnpm-lock.yaml", "yarn.lock", "package-lock.json",
	"pyproject.toml", "requirements.txt", "Pipfile", "poetry.lock",
	"setup.cfg", "setup.py",
	"go.mod", "go.sum",
	"Cargo.toml", "Cargo.lock",
	"build.gradle", "settings.gradle", "pom.xml",
	"composer.json",
	"Gemfile",
	"Makefile", "Dockerfile", "docker-compose.yml",
	"CMakeLists.txt",
	"Procfile",
	"netlify.toml", "vercel.json", "project.json", "nx.json",
}

// Detect returns the well-known manifest files present directly at
// rootDirectoryPath, in the fixed list order. Stat errors count as absent.
func Detect(rootDirectoryPath string) []string {
	var detectedManifests []string
	for _, manifestName := range wellKnownManifests {
		if _, statError := os.Stat(filepath.Join(rootDirectoryPath, manifestName)); statError == nil {
			detectedManifests = append(detectedManifests, manifestName)
		}
	}
	return detectedManifests
}
