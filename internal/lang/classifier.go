// Package lang maps file extensions to human-readable language labels. The
// mapping is a static data table; extending it means adding entries, either
// here or through a YAML override file, never changing behavior.
package lang

import (
	"path/filepath"
	"strings"
)

// builtinExtensionLanguages is the shipped extension table. Keys are lowercased
// extensions including the leading dot.
var builtinExtensionLanguages = map[string]string{
	// Web
	".js": "JavaScript", ".jsx": "JavaScript/React", ".ts": "TypeScript", ".tsx": "TypeScript/React",
	".vue": "Vue", ".svelte": "Svelte", ".astro": "Astro",
	".css": "CSS", ".scss": "SCSS", ".sass": "SASS", ".less": "LESS",
	".html": "HTML", ".htm": "HTML",
	// Python
	".py": "Python",
	// Java / Kotlin
	".java": "Java", ".kt": "Kotlin", ".kts": "Kotlin",
	// C/C++
	".c": "C", ".h": "C Header", ".hpp": "C++ Header", ".hh": "C++ Header",
	".cpp": "C++", ".cc": "C++", ".cxx": "C++",
	// C#
	".cs": "C#",
	// Go
	".go": "Go",
	// Rust
	".rs": "Rust",
	// Swift
	".swift": "Swift",
	// PHP
	".php": "PHP",
	// Ruby
	".rb": "Ruby",
	// Shell
	".sh": "Shell", ".bash": "Shell", ".zsh": "Shell",
	// Data / Infra
	".sql": "SQL", ".yaml": "YAML", ".yml": "YAML", ".json": "JSON",
	".toml": "TOML", ".ini": "INI", ".env": "ENV",
	".md": "Markdown", ".rst": "reStructuredText",
	// Misc
	".gradle": "Gradle", ".groovy": "Groovy",
	".dart":  "Dart",
	".r":     "R",
	".pl":    "Perl",
	".hs":    "Haskell",
	".scala": "Scala",
	".lua":   "Lua",
}

// Classifier resolves a file name to a language label through its extension.
// A Classifier is immutable after construction.
type Classifier struct {
	extensionLanguages map[string]string
}

// NewClassifier returns a classifier backed by the built-in extension table,
// with overrideTable entries (if any) overlaid on top. Override keys are
// normalized to lowercase and given a leading dot when missing.
func NewClassifier(overrideTable map[string]string) *Classifier {
	extensionLanguages := make(map[string]string, len(builtinExtensionLanguages)+len(overrideTable))
	for extension, languageLabel := range builtinExtensionLanguages {
		extensionLanguages[extension] = languageLabel
	}
	for extension, languageLabel := range overrideTable {
		extensionLanguages[normalizeExtension(extension)] = languageLabel
	}
	return &Classifier{extensionLanguages: extensionLanguages}
}

// LanguageForFile returns the language label for the file name's extension.
// Files without an extension or with an unknown extension report false. A bare
// dotfile such as ".env" counts as having no extension.
func (classifier *Classifier) LanguageForFile(fileName string) (string, bool) {
	baseName := filepath.Base(fileName)
	extension := strings.ToLower(filepath.Ext(baseName))
	if extension == "" || extension == strings.ToLower(baseName) {
		return "", false
	}
	languageLabel, known := classifier.extensionLanguages[extension]
	return languageLabel, known
}

func normalizeExtension(extension string) string {
	normalized := strings.ToLower(strings.TrimSpace(extension))
	if normalized != "" && !strings.HasPrefix(normalized, ".") {
		normalized = "." + normalized
	}
	return normalized
}
