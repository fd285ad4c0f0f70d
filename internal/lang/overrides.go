package lang

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadOverrideTable reads a YAML file mapping extensions to language labels,
// for example:
//
//	.proto: Protocol Buffers
//	.zig: Zig
func LoadOverrideTable(overrideFilePath string) (map[string]string, error) {
	fileContent, readError := os.ReadFile(overrideFilePath)
	if readError != nil {
		return nil, fmt.Errorf("reading language overrides from %s: %w", overrideFilePath, readError)
	}
	var overrideTable map[string]string
	if unmarshalError := yaml.Unmarshal(fileContent, &overrideTable); unmarshalError != nil {
		return nil, fmt.Errorf("parsing language overrides from %s: %w", overrideFilePath, unmarshalError)
	}
	return overrideTable, nil
}
