// Package config loads application configuration for the outline CLI. A global
// file under the user's configuration directory is merged with a local file in
// the working directory; the local file wins field by field, and explicit CLI
// flags override both.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// LocalConfigFileName is looked up in the working directory.
	LocalConfigFileName = ".outline.yaml"
	// GlobalConfigDirectoryName is resolved under the user home directory.
	GlobalConfigDirectoryName = ".config/outline"
	// GlobalConfigFileName is the file name inside the global directory.
	GlobalConfigFileName = "config.yaml"
)

// ApplicationConfiguration holds file-sourced defaults for the CLI. Pointer
// fields distinguish "unset" from explicit zero values during merging.
type ApplicationConfiguration struct {
	Depth     *int               `mapstructure:"depth"`
	Ignore    []string           `mapstructure:"ignore"`
	Clipboard *bool              `mapstructure:"clipboard"`
	Tokens    TokenConfiguration `mapstructure:"tokens"`
	Languages string             `mapstructure:"languages"`
}

// TokenConfiguration controls token footprint reporting defaults.
type TokenConfiguration struct {
	Enabled *bool  `mapstructure:"enabled"`
	Model   string `mapstructure:"model"`
}

// LoadOptions controls how application configuration is discovered.
type LoadOptions struct {
	WorkingDirectory string
	ExplicitFilePath string
}

// LoadApplicationConfiguration loads and merges global and local configuration.
// Missing files are not errors; unreadable or malformed files are.
func LoadApplicationConfiguration(options LoadOptions) (ApplicationConfiguration, error) {
	workingDirectory := options.WorkingDirectory
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return ApplicationConfiguration{}, fmt.Errorf("determine working directory: %w", workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}

	var merged ApplicationConfiguration

	if homeDirectory, homeError := os.UserHomeDir(); homeError == nil && homeDirectory != "" {
		globalPath := filepath.Join(homeDirectory, filepath.FromSlash(GlobalConfigDirectoryName), GlobalConfigFileName)
		globalConfiguration, loadError := loadConfigurationFromPath(globalPath)
		if loadError != nil {
			return ApplicationConfiguration{}, loadError
		}
		merged = merged.Merge(globalConfiguration)
	}

	localPath := options.ExplicitFilePath
	if localPath == "" {
		localPath = filepath.Join(workingDirectory, LocalConfigFileName)
	} else if !filepath.IsAbs(localPath) {
		localPath = filepath.Join(workingDirectory, localPath)
	}
	localConfiguration, loadError := loadConfigurationFromPath(localPath)
	if loadError != nil {
		return ApplicationConfiguration{}, loadError
	}
	merged = merged.Merge(localConfiguration)

	return merged, nil
}

func loadConfigurationFromPath(configurationPath string) (ApplicationConfiguration, error) {
	fileInfo, statError := os.Stat(configurationPath)
	if statError != nil {
		if os.IsNotExist(statError) {
			return ApplicationConfiguration{}, nil
		}
		return ApplicationConfiguration{}, fmt.Errorf("stat configuration %s: %w", configurationPath, statError)
	}
	if fileInfo.IsDir() {
		return ApplicationConfiguration{}, fmt.Errorf("configuration path %s is a directory", configurationPath)
	}

	reader := viper.New()
	reader.SetConfigFile(configurationPath)
	if readError := reader.ReadInConfig(); readError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("read configuration from %s: %w", configurationPath, readError)
	}
	var configuration ApplicationConfiguration
	if decodeError := reader.Unmarshal(&configuration); decodeError != nil {
		return ApplicationConfiguration{}, fmt.Errorf("decode configuration from %s: %w", configurationPath, decodeError)
	}
	return configuration, nil
}

// Merge overlays override onto the receiver returning the combined configuration.
func (configuration ApplicationConfiguration) Merge(override ApplicationConfiguration) ApplicationConfiguration {
	result := configuration
	if override.Depth != nil {
		result.Depth = cloneInt(override.Depth)
	}
	if len(override.Ignore) > 0 {
		result.Ignore = append([]string{}, override.Ignore...)
	}
	if override.Clipboard != nil {
		result.Clipboard = cloneBool(override.Clipboard)
	}
	result.Tokens = result.Tokens.merge(override.Tokens)
	if override.Languages != "" {
		result.Languages = override.Languages
	}
	return result
}

func (configuration TokenConfiguration) merge(override TokenConfiguration) TokenConfiguration {
	result := configuration
	if override.Enabled != nil {
		result.Enabled = cloneBool(override.Enabled)
	}
	if override.Model != "" {
		result.Model = override.Model
	}
	return result
}

func cloneBool(value *bool) *bool {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}

func cloneInt(value *int) *int {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
