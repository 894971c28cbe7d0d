// Package config resolves the display configuration of a tree run from
// command line flags and TREE_ environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/temirov/tree/internal/types"
)

// Configuration keys shared by flag names and environment variables.
const (
	AbsolutePathsKey  = "absolute_paths"
	DirectoryKey      = "directory"
	TruncatedPathsKey = "truncated_paths"
	VerboseKey        = "verbose"
	CopyKey           = "copy"

	// EnvironmentPrefix namespaces environment variables, e.g. TREE_VERBOSE.
	EnvironmentPrefix = "TREE"
)

const (
	errorBindFlagsFormat        = "bind flags: %w"
	errorWorkingDirectoryFormat = "determine working directory: %w"
)

// NewReader returns a viper instance that reads values from flagSet, falling
// back to TREE_ prefixed environment variables for flags left unset.
func NewReader(flagSet *pflag.FlagSet) (*viper.Viper, error) {
	reader := viper.New()
	reader.SetEnvPrefix(EnvironmentPrefix)
	reader.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	reader.AutomaticEnv()
	if flagSet != nil {
		if bindError := reader.BindPFlags(flagSet); bindError != nil {
			return nil, fmt.Errorf(errorBindFlagsFormat, bindError)
		}
	}
	return reader, nil
}

// Resolve builds the run configuration from reader. Absolute paths take
// precedence: when both path modes are requested truncation is switched off.
// The start directory defaults to the working directory and relative values
// are resolved against it. An empty workingDirectory is taken from the process.
func Resolve(reader *viper.Viper, workingDirectory string) (types.Configuration, error) {
	if workingDirectory == "" {
		currentDirectory, workingDirectoryError := os.Getwd()
		if workingDirectoryError != nil {
			return types.Configuration{}, fmt.Errorf(errorWorkingDirectoryFormat, workingDirectoryError)
		}
		workingDirectory = currentDirectory
	}
	absoluteWorkingDirectory, absoluteError := filepath.Abs(workingDirectory)
	if absoluteError != nil {
		return types.Configuration{}, fmt.Errorf(errorWorkingDirectoryFormat, absoluteError)
	}

	showAbsolutePaths := reader.GetBool(AbsolutePathsKey)
	configuration := types.Configuration{
		ShowAbsolutePaths:  showAbsolutePaths,
		ShowTruncatedPaths: reader.GetBool(TruncatedPathsKey) && !showAbsolutePaths,
		Verbose:            reader.GetBool(VerboseKey),
		CopyToClipboard:    reader.GetBool(CopyKey),
		StartDirectory:     strings.TrimSpace(reader.GetString(DirectoryKey)),
		WorkingDirectory:   absoluteWorkingDirectory,
	}
	if configuration.StartDirectory == "" {
		configuration.StartDirectory = absoluteWorkingDirectory
	} else if !filepath.IsAbs(configuration.StartDirectory) {
		configuration.StartDirectory = filepath.Join(absoluteWorkingDirectory, configuration.StartDirectory)
	}
	return configuration, nil
}
