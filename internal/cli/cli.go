// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/tree/internal/commands"
	"github.com/temirov/tree/internal/config"
	"github.com/temirov/tree/internal/services/clipboard"
	"github.com/temirov/tree/internal/types"
	"github.com/temirov/tree/internal/utils"
)

const (
	versionFlagName      = "version"
	versionTemplate      = "tree version: %s\n"
	rootUse              = types.CommandTree
	rootShortDescription = "print a directory tree"
	rootLongDescription  = `tree prints the directories and files below a starting directory,
skipping hidden entries, followed by a count of directories and files.
Use -a for absolute paths, -t for paths truncated at the parent of the working
directory, and -v for long-listing details. Flags may also be set through
TREE_ prefixed environment variables such as TREE_VERBOSE=true.`
	rootUsageExample = `  # Render the current directory
  tree

  # Render another directory with long-listing details
  tree -v -d ./cmd

  # Show paths relative to the parent of the working directory
  tree -t`

	absolutePathsShorthand  = "a"
	directoryShorthand      = "d"
	truncatedPathsShorthand = "t"
	verboseShorthand        = "v"

	absolutePathsFlagDescription  = "display the full absolute path of every file and directory"
	directoryFlagDescription      = "starting directory to process (default: current working directory)"
	truncatedPathsFlagDescription = "display paths truncated at the parent of the working directory; ignored with --absolute_paths"
	verboseFlagDescription        = "display long-listing details (mode, links, owner, group, size, time) for every entry"
	copyFlagDescription           = "copy the rendered tree to the system clipboard"
	versionFlagDescription        = "display application version"
)

// ErrClipboardUnavailable is returned when --copy is requested without a clipboard copier.
var ErrClipboardUnavailable = errors.New("clipboard copy requested but no clipboard is configured")

// Environment carries the process resources a tree run depends on.
type Environment struct {
	FileSystem afero.Fs
	// WorkingDirectory overrides the process working directory when set.
	WorkingDirectory string
	Copier           clipboard.Copier
	Logger           *zap.Logger
}

// treeOptions receives parsed flag values. The resolved configuration is read
// back through viper so environment variables apply to unset flags.
type treeOptions struct {
	absolutePaths  bool
	directory      string
	truncatedPaths bool
	verbose        bool
	copyOutput     bool
	showVersion    bool
}

// Execute runs the tree application with the process arguments.
func Execute(logger *zap.Logger) error {
	rootCommand := createRootCommand(Environment{
		FileSystem: afero.NewOsFs(),
		Copier:     clipboard.NewService(),
		Logger:     logger,
	})
	rootCommand.SetArgs(normalizeBooleanFlagArguments(rootCommand, os.Args[1:]))
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand(environment Environment) *cobra.Command {
	var options treeOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			if options.showVersion {
				_, writeError := fmt.Fprintf(command.OutOrStdout(), versionTemplate, utils.GetApplicationVersion())
				return writeError
			}
			reader, readerError := config.NewReader(command.Flags())
			if readerError != nil {
				return readerError
			}
			configuration, resolveError := config.Resolve(reader, environment.WorkingDirectory)
			if resolveError != nil {
				return resolveError
			}
			return runTree(command.OutOrStdout(), configuration, environment)
		},
	}

	flagSet := rootCommand.Flags()
	registerBooleanFlag(flagSet, &options.absolutePaths, config.AbsolutePathsKey, absolutePathsShorthand, false, absolutePathsFlagDescription)
	flagSet.StringVarP(&options.directory, config.DirectoryKey, directoryShorthand, "", directoryFlagDescription)
	registerBooleanFlag(flagSet, &options.truncatedPaths, config.TruncatedPathsKey, truncatedPathsShorthand, false, truncatedPathsFlagDescription)
	registerBooleanFlag(flagSet, &options.verbose, config.VerboseKey, verboseShorthand, false, verboseFlagDescription)
	registerBooleanFlag(flagSet, &options.copyOutput, config.CopyKey, "", false, copyFlagDescription)
	registerBooleanFlag(flagSet, &options.showVersion, versionFlagName, "", false, versionFlagDescription)
	return rootCommand
}

// runTree renders the tree for configuration to stdout and, when requested,
// copies the same text to the clipboard once rendering succeeded.
func runTree(stdout io.Writer, configuration types.Configuration, environment Environment) error {
	writer := stdout
	var rendered bytes.Buffer
	if configuration.CopyToClipboard {
		writer = io.MultiWriter(stdout, &rendered)
	}

	treeWalker := commands.NewTreeWalker(configuration, commands.TreeWalkerDependencies{
		FileSystem: environment.FileSystem,
		Writer:     writer,
		Logger:     environment.Logger,
	})
	if runError := treeWalker.Run(); runError != nil {
		return runError
	}

	if !configuration.CopyToClipboard {
		return nil
	}
	if environment.Copier == nil {
		return ErrClipboardUnavailable
	}
	return environment.Copier.Copy(rendered.String())
}
