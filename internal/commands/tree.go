// Package commands contains the traversal logic behind the tree command.
package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/temirov/tree/internal/output"
	"github.com/temirov/tree/internal/services/listing"
	"github.com/temirov/tree/internal/types"
	"github.com/temirov/tree/internal/utils"
)

var (
	// ErrNotFound reports a directory that does not exist.
	ErrNotFound = errors.New("directory not found")
	// ErrAccess reports a directory that exists but cannot be listed.
	ErrAccess = errors.New("directory not accessible")
)

const (
	// errorReadDirectoryFormat wraps a listing failure with its classification.
	errorReadDirectoryFormat = "%w: reading directory %s: %w"
	// errorNotDirectoryFormat reports a start path that is not a directory.
	errorNotDirectoryFormat = "%w: %s is not a directory"
	// errorWriteLineFormat is used when an output line cannot be written.
	errorWriteLineFormat = "writing line for %s: %w"
	// errorWriteRootFormat is used when the root label cannot be written.
	errorWriteRootFormat = "writing root label: %w"
	// errorWriteSummaryFormat is used when the summary cannot be written.
	errorWriteSummaryFormat = "writing summary: %w"

	// warningVerboseInfoMessage is logged when metadata for an entry is unavailable.
	warningVerboseInfoMessage = "verbose info unavailable"
	logFieldPath              = "path"
)

// TreeWalkerDependencies carries the collaborators of a TreeWalker.
// Zero values fall back to the host filesystem, stdout, a stat-based
// listing service and a no-op logger.
type TreeWalkerDependencies struct {
	FileSystem afero.Fs
	Writer     io.Writer
	Describer  listing.Describer
	Logger     *zap.Logger
}

// TreeWalker renders one directory hierarchy and counts what it visits.
// A TreeWalker is constructed for a single run and is not safe for concurrent use.
type TreeWalker struct {
	fileSystem    afero.Fs
	writer        io.Writer
	describer     listing.Describer
	logger        *zap.Logger
	configuration types.Configuration
	basePath      string

	directoryCount int
	fileCount      int
}

// NewTreeWalker constructs a TreeWalker for configuration. The truncation base
// path is the parent of the configured working directory.
func NewTreeWalker(configuration types.Configuration, dependencies TreeWalkerDependencies) *TreeWalker {
	fileSystem := dependencies.FileSystem
	if fileSystem == nil {
		fileSystem = afero.NewOsFs()
	}
	writer := dependencies.Writer
	if writer == nil {
		writer = os.Stdout
	}
	describer := dependencies.Describer
	if describer == nil {
		describer = listing.NewService(fileSystem)
	}
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TreeWalker{
		fileSystem:    fileSystem,
		writer:        writer,
		describer:     describer,
		logger:        logger,
		configuration: configuration,
		basePath:      utils.ParentDirectoryWithSeparator(configuration.WorkingDirectory),
	}
}

// Run prints the root label, the tree below the start directory, a blank line
// and the summary. Nothing is printed when the start directory is unusable.
func (treeWalker *TreeWalker) Run() error {
	if validationError := treeWalker.validateStartDirectory(); validationError != nil {
		return validationError
	}
	if _, writeError := fmt.Fprintln(treeWalker.writer, output.RootLabel(treeWalker.configuration)); writeError != nil {
		return fmt.Errorf(errorWriteRootFormat, writeError)
	}
	if walkError := treeWalker.Walk(treeWalker.configuration.StartDirectory, ""); walkError != nil {
		return walkError
	}
	if writeError := output.WriteSummary(treeWalker.writer, treeWalker.Counts()); writeError != nil {
		return fmt.Errorf(errorWriteSummaryFormat, writeError)
	}
	return nil
}

// Walk writes one line per visible child of directory, depth first, and
// recurses into every child directory with the extended prefix.
func (treeWalker *TreeWalker) Walk(directory string, prefix string) error {
	childNames, listError := treeWalker.visibleChildNames(directory)
	if listError != nil {
		return listError
	}

	for childIndex, childName := range childNames {
		isLast := childIndex == len(childNames)-1
		childPath := filepath.Join(directory, childName)
		isDirectory := treeWalker.isDirectory(childPath)
		treeWalker.register(isDirectory)

		label := treeWalker.entryLabel(childName, childPath, isDirectory)
		verboseInfo := treeWalker.verboseInfo(childPath)
		if writeError := output.WriteTreeLine(treeWalker.writer, prefix, isLast, verboseInfo, label); writeError != nil {
			return fmt.Errorf(errorWriteLineFormat, childPath, writeError)
		}

		if isDirectory {
			if walkError := treeWalker.Walk(childPath, output.ChildPrefix(prefix, isLast)); walkError != nil {
				return walkError
			}
		}
	}
	return nil
}

// Counts returns the directories and files visited so far.
func (treeWalker *TreeWalker) Counts() types.TreeCounts {
	return types.TreeCounts{
		Directories: treeWalker.directoryCount,
		Files:       treeWalker.fileCount,
	}
}

// Summary returns the "<n> directories, <m> files" line for the counts so far.
func (treeWalker *TreeWalker) Summary() string {
	return output.FormatSummaryLine(treeWalker.Counts())
}

func (treeWalker *TreeWalker) validateStartDirectory() error {
	startDirectory := treeWalker.configuration.StartDirectory
	startInformation, statError := treeWalker.fileSystem.Stat(startDirectory)
	if statError != nil {
		return classifyReadError(startDirectory, statError)
	}
	if !startInformation.IsDir() {
		return fmt.Errorf(errorNotDirectoryFormat, ErrAccess, startDirectory)
	}
	return nil
}

// visibleChildNames lists directory, drops hidden names and sorts the rest by raw byte order.
func (treeWalker *TreeWalker) visibleChildNames(directory string) ([]string, error) {
	directoryEntries, readDirectoryError := afero.ReadDir(treeWalker.fileSystem, directory)
	if readDirectoryError != nil {
		return nil, classifyReadError(directory, readDirectoryError)
	}
	childNames := make([]string, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		if utils.IsHiddenName(directoryEntry.Name()) {
			continue
		}
		childNames = append(childNames, directoryEntry.Name())
	}
	sort.Strings(childNames)
	return childNames, nil
}

// isDirectory follows symbolic links; entries that cannot be stat'ed count as files.
func (treeWalker *TreeWalker) isDirectory(path string) bool {
	entryInformation, statError := treeWalker.fileSystem.Stat(path)
	return statError == nil && entryInformation.IsDir()
}

func (treeWalker *TreeWalker) register(isDirectory bool) {
	if isDirectory {
		treeWalker.directoryCount++
		return
	}
	treeWalker.fileCount++
}

// entryLabel applies the label policy: the name by default, the absolute path
// in absolute mode, and the absolute path without the base path in truncated
// mode. Directories always end with a separator.
func (treeWalker *TreeWalker) entryLabel(name string, path string, isDirectory bool) string {
	label := name
	if treeWalker.configuration.ShowAbsolutePaths || treeWalker.configuration.ShowTruncatedPaths {
		label = treeWalker.absolutePath(path)
		if treeWalker.configuration.ShowTruncatedPaths && utils.IsWithinDirectory(label, treeWalker.basePath) {
			label = strings.TrimPrefix(label, treeWalker.basePath)
		}
	}
	if isDirectory {
		label += utils.PathSeparator
	}
	return label
}

// absolutePath resolves path against the configured working directory.
func (treeWalker *TreeWalker) absolutePath(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(treeWalker.configuration.WorkingDirectory, path)
	}
	return filepath.ToSlash(filepath.Clean(path))
}

func (treeWalker *TreeWalker) verboseInfo(path string) string {
	if !treeWalker.configuration.Verbose {
		return utils.EmptyString
	}
	info, describeError := treeWalker.describer.Describe(path)
	if describeError != nil {
		treeWalker.logger.Warn(warningVerboseInfoMessage, zap.String(logFieldPath, path), zap.Error(describeError))
		return utils.EmptyString
	}
	return info
}

func classifyReadError(directory string, readError error) error {
	if errors.Is(readError, fs.ErrNotExist) {
		return fmt.Errorf(errorReadDirectoryFormat, ErrNotFound, directory, readError)
	}
	return fmt.Errorf(errorReadDirectoryFormat, ErrAccess, directory, readError)
}
