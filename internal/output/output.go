// Package output formats the lines of a rendered directory tree.
package output

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/temirov/tree/internal/types"
	"github.com/temirov/tree/internal/utils"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "

	// defaultRootLabel is printed as the first line when no path mode is active.
	defaultRootLabel = "."

	summaryLineFormat = "%d directories, %d files"
	treeLineFormat    = "%s%s%s%s\n"
)

// Connector returns the glyph drawn before an entry: the terminal connector
// for the last sibling and the mid-list connector for every other one.
func Connector(isLast bool) string {
	if isLast {
		return treeLastConnector
	}
	return treeBranchConnector
}

// ChildPrefix extends prefix for the children of an entry. Children of the
// last sibling are padded with blanks, all others continue the vertical bar.
func ChildPrefix(prefix string, isLast bool) string {
	if isLast {
		return prefix + treeLastPadding
	}
	return prefix + treeBranchPadding
}

// WriteTreeLine writes one entry line: prefix, connector, verbose info and label.
func WriteTreeLine(writer io.Writer, prefix string, isLast bool, verboseInfo string, label string) error {
	_, writeError := fmt.Fprintf(writer, treeLineFormat, prefix, Connector(isLast), verboseInfo, label)
	return writeError
}

// RootLabel returns the first output line for the configuration: the working
// directory in absolute mode, its base name in truncated mode, otherwise ".".
func RootLabel(configuration types.Configuration) string {
	switch {
	case configuration.ShowAbsolutePaths:
		return utils.EnsureTrailingSeparator(filepath.ToSlash(configuration.WorkingDirectory))
	case configuration.ShowTruncatedPaths:
		return filepath.Base(configuration.WorkingDirectory) + utils.PathSeparator
	default:
		return defaultRootLabel
	}
}

// FormatSummaryLine formats the final directory and file counts.
func FormatSummaryLine(counts types.TreeCounts) string {
	return fmt.Sprintf(summaryLineFormat, counts.Directories, counts.Files)
}

// WriteSummary writes the blank separator line followed by the summary line.
func WriteSummary(writer io.Writer, counts types.TreeCounts) error {
	_, writeError := fmt.Fprintf(writer, "\n%s\n", FormatSummaryLine(counts))
	return writeError
}
