// Package types defines every cross‑package data structure used by the tree CLI.
package types

// CommandTree is the name of the root command.
const CommandTree = "tree"

// Configuration is the immutable set of display options resolved once at startup.
// ShowAbsolutePaths and ShowTruncatedPaths are never both true.
type Configuration struct {
	ShowAbsolutePaths  bool
	ShowTruncatedPaths bool
	Verbose            bool
	CopyToClipboard    bool
	// StartDirectory is the directory whose children are rendered.
	StartDirectory string
	// WorkingDirectory is the process working directory captured at startup.
	// It anchors the root label and the truncation base path.
	WorkingDirectory string
}

// TreeCounts holds the number of directories and files visited by one walk.
type TreeCounts struct {
	Directories int
	Files       int
}
