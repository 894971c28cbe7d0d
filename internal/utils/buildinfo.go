package utils

import (
	"os/exec"
	"path/filepath"
	"runtime/debug"
	"strings"
)

const (
	unknownVersion        = "unknown"
	developmentVersion    = "(devel)"
	gitDirectoryName      = ".git"
	gitExecutableName     = "git"
	gitDescribeSubcommand = "describe"
)

var gitDescribeArgumentSets = [][]string{
	{gitDescribeSubcommand, "--tags", "--exact-match"},
	{gitDescribeSubcommand, "--tags", "--long", "--dirty"},
}

// GetApplicationVersion reports the module version recorded in the binary.
// Development builds fall back to git describe in the enclosing checkout.
func GetApplicationVersion() string {
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if buildInfoAvailable && buildInfo.Main.Version != "" && buildInfo.Main.Version != developmentVersion {
		return buildInfo.Main.Version
	}

	checkoutDirectory, found := findCheckoutDirectory(".")
	if !found {
		return unknownVersion
	}
	for _, describeArguments := range gitDescribeArgumentSets {
		// #nosec G204
		describeCommand := exec.Command(gitExecutableName, describeArguments...)
		describeCommand.Dir = checkoutDirectory
		describeOutput, describeError := describeCommand.Output()
		if describeError == nil && len(describeOutput) > 0 {
			return strings.TrimSpace(string(describeOutput))
		}
	}
	return unknownVersion
}

// findCheckoutDirectory walks upward from startDirectory until it finds a
// directory holding a .git folder.
func findCheckoutDirectory(startDirectory string) (string, bool) {
	currentDirectory, absoluteError := filepath.Abs(startDirectory)
	if absoluteError != nil {
		return "", false
	}
	for {
		if IsExistingDirectory(filepath.Join(currentDirectory, gitDirectoryName)) {
			return currentDirectory, true
		}
		parentDirectory := filepath.Dir(currentDirectory)
		if parentDirectory == currentDirectory {
			return "", false
		}
		currentDirectory = parentDirectory
	}
}
