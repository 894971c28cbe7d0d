package config_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/temirov/tree/internal/config"
	"github.com/temirov/tree/internal/types"
)

const testWorkingDirectory = "/home/user/root"

func newTestFlagSet() *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("tree-test", pflag.ContinueOnError)
	flagSet.BoolP(config.AbsolutePathsKey, "a", false, "")
	flagSet.StringP(config.DirectoryKey, "d", "", "")
	flagSet.BoolP(config.TruncatedPathsKey, "t", false, "")
	flagSet.BoolP(config.VerboseKey, "v", false, "")
	flagSet.Bool(config.CopyKey, false, "")
	return flagSet
}

func resolveArguments(t *testing.T, arguments []string) types.Configuration {
	t.Helper()
	flagSet := newTestFlagSet()
	require.NoError(t, flagSet.Parse(arguments))
	reader, readerError := config.NewReader(flagSet)
	require.NoError(t, readerError)
	configuration, resolveError := config.Resolve(reader, testWorkingDirectory)
	require.NoError(t, resolveError)
	return configuration
}

func TestResolveAppliesFlags(t *testing.T) {
	testCases := []struct {
		name      string
		arguments []string
		expected  types.Configuration
	}{
		{
			name:      "defaults",
			arguments: nil,
			expected: types.Configuration{
				StartDirectory:   testWorkingDirectory,
				WorkingDirectory: testWorkingDirectory,
			},
		},
		{
			name:      "absolute_wins_over_truncated",
			arguments: []string{"-a", "-t"},
			expected: types.Configuration{
				ShowAbsolutePaths: true,
				StartDirectory:    testWorkingDirectory,
				WorkingDirectory:  testWorkingDirectory,
			},
		},
		{
			name:      "truncated_alone",
			arguments: []string{"--truncated_paths"},
			expected: types.Configuration{
				ShowTruncatedPaths: true,
				StartDirectory:     testWorkingDirectory,
				WorkingDirectory:   testWorkingDirectory,
			},
		},
		{
			name:      "relative_directory_and_verbose",
			arguments: []string{"-v", "-d", "sub/dir", "--copy"},
			expected: types.Configuration{
				Verbose:          true,
				CopyToClipboard:  true,
				StartDirectory:   testWorkingDirectory + "/sub/dir",
				WorkingDirectory: testWorkingDirectory,
			},
		},
		{
			name:      "absolute_directory",
			arguments: []string{"--directory", "/srv/data"},
			expected: types.Configuration{
				StartDirectory:   "/srv/data",
				WorkingDirectory: testWorkingDirectory,
			},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, resolveArguments(t, testCase.arguments))
		})
	}
}

func TestResolveReadsEnvironment(t *testing.T) {
	t.Setenv("TREE_VERBOSE", "true")
	t.Setenv("TREE_TRUNCATED_PATHS", "true")
	t.Setenv("TREE_DIRECTORY", "/srv/env")

	configuration := resolveArguments(t, nil)

	require.True(t, configuration.Verbose)
	require.True(t, configuration.ShowTruncatedPaths)
	require.Equal(t, "/srv/env", configuration.StartDirectory)
}

func TestResolveFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("TREE_DIRECTORY", "/srv/env")
	t.Setenv("TREE_TRUNCATED_PATHS", "true")

	configuration := resolveArguments(t, []string{"-d", "/srv/flag", "-a"})

	require.Equal(t, "/srv/flag", configuration.StartDirectory)
	require.True(t, configuration.ShowAbsolutePaths)
	require.False(t, configuration.ShowTruncatedPaths)
}

func TestResolveUsesProcessWorkingDirectoryWhenEmpty(t *testing.T) {
	temporaryDirectory := t.TempDir()
	t.Chdir(temporaryDirectory)

	flagSet := newTestFlagSet()
	require.NoError(t, flagSet.Parse(nil))
	reader, readerError := config.NewReader(flagSet)
	require.NoError(t, readerError)

	configuration, resolveError := config.Resolve(reader, "")
	require.NoError(t, resolveError)
	require.NotEmpty(t, configuration.WorkingDirectory)
	require.Equal(t, configuration.WorkingDirectory, configuration.StartDirectory)
}
