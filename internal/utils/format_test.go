package utils_test

import (
	"io/fs"
	"testing"
	"time"

	"github.com/temirov/tree/internal/utils"
)

func TestFormatHumanSize(t *testing.T) {
	testCases := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "negative", bytes: -1, expected: "0"},
		{name: "zero", bytes: 0, expected: "0"},
		{name: "bytes", bytes: 512, expected: "512"},
		{name: "largest plain", bytes: 1023, expected: "1023"},
		{name: "one kilobyte", bytes: 1024, expected: "1.0K"},
		{name: "directory block", bytes: 4096, expected: "4.0K"},
		{name: "rounds up fraction", bytes: 1025, expected: "1.1K"},
		{name: "ten kilobytes", bytes: 10 * 1024, expected: "10K"},
		{name: "rounds up whole", bytes: 10*1024 + 1, expected: "11K"},
		{name: "twelve megabytes", bytes: 12 * 1024 * 1024, expected: "12M"},
		{name: "promotes unit", bytes: 1024*1024 - 1, expected: "1.0M"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := utils.FormatHumanSize(testCase.bytes)
			if result != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, result)
			}
		})
	}
}

func TestFormatListingTimestamp(t *testing.T) {
	location := time.Local
	now := time.Date(2024, time.June, 10, 12, 0, 0, 0, location)
	testCases := []struct {
		name     string
		value    time.Time
		expected string
	}{
		{
			name:     "zero time",
			value:    time.Time{},
			expected: "",
		},
		{
			name:     "recent timestamp",
			value:    time.Date(2024, time.June, 2, 15, 4, 0, 0, location),
			expected: "Jun  2 15:04",
		},
		{
			name:     "old timestamp",
			value:    time.Date(2023, time.January, 12, 9, 30, 0, 0, location),
			expected: "Jan 12  2023",
		},
		{
			name:     "future timestamp",
			value:    time.Date(2025, time.March, 3, 8, 0, 0, 0, location),
			expected: "Mar  3  2025",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := utils.FormatListingTimestamp(testCase.value, now)
			if result != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, result)
			}
		})
	}
}

func TestFormatListingMode(t *testing.T) {
	testCases := []struct {
		name     string
		mode     fs.FileMode
		expected string
	}{
		{name: "regular file", mode: 0o644, expected: "-rw-r--r--"},
		{name: "directory", mode: fs.ModeDir | 0o755, expected: "drwxr-xr-x"},
		{name: "symlink", mode: fs.ModeSymlink | 0o777, expected: "lrwxrwxrwx"},
		{name: "setuid executable", mode: fs.ModeSetuid | 0o755, expected: "-rwsr-xr-x"},
		{name: "setgid without execute", mode: fs.ModeSetgid | 0o640, expected: "-rw-r-S---"},
		{name: "sticky directory", mode: fs.ModeDir | fs.ModeSticky | 0o777, expected: "drwxrwxrwt"},
		{name: "named pipe", mode: fs.ModeNamedPipe | 0o600, expected: "prw-------"},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result := utils.FormatListingMode(testCase.mode)
			if result != testCase.expected {
				t.Fatalf("expected %s, got %s", testCase.expected, result)
			}
		})
	}
}
