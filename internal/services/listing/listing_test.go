package listing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.June, 10, 12, 0, 0, 0, time.Local)

func newFixedService(fileSystem afero.Fs, owner string) *Service {
	return &Service{
		fileSystem: fileSystem,
		ownership: func(string) ownership {
			return ownership{links: 2, owner: owner, group: "staff"}
		},
		now: func() time.Time { return fixedNow },
	}
}

func TestDescribeFormatsFileAndDirectory(t *testing.T) {
	fileSystem := afero.NewMemMapFs()
	modified := time.Date(2024, time.June, 2, 15, 4, 0, 0, time.Local)
	require.NoError(t, fileSystem.MkdirAll("/root/dir", 0o755))
	require.NoError(t, fileSystem.Chmod("/root/dir", 0o755))
	require.NoError(t, afero.WriteFile(fileSystem, "/root/file.txt", []byte("hello"), 0o644))
	require.NoError(t, fileSystem.Chmod("/root/file.txt", 0o644))
	require.NoError(t, fileSystem.Chtimes("/root/file.txt", modified, modified))
	require.NoError(t, fileSystem.Chtimes("/root/dir", modified, modified))

	service := newFixedService(fileSystem, "alice")

	fileInfo, fileError := service.Describe("/root/file.txt")
	require.NoError(t, fileError)
	require.Equal(t, "-rw-r--r-- 2 alice staff 5 Jun  2 15:04 ", fileInfo)

	directoryInfo, directoryError := service.Describe("/root/dir")
	require.NoError(t, directoryError)
	require.True(t, strings.HasPrefix(directoryInfo, "drwxr-xr-x 2 alice staff "), directoryInfo)
	require.True(t, strings.HasSuffix(directoryInfo, "Jun  2 15:04 "), directoryInfo)
}

func TestDescribeRendersBackslashesAsDoubleSpaces(t *testing.T) {
	fileSystem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fileSystem, "/file", []byte("x"), 0o600))

	service := newFixedService(fileSystem, `DOMAIN\alice`)

	info, describeError := service.Describe("/file")
	require.NoError(t, describeError)
	require.Contains(t, info, "DOMAIN  alice")
	require.NotContains(t, info, `\`)
}

func TestDescribeMissingPathFails(t *testing.T) {
	service := newFixedService(afero.NewMemMapFs(), "alice")

	info, describeError := service.Describe("/missing")
	require.Error(t, describeError)
	require.Empty(t, info)
}

func TestDescribeReadsHostFilesystem(t *testing.T) {
	rootDirectory := t.TempDir()
	filePath := filepath.Join(rootDirectory, "host.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("hello"), 0o600))

	service := NewService(afero.NewOsFs())

	info, describeError := service.Describe(filePath)
	require.NoError(t, describeError)
	require.True(t, strings.HasPrefix(info, "-rw-------"), info)
	require.True(t, strings.HasSuffix(info, " "), info)
	require.Contains(t, info, " 5 ")
}
