// Package listing produces long-listing metadata for tree entries from the
// platform stat API.
package listing

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/afero"

	"github.com/temirov/tree/internal/utils"
)

const (
	// listingLineFormat orders the fields as mode, links, owner, group, size and
	// modification time. The trailing space separates the info from the label.
	listingLineFormat = "%s %d %s %s %s %s "

	// backslashReplacement is rendered in place of every backslash in the info.
	backslashReplacement = "  "
	backslash            = `\`

	errorStatEntryFormat = "stat %s: %w"
)

// Describer returns the verbose metadata printed before an entry label.
type Describer interface {
	Describe(path string) (string, error)
}

// Service implements Describer over an afero filesystem.
type Service struct {
	fileSystem afero.Fs
	ownership  func(path string) ownership
	now        func() time.Time
}

// NewService constructs a listing Service reading from fileSystem.
func NewService(fileSystem afero.Fs) *Service {
	return &Service{
		fileSystem: fileSystem,
		ownership:  lookupOwnership,
		now:        time.Now,
	}
}

// Describe stats path without following a final symbolic link and formats the
// result as a long-listing line.
func (service *Service) Describe(path string) (string, error) {
	entryInformation, statError := service.lstat(path)
	if statError != nil {
		return "", fmt.Errorf(errorStatEntryFormat, path, statError)
	}
	entryOwnership := service.ownership(path)
	line := fmt.Sprintf(
		listingLineFormat,
		utils.FormatListingMode(entryInformation.Mode()),
		entryOwnership.links,
		entryOwnership.owner,
		entryOwnership.group,
		utils.FormatHumanSize(entryInformation.Size()),
		utils.FormatListingTimestamp(entryInformation.ModTime(), service.now()),
	)
	return strings.ReplaceAll(line, backslash, backslashReplacement), nil
}

func (service *Service) lstat(path string) (os.FileInfo, error) {
	if lstater, supportsLstat := service.fileSystem.(afero.Lstater); supportsLstat {
		entryInformation, _, lstatError := lstater.LstatIfPossible(path)
		return entryInformation, lstatError
	}
	return service.fileSystem.Stat(path)
}

var _ Describer = (*Service)(nil)
