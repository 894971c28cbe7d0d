//go:build unix

package listing

import (
	"golang.org/x/sys/unix"
)

// lookupOwnership reads link count, owner and group for path from the host
// filesystem. Paths that only exist in a virtual filesystem report unknown ownership.
func lookupOwnership(path string) ownership {
	var status unix.Stat_t
	if lstatError := unix.Lstat(path, &status); lstatError != nil {
		return unknownOwnership()
	}
	return ownership{
		links: uint64(status.Nlink),
		owner: resolveUserName(status.Uid),
		group: resolveGroupName(status.Gid),
	}
}
