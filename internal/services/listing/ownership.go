package listing

import (
	"os/user"
	"strconv"
)

// unknownOwnerName stands in for owner and group when the platform cannot report them.
const unknownOwnerName = "-"

type ownership struct {
	links uint64
	owner string
	group string
}

func unknownOwnership() ownership {
	return ownership{links: 1, owner: unknownOwnerName, group: unknownOwnerName}
}

// resolveUserName maps a numeric user id to its name, keeping the number when
// the account database has no entry.
func resolveUserName(userID uint32) string {
	identifier := strconv.FormatUint(uint64(userID), 10)
	account, lookupError := user.LookupId(identifier)
	if lookupError != nil || account.Username == "" {
		return identifier
	}
	return account.Username
}

func resolveGroupName(groupID uint32) string {
	identifier := strconv.FormatUint(uint64(groupID), 10)
	group, lookupError := user.LookupGroupId(identifier)
	if lookupError != nil || group.Name == "" {
		return identifier
	}
	return group.Name
}
