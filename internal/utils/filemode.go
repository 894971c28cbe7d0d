package utils

import (
	"io/fs"
	"strings"
)

const permissionLetters = "rwxrwxrwx"

// FormatListingMode renders a file mode as a ten character long-listing string
// such as "drwxr-xr-x" or "lrwxrwxrwx", including setuid, setgid and sticky markers.
func FormatListingMode(mode fs.FileMode) string {
	var builder strings.Builder
	builder.Grow(len(permissionLetters) + 1)
	builder.WriteByte(listingTypeLetter(mode))

	permissions := mode.Perm()
	for bitIndex := 0; bitIndex < len(permissionLetters); bitIndex++ {
		letter := byte('-')
		if permissions&(1<<uint(len(permissionLetters)-1-bitIndex)) != 0 {
			letter = permissionLetters[bitIndex]
		}
		switch {
		case bitIndex == 2 && mode&fs.ModeSetuid != 0:
			letter = specialExecuteLetter(letter, 's')
		case bitIndex == 5 && mode&fs.ModeSetgid != 0:
			letter = specialExecuteLetter(letter, 's')
		case bitIndex == 8 && mode&fs.ModeSticky != 0:
			letter = specialExecuteLetter(letter, 't')
		}
		builder.WriteByte(letter)
	}
	return builder.String()
}

func listingTypeLetter(mode fs.FileMode) byte {
	switch {
	case mode&fs.ModeDir != 0:
		return 'd'
	case mode&fs.ModeSymlink != 0:
		return 'l'
	case mode&fs.ModeNamedPipe != 0:
		return 'p'
	case mode&fs.ModeSocket != 0:
		return 's'
	case mode&fs.ModeCharDevice != 0:
		return 'c'
	case mode&fs.ModeDevice != 0:
		return 'b'
	default:
		return '-'
	}
}

// specialExecuteLetter returns the lower-case marker when the execute bit is
// set and the upper-case marker when it is not.
func specialExecuteLetter(current byte, marker byte) byte {
	if current == '-' {
		return marker - ('a' - 'A')
	}
	return marker
}
