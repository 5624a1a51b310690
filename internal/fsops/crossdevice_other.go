//go:build !unix

package fsops

import (
	"errors"
	"os"
)

// Without a portable EXDEV, treat any failed rename of an existing
// source as a device boundary and let the copy fallback surface the
// real error if there is one.
func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	return errors.As(err, &linkErr)
}
