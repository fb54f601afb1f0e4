package snapshot

import (
	"errors"
	"fmt"
)

var (
	// ErrCorruptSnapshot is returned for any snapshot that cannot be decoded.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")

	// ErrUnsupportedFormat is returned by Encode for an unknown format or compression.
	ErrUnsupportedFormat = errors.New("unsupported snapshot format")

	// ErrInvalidEntry is returned by Encode for an entry that could not be
	// decoded again, such as one without a name or category.
	ErrInvalidEntry = errors.New("invalid snapshot entry")
)

func corruptf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorruptSnapshot, fmt.Sprintf(format, args...))
}

func corrupt(reason string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrCorruptSnapshot, reason, err)
}
