package content

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport reports a network failure, a non-success status or an
	// unreadable file.
	ErrTransport = errors.New("content transport failure")
	// ErrMalformed reports a body that is not a valid content document.
	ErrMalformed = errors.New("malformed content document")
	// ErrNotFound reports a section or topic identifier absent from the document.
	ErrNotFound = errors.New("not found")
)

func notFound(kind, id string) error {
	return fmt.Errorf("%s %q: %w", kind, id, ErrNotFound)
}
