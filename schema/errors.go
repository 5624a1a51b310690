package schema

import "errors"

var (
	// ErrInvalidRequest indicates a malformed request payload.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrTabNotFound indicates a requested tab could not be found.
	ErrTabNotFound = errors.New("tab not found")
	// ErrInvalidMode indicates an unknown operation mode.
	ErrInvalidMode = errors.New("invalid operation mode")
	// ErrInvalidImportMode indicates an unknown import mode.
	ErrInvalidImportMode = errors.New("invalid import mode")
	// ErrNoDestination indicates a tab has no destination path configured.
	ErrNoDestination = errors.New("tab has no destination path")
	// ErrEmptyDrop indicates a drop request carried no sources.
	ErrEmptyDrop = errors.New("no sources in drop")
	// ErrInvalidDocument indicates a document does not match the
	// interchange schema.
	ErrInvalidDocument = errors.New("invalid config document")
	// ErrCorruptConfig indicates the stored config exists but cannot be
	// read or parsed.
	ErrCorruptConfig = errors.New("config store is corrupt")
)
