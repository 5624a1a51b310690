package schema

import "github.com/google/uuid"

// TabID identifies a routing tab.
type TabID string

// TabName is the user-facing name of a tab.
type TabName string

// OperationMode selects how a dropped source is transferred to a tab's
// destination and what happens when the destination already exists.
type OperationMode string

const (
	// ModeCopyReplace copies the source, overwriting an existing destination.
	ModeCopyReplace OperationMode = "copy_replace"
	// ModeCopyNew copies the source, skipping when the destination exists.
	ModeCopyNew OperationMode = "copy_new"
	// ModeMoveReplace moves the source, overwriting an existing destination.
	ModeMoveReplace OperationMode = "move_replace"
	// ModeMoveNew moves the source, skipping when the destination exists.
	ModeMoveNew OperationMode = "move_new"
)

// IsCopy reports whether the mode leaves the source in place.
func (m OperationMode) IsCopy() bool {
	return m == ModeCopyReplace || m == ModeCopyNew
}

// Overwrites reports whether the mode replaces an existing destination.
func (m OperationMode) Overwrites() bool {
	return m == ModeCopyReplace || m == ModeMoveReplace
}

// ImportMode selects how an imported document combines with existing tabs.
type ImportMode string

const (
	// ImportReplace discards existing tabs and adopts the document as-is.
	ImportReplace ImportMode = "replace"
	// ImportMerge appends the document's tabs after the existing ones.
	ImportMerge ImportMode = "merge"
)

// NewTabID returns a fresh tab identifier.
func NewTabID() TabID {
	return TabID(uuid.NewString())
}
