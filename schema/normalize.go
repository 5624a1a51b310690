package schema

import (
	"fmt"
	"strings"
)

// ParseOperationMode validates a mode string from API input.
func ParseOperationMode(value string) (OperationMode, error) {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	switch OperationMode(trimmed) {
	case ModeCopyReplace, ModeCopyNew, ModeMoveReplace, ModeMoveNew:
		return OperationMode(trimmed), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, value)
}

// NormalizeOperationMode maps stored mode values onto the current set.
// Early documents used bare "copy" and "move"; anything unrecognized
// falls back to copy_replace.
func NormalizeOperationMode(value string) OperationMode {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	switch OperationMode(trimmed) {
	case ModeCopyReplace, ModeCopyNew, ModeMoveReplace, ModeMoveNew:
		return OperationMode(trimmed)
	}
	switch trimmed {
	case "copy":
		return ModeCopyReplace
	case "move":
		return ModeMoveReplace
	}
	return ModeCopyReplace
}

// ParseImportMode validates an import mode string.
func ParseImportMode(value string) (ImportMode, error) {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	switch ImportMode(trimmed) {
	case ImportReplace, ImportMerge:
		return ImportMode(trimmed), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidImportMode, value)
}

// NormalizeTabName trims surrounding whitespace. An empty result is
// allowed; the service assigns a generated name on create.
func NormalizeTabName(name TabName) TabName {
	return TabName(strings.TrimSpace(string(name)))
}
