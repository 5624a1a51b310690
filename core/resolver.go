package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/routedrop/schema"
)

// resolvedTarget is the computed destination for one dropped source.
type resolvedTarget struct {
	Destination    string
	WouldOverwrite bool
}

// dropName derives the destination name from a source path: its final
// element after trailing separators are trimmed. Roots and dot paths
// carry no usable name.
func dropName(source string) (string, error) {
	base := filepath.Base(filepath.Clean(source))
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return "", fmt.Errorf("%w: cannot derive a name from %q", schema.ErrInvalidRequest, source)
	}
	return base, nil
}

// resolveTarget joins the tab's destination directory with the source's
// name and probes whether the destination already exists. The probe is
// the only filesystem access here; transfers happen elsewhere.
func resolveTarget(destDir, source string) (resolvedTarget, error) {
	if strings.TrimSpace(destDir) == "" {
		return resolvedTarget{}, schema.ErrNoDestination
	}
	name, err := dropName(source)
	if err != nil {
		return resolvedTarget{}, err
	}
	target := resolvedTarget{Destination: filepath.Join(destDir, name)}
	if _, err := os.Lstat(target.Destination); err == nil {
		target.WouldOverwrite = true
	}
	return target, nil
}
