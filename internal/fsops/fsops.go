// Package fsops implements the file transfer primitives behind routing:
// copy, move with cross-device fallback, and checksum verification.
package fsops

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
)

// Copy copies src to dst, dispatching on the source type. Symlinks are
// followed, matching what a copy through a file manager would do.
func Copy(src, dst string, verify bool) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return CopyTree(src, dst, verify)
	}
	return CopyFile(src, dst, verify)
}

// CopyFile copies a regular file preserving its permission bits. A
// partially written destination is removed on failure.
func CopyFile(src, dst string, verify bool) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	if verify {
		return VerifyCopy(src, dst)
	}
	return nil
}

// CopyTree recursively copies a directory.
func CopyTree(src, dst string, verify bool) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", src)
	}
	if err := os.MkdirAll(dst, info.Mode().Perm()); err != nil {
		return err
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		sub, err := os.Stat(srcPath)
		if err != nil {
			return err
		}
		if sub.IsDir() {
			if err := CopyTree(srcPath, dstPath, verify); err != nil {
				return err
			}
			continue
		}
		if err := CopyFile(srcPath, dstPath, verify); err != nil {
			return err
		}
	}
	return nil
}

// Move transfers src to dst. Rename is tried first; when the rename
// crosses devices the source is copied and then deleted. A non-nil
// cleanup reports that the data reached dst but the source could not be
// removed.
func Move(src, dst string, verify bool) (cleanup error, err error) {
	if err := os.Rename(src, dst); err == nil {
		return nil, nil
	} else if !isCrossDevice(err) {
		return nil, err
	}
	if err := Copy(src, dst, verify); err != nil {
		return nil, err
	}
	if err := os.RemoveAll(src); err != nil {
		return err, nil
	}
	return nil, nil
}

// RemoveTarget removes a file or directory tree at path.
func RemoveTarget(path string) error {
	return os.RemoveAll(path)
}

// VerifyCopy compares BLAKE3 digests of src and dst.
func VerifyCopy(src, dst string) error {
	want, err := HashFile(src)
	if err != nil {
		return fmt.Errorf("hash source: %w", err)
	}
	got, err := HashFile(dst)
	if err != nil {
		return fmt.Errorf("hash destination: %w", err)
	}
	if want != got {
		return fmt.Errorf("checksum mismatch for %s: %s != %s", filepath.Base(dst), want, got)
	}
	return nil
}

// HashFile computes the BLAKE3 digest of a file.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := blake3.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
