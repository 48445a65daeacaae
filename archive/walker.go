// Package archive reads parts of zip based packages (OOXML documents are zip
// containers) on top of "archive/zip".
package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"path"
	"strings"
)

// MaxPartSize limits the uncompressed size of a single part read by ReadPart.
const MaxPartSize = 64 << 20

// WalkFunc is the type of the function called for each part of the package
// visited by Walk. If an error is returned, processing stops.
type WalkFunc func(file *zip.File) error

// Open returns a reader over package data kept in memory.
func Open(data []byte) (*zip.Reader, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("unable to read zip container: %w", err)
	}
	return r, nil
}

// Walk walks all parts of the package whose names start with prefix, calling
// walkFn for each. Parts with path traversal components ("..") or absolute
// names make Walk fail.
func Walk(r *zip.Reader, prefix string, walkFn WalkFunc) error {
	for _, f := range r.File {
		name := f.Name
		if !isSafePath(name) {
			return fmt.Errorf("zip entry %q: unsafe path (absolute or contains path traversal)", name)
		}
		if !f.FileInfo().IsDir() && strings.HasPrefix(name, prefix) {
			if err := walkFn(f); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadPart returns the content of a single part.
func ReadPart(f *zip.File) ([]byte, error) {
	if f.UncompressedSize64 > MaxPartSize {
		return nil, fmt.Errorf("zip entry %q: too large (%d bytes)", f.Name, f.UncompressedSize64)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("zip entry %q: %w", f.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, MaxPartSize+1))
	if err != nil {
		return nil, fmt.Errorf("zip entry %q: %w", f.Name, err)
	}
	if len(data) > MaxPartSize {
		return nil, fmt.Errorf("zip entry %q: too large", f.Name)
	}
	return data, nil
}

// ReadParts reads the named parts. Names are matched case-insensitively as
// OOXML part names are. Missing parts are absent from the result.
func ReadParts(r *zip.Reader, names ...string) (map[string][]byte, error) {
	wanted := make(map[string]string, len(names))
	for _, n := range names {
		wanted[strings.ToLower(n)] = n
	}
	parts := make(map[string][]byte, len(names))
	err := Walk(r, "", func(f *zip.File) error {
		name, ok := wanted[strings.ToLower(f.Name)]
		if !ok {
			return nil
		}
		data, err := ReadPart(f)
		if err != nil {
			return err
		}
		parts[name] = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return parts, nil
}

// isSafePath returns false for part names that could escape the package
// root: absolute paths and those containing ".." components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(name, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
