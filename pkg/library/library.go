// Package library writes generated elements into a LibrePCB library tree.
//
// A library is a directory whose elements live under per-kind
// subdirectories, one directory per element keyed by its UUID:
//
//	<library>/
//	  pkg/<uuid>/package.lp
//	  pkg/<uuid>/.librepcb-pkg
//	  sym/<uuid>/symbol.lp
//	  ...
//
// The dotfile marker carries the file format version and is what makes
// LibrePCB recognize the directory as an element.
package library

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/inktrace/inktrace/pkg/errors"
	"github.com/inktrace/inktrace/pkg/librepcb"
	"github.com/inktrace/inktrace/pkg/observability"
)

// Write stores each element under root and returns the paths of the written
// element documents in element order. Root must be an existing directory
// (the library itself is never created implicitly); a missing or non-directory
// root yields an INVALID_PATH error.
//
// Writing the same element UUID again overwrites the previous files, which
// is how regeneration updates a library in place.
func Write(root string, elements []librepcb.Element) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "library directory %q", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "library path %q is not a directory", root)
	}

	paths := make([]string, 0, len(elements))
	for _, el := range elements {
		path, err := writeElement(root, el)
		if err != nil {
			return nil, err
		}
		observability.Library().OnElementWritten(string(el.Kind), path)
		paths = append(paths, path)
	}
	return paths, nil
}

// writeElement creates the element directory with its document and marker
// files and returns the document path.
func writeElement(root string, el librepcb.Element) (string, error) {
	dir := filepath.Join(root, el.Kind.Dir(), el.UUID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", dir, err)
	}

	marker := filepath.Join(dir, el.Kind.MarkerName())
	if err := os.WriteFile(marker, []byte(librepcb.MarkerContent), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", marker, err)
	}

	doc := filepath.Join(dir, el.Kind.FileName())
	if err := os.WriteFile(doc, el.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", doc, err)
	}

	return doc, nil
}
