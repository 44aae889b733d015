// Package scanner discovers candidate image files on disk.
package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// imageExtensions covers the RAW formats of the major camera vendors,
// plus TIFF and JPEG for the built-in decoder backend. Matching is
// case-insensitive.
var imageExtensions = map[string]bool{
	".cr3": true, ".cr2": true, ".orf": true, ".nef": true, ".arw": true,
	".raf": true, ".rw2": true, ".dng": true, ".3fr": true, ".ari": true,
	".bay": true, ".cap": true, ".data": true, ".dcs": true, ".dcr": true,
	".drf": true, ".eip": true, ".erf": true, ".fff": true, ".gpr": true,
	".iiq": true, ".k25": true, ".kdc": true, ".mdc": true, ".mef": true,
	".mos": true, ".mrw": true, ".nrw": true, ".obm": true, ".pef": true,
	".ptx": true, ".pxn": true, ".r3d": true, ".raw": true, ".rwl": true,
	".rwz": true, ".sr2": true, ".srf": true, ".srw": true, ".tif": true,
	".x3f": true, ".jpg": true, ".jpeg": true,
}

// Find returns the image files under dir, sorted for a stable processing
// order. With recursive false only the top-level directory is searched.
func Find(dir string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("directory not found: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	var files []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recursive && path != dir {
				return fs.SkipDir
			}
			return nil
		}
		if imageExtensions[strings.ToLower(filepath.Ext(path))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}

	sort.Strings(files)
	return files, nil
}
