// Package scan decides whether a directory looks like a given kind of project.
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Criteria lists the markers that identify a project. Any single match is
// enough.
type Criteria struct {
	Files      []string
	Extensions []string
	Folders    []string
}

// Listing is a one-level view of a directory's entries.
type Listing struct {
	Dir        string
	files      map[string]struct{}
	folders    map[string]struct{}
	extensions map[string]struct{}
}

// ReadDir lists dir without descending into subdirectories.
func ReadDir(dir string) (*Listing, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("directory is required")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	listing := &Listing{
		Dir:        dir,
		files:      make(map[string]struct{}),
		folders:    make(map[string]struct{}),
		extensions: make(map[string]struct{}),
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			listing.folders[name] = struct{}{}
			continue
		}
		listing.files[name] = struct{}{}
		if ext := strings.TrimPrefix(filepath.Ext(name), "."); ext != "" {
			listing.extensions[strings.ToLower(ext)] = struct{}{}
		}
	}

	return listing, nil
}

// Match reports whether the listing satisfies any of the criteria.
func (l *Listing) Match(c Criteria) bool {
	if l == nil {
		return false
	}
	for _, file := range c.Files {
		if _, ok := l.files[file]; ok {
			return true
		}
	}
	for _, ext := range c.Extensions {
		if _, ok := l.extensions[strings.ToLower(strings.TrimPrefix(ext, "."))]; ok {
			return true
		}
	}
	for _, folder := range c.Folders {
		if _, ok := l.folders[folder]; ok {
			return true
		}
	}
	return false
}
