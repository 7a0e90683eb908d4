// Package config reads fonts configuration files.
package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem is where the Parser finds fonts files and expands include
// patterns. Paths are absolute; Stat results also supply the mtimes the
// Parser tracks.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	// Glob expands an include pattern into absolute paths.
	Glob(pattern string) ([]string, error)
}

// OSFS reads fonts files from the host file system.
type OSFS struct{}

// NewOSFS creates a new OSFS.
func NewOSFS() *OSFS {
	return &OSFS{}
}

// Stat returns file info for path.
func (*OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads a fonts file.
func (*OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- fonts files come from the lookup candidates and their includes
	return os.ReadFile(path)
}

// Glob expands pattern on the host file system.
func (*OSFS) Glob(pattern string) ([]string, error) {
	return filepath.Glob(pattern)
}

// MapFS serves fonts files from an fs.FS mounted at an absolute root, so
// a configuration tree can be described with fstest.MapFS.
type MapFS struct {
	fsys fs.FS
	root string
}

// NewMapFS mounts fsys at root.
func NewMapFS(root string, fsys fs.FS) *MapFS {
	return &MapFS{fsys: fsys, root: filepath.Clean(root)}
}

// Stat returns file info for path.
func (m *MapFS) Stat(path string) (fs.FileInfo, error) {
	return fs.Stat(m.fsys, m.rel(path))
}

// ReadFile reads a fonts file.
func (m *MapFS) ReadFile(path string) ([]byte, error) {
	return fs.ReadFile(m.fsys, m.rel(path))
}

// Glob expands pattern and returns the matches under root.
func (m *MapFS) Glob(pattern string) ([]string, error) {
	matches, err := fs.Glob(m.fsys, m.rel(pattern))
	if err != nil {
		return nil, err
	}
	for i, match := range matches {
		matches[i] = filepath.Join(m.root, filepath.FromSlash(match))
	}
	return matches, nil
}

// rel maps a path under root onto fsys. Anything outside root is passed
// through unchanged and fails the lookup as an invalid fs path.
func (m *MapFS) rel(path string) string {
	rel, err := filepath.Rel(m.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.ToSlash(rel)
}
