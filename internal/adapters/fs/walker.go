// Package fs scans font directories and probes them for changes.
package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/fontconf/internal/core/domain"
	"go.trai.ch/zerr"
)

// fontFormats maps lower-case file suffixes to font formats.
// Longer suffixes come first so ".pcf.gz" wins over ".gz".
var fontFormats = []struct {
	suffix string
	format string
}{
	{".pcf.gz", "PCF"},
	{".ttf", "TrueType"},
	{".ttc", "TrueType Collection"},
	{".otf", "OpenType"},
	{".otc", "OpenType Collection"},
	{".pcf", "PCF"},
	{".pfa", "Type 1"},
	{".pfb", "Type 1"},
	{".woff2", "WOFF2"},
	{".woff", "WOFF"},
	{".bdf", "BDF"},
}

// shouldSkipDirectories are directories that never hold fonts.
var shouldSkipDirectories = map[string]bool{
	".git": true,
	".jj":  true,
}

// DirScan is the result of scanning one configured font directory.
type DirScan struct {
	// Root is the configured font directory.
	Root string
	// Fonts are the font files below Root in lexical walk order.
	Fonts []domain.Font
	// Mtimes holds the mtime of Root and of every directory below it.
	// Root maps to 0 when it does not exist.
	Mtimes map[string]int64
}

// FontFormat returns the font format for a file name, or false when the
// name does not look like a font.
func FontFormat(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, f := range fontFormats {
		if strings.HasSuffix(lower, f.suffix) {
			return f.format, true
		}
	}
	return "", false
}

// walkFontDir scans root recursively. A missing root yields an empty scan.
func walkFontDir(root string) (*DirScan, error) {
	scan := &DirScan{Root: root, Mtimes: make(map[string]int64)}

	info, err := os.Stat(root)
	if errors.Is(err, iofs.ErrNotExist) {
		scan.Mtimes[root] = 0
		return scan, nil
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrScanFailed, err), "dir", root)
	}
	if !info.IsDir() {
		scan.Mtimes[root] = info.ModTime().UnixNano()
		return scan, nil
	}

	err = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			// Entries removed while walking are not an error.
			if errors.Is(err, iofs.ErrNotExist) {
				return nil
			}
			return err
		}

		if d.IsDir() {
			if path != root && shouldSkipDirectories[d.Name()] {
				return filepath.SkipDir
			}
			return recordDir(scan, path, d)
		}

		format, ok := FontFormat(d.Name())
		if !ok {
			return nil
		}
		fi, err := d.Info()
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				return nil
			}
			return err
		}
		scan.Fonts = append(scan.Fonts, domain.Font{
			Path:    path,
			Dir:     root,
			Format:  format,
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrScanFailed, err), "dir", root)
	}

	return scan, nil
}

func recordDir(scan *DirScan, path string, d iofs.DirEntry) error {
	fi, err := d.Info()
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return filepath.SkipDir
		}
		return err
	}
	scan.Mtimes[path] = fi.ModTime().UnixNano()
	return nil
}

// statMtime returns the mtime of path in nanoseconds, or 0 when it cannot be read.
func statMtime(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.ModTime().UnixNano()
}
