package domain

import (
	"iter"
	"slices"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Font is a single font file found in a font directory.
type Font struct {
	// Path is the absolute path of the font file.
	Path string
	// Dir is the configured font directory the file was found under.
	Dir string
	// Format is the font format derived from the file extension.
	Format string
	// Size is the file size in bytes.
	Size int64
	// ModTime is the file modification time.
	ModTime time.Time
}

// FontSet is an ordered set of fonts keyed by path.
type FontSet struct {
	fonts []Font
	index map[string]int
}

// NewFontSet creates an empty FontSet.
func NewFontSet() *FontSet {
	return &FontSet{index: make(map[string]int)}
}

// Add appends a font unless one with the same path is already present.
// It reports whether the font was added, so the first declared directory wins.
func (s *FontSet) Add(f Font) bool {
	if _, ok := s.index[f.Path]; ok {
		return false
	}
	s.index[f.Path] = len(s.fonts)
	s.fonts = append(s.fonts, f)
	return true
}

// Lookup returns the font stored under path.
func (s *FontSet) Lookup(path string) (Font, bool) {
	i, ok := s.index[path]
	if !ok {
		return Font{}, false
	}
	return s.fonts[i], true
}

// Len returns the number of fonts.
func (s *FontSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.fonts)
}

// All yields the fonts in insertion order.
func (s *FontSet) All() iter.Seq[Font] {
	if s == nil {
		return slices.Values([]Font(nil))
	}
	return slices.Values(s.fonts)
}

// Digest returns a fingerprint of the set's contents.
func (s *FontSet) Digest() uint64 {
	d := xxhash.New()
	for f := range s.All() {
		_, _ = d.WriteString(f.Path)
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(strconv.FormatInt(f.Size, 10))
		_, _ = d.WriteString("\x00")
		_, _ = d.WriteString(strconv.FormatInt(f.ModTime.UnixNano(), 10))
		_, _ = d.WriteString("\n")
	}
	return d.Sum64()
}
