package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	xdgadapter "go.trai.ch/fontconf/internal/adapters/xdg"
	"go.trai.ch/fontconf/internal/core/domain"
	"go.trai.ch/fontconf/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.Parser = (*Parser)(nil)

// maxRescanSeconds is the largest rescan interval a time.Duration can hold.
const maxRescanSeconds = math.MaxInt64 / int64(time.Second)

// Parser implements ports.Parser by reading the first fonts file found in
// the default lookup locations.
type Parser struct {
	fs         FileSystem
	candidates func() []string
	home       func() string
}

// Option configures a Parser.
type Option func(*Parser)

// WithCandidates replaces the default lookup locations.
func WithCandidates(paths ...string) Option {
	return func(p *Parser) {
		p.candidates = func() []string { return paths }
	}
}

// WithHomeDir sets the directory "~" expands to.
func WithHomeDir(home string) Option {
	return func(p *Parser) {
		p.home = func() string { return home }
	}
}

// NewParser creates a new Parser reading through fsys.
func NewParser(fsys FileSystem, opts ...Option) *Parser {
	p := &Parser{
		fs:         fsys,
		candidates: DefaultCandidates,
		home:       xdgadapter.Home,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DefaultCandidates returns the fonts file lookup order: $FONTCONF_FILE when
// set, otherwise the per-user config home followed by /etc.
func DefaultCandidates() []string {
	if pinned := os.Getenv(domain.ConfigFileEnv); pinned != "" {
		return []string{pinned}
	}

	roots := []string{
		filepath.Join(xdgadapter.ConfigHome(), domain.AppDirName),
		filepath.Join(domain.SystemConfigDir, domain.AppDirName),
	}
	var out []string
	for _, root := range roots {
		for _, name := range domain.ConfigFileNames() {
			out = append(out, filepath.Join(root, name))
		}
	}
	return out
}

// ParseDefault parses the first existing fonts file and everything it includes.
// On failure the partially populated Config is returned alongside the error.
// Candidates skipped before the chosen file are tracked, so creating one of
// them later makes the Config stale.
func (p *Parser) ParseDefault() (*domain.Config, error) {
	cfg := domain.NewConfig()
	path, ok := p.locate(cfg)
	if !ok {
		return cfg, errors.Join(domain.ErrParseFailed, domain.ErrConfigNotFound)
	}

	seen := make(map[string]bool)
	if err := p.parseFile(cfg, path, seen); err != nil {
		return cfg, errors.Join(domain.ErrParseFailed, err)
	}
	return cfg, nil
}

func (p *Parser) locate(cfg *domain.Config) (string, bool) {
	for _, candidate := range p.candidates() {
		candidate = filepath.Clean(candidate)
		if info, err := p.fs.Stat(candidate); err != nil || info.IsDir() {
			cfg.Track(candidate, p.mtime(candidate))
			continue
		}
		return candidate, true
	}
	return "", false
}

func (p *Parser) parseFile(cfg *domain.Config, path string, seen map[string]bool) error {
	path = filepath.Clean(path)
	if seen[path] {
		return nil
	}
	seen[path] = true

	file, err := p.readFontsFile(cfg, path)
	if err != nil {
		return err
	}
	cfg.AddConfigFile(path)

	base := filepath.Dir(path)
	for _, dir := range file.Dirs {
		if err := cfg.AddFontDir(p.resolve(base, dir)); err != nil {
			return zerr.With(err, "file", path)
		}
	}
	for _, dir := range file.CacheDirs {
		if err := cfg.AddCacheDir(p.resolve(base, dir)); err != nil {
			return zerr.With(err, "file", path)
		}
	}
	if file.Rescan != nil {
		if *file.Rescan < 0 || int64(*file.Rescan) > maxRescanSeconds {
			return zerr.With(zerr.With(domain.ErrInvalidRescanInterval, "rescan", *file.Rescan), "file", path)
		}
		cfg.RescanInterval = time.Duration(*file.Rescan) * time.Second
	}

	for _, pattern := range file.Include {
		if err := p.include(cfg, p.resolve(base, pattern), seen); err != nil {
			return zerr.With(err, "file", path)
		}
	}
	return nil
}

func (p *Parser) include(cfg *domain.Config, pattern string, seen map[string]bool) error {
	// New files dropped into the include directory must make the Config stale.
	dir := filepath.Dir(pattern)
	cfg.Track(dir, p.mtime(dir))

	matches, err := p.fs.Glob(pattern)
	if err != nil {
		return zerr.With(errors.Join(domain.ErrIncludeFailed, err), "pattern", pattern)
	}
	slices.Sort(matches)

	for _, match := range matches {
		if info, err := p.fs.Stat(match); err != nil || info.IsDir() {
			continue
		}
		if err := p.parseFile(cfg, match, seen); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) readFontsFile(cfg *domain.Config, path string) (*FontsFile, error) {
	info, err := p.fs.Stat(path)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "file", path)
	}
	cfg.Track(path, info.ModTime().UnixNano())

	data, err := p.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigReadFailed, err), "file", path)
	}

	var file FontsFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".toml":
		err = toml.Unmarshal(data, &file)
	default:
		return nil, zerr.With(domain.ErrUnsupportedConfigFormat, "file", path)
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParseFailed, err), "file", path)
	}
	return &file, nil
}

// resolve expands "~" and anchors relative paths at base.
func (p *Parser) resolve(base, path string) string {
	switch {
	case path == "~":
		return p.home()
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(p.home(), path[2:])
	case path == "" || filepath.IsAbs(path):
		return path
	default:
		return filepath.Join(base, path)
	}
}

func (p *Parser) mtime(path string) int64 {
	info, err := p.fs.Stat(path)
	if err != nil {
		return 0
	}
	return info.ModTime().UnixNano()
}
