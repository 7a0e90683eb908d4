package config

// FontsFile represents the structure of a fonts.yaml or fonts.toml file.
type FontsFile struct {
	Version   string   `yaml:"version"   toml:"version"`
	Dirs      []string `yaml:"dirs"      toml:"dirs"`
	CacheDirs []string `yaml:"cachedirs" toml:"cachedirs"`
	// Rescan is the rescan interval in seconds. Nil keeps the current value.
	Rescan  *int     `yaml:"rescan"  toml:"rescan"`
	Include []string `yaml:"include" toml:"include"`
}
