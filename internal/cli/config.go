package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// configFileName is looked up in the packed directory.
const configFileName = ".contextpack.toml"

// Config holds per-project defaults loaded from .contextpack.toml.
// Flags given on the command line take precedence over config values.
type Config struct {
	Packs     int      `toml:"packs"`
	Format    string   `toml:"format"`
	Output    string   `toml:"output"`
	Ignore    []string `toml:"ignore"`
	Gitignore *bool    `toml:"gitignore"`
}

// loadConfig reads .contextpack.toml from dir. A missing file is not an
// error; the second return value reports whether a config was found.
func loadConfig(dir string) (Config, bool, error) {
	var cfg Config
	path := filepath.Join(dir, configFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, false, nil
		}
		return cfg, false, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, false, err
	}
	return cfg, true, nil
}

// respectGitignore resolves the tri-state gitignore setting.
func (c Config) respectGitignore() bool {
	if c.Gitignore == nil {
		return true
	}
	return *c.Gitignore
}
