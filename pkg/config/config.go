// Package config reads the pincheck configuration file.
package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Version      int      `json:"version,omitempty" jsonschema:"enum=1"`
	Files        []*File  `json:"files,omitempty" jsonschema:"description=Target files. If files are passed via positional command line arguments, this is ignored"`
	AllowActions []string `json:"allow_actions,omitempty" yaml:"allow_actions" jsonschema:"description=Action references that are exempted from pin enforcement. Each entry must match the full uses value exactly"`
}

type File struct {
	Pattern string `json:"pattern" jsonschema:"description=A regular expression of target file paths"`
	pattern *regexp.Regexp
}

func (f *File) Init() error {
	if f.Pattern == "" {
		return errors.New("pattern is required")
	}
	p, err := regexp.Compile(f.Pattern)
	if err != nil {
		return fmt.Errorf("parse pattern as a regular expression: %w", err)
	}
	f.pattern = p
	return nil
}

// Match returns true if the file path matches the pattern.
// Init must be called first.
func (f *File) Match(p string) bool {
	return f.pattern != nil && f.pattern.MatchString(p)
}

// AllowSet returns the allow-listed references merged with extra ones
// supplied on the command line. Membership is exact string equality against
// the full reference text.
func (c *Config) AllowSet(extra []string) map[string]struct{} {
	set := make(map[string]struct{}, len(c.AllowActions)+len(extra))
	for _, a := range c.AllowActions {
		set[a] = struct{}{}
	}
	for _, a := range extra {
		set[a] = struct{}{}
	}
	return set
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".pincheck.yaml", ".github/pincheck.yaml", ".pincheck.yml", ".github/pincheck.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	p, err := getConfigPath(f.fs)
	if err != nil {
		return "", err
	}
	return p, nil
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	for _, file := range cfg.Files {
		if err := file.Init(); err != nil {
			return fmt.Errorf("initialize file: %w", err)
		}
	}
	return nil
}
