// Package config holds the settings of a compilation, read from colt.yaml
// and overridden from the command line.
package config

import (
	"io/ioutil"
	"path/filepath"

	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v2"

	"github.com/pontaoski/colt/errors"
)

// FileName is the name of the project file written by colt init.
const FileName = "colt.yaml"

// SourceExt is the extension of Colt source files.
const SourceExt = ".colt"

type Config struct {
	Package string   `yaml:"Package"`
	Sources []string `yaml:"Sources,omitempty"`
	Output  string   `yaml:"Output,omitempty"`

	Colored       bool `yaml:"Colored"`
	PrintMessages bool `yaml:"PrintMessages"`
	PrintWarnings bool `yaml:"PrintWarnings"`
	PrintErrors   bool `yaml:"PrintErrors"`

	PrintIR  bool `yaml:"PrintIR"`
	PrintAST bool `yaml:"PrintAST"`
	Verbose  bool `yaml:"Verbose"`

	// Jobs bounds how many files are parsed at once.
	Jobs int `yaml:"Jobs"`
}

func Default(pkg string) Config {
	return Config{
		Package:       pkg,
		Colored:       true,
		PrintMessages: true,
		PrintWarnings: true,
		PrintErrors:   true,
		Jobs:          4,
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default value.
func Load(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, tracerr.Wrap(err)
	}

	cfg := Default(filepath.Base(filepath.Dir(path)))
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, tracerr.Wrap(err)
	}
	if cfg.Jobs < 1 {
		cfg.Jobs = 1
	}
	return cfg, nil
}

func (c Config) Save(path string) error {
	out, err := yaml.Marshal(c)
	if err != nil {
		return tracerr.Wrap(err)
	}
	return tracerr.Wrap(ioutil.WriteFile(path, out, 0644))
}

// Glob lists the Colt sources of dir.
func Glob(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*"+SourceExt))
	return matches, tracerr.Wrap(err)
}

func (c Config) PrintOptions() errors.PrintOptions {
	return errors.PrintOptions{
		Colored:  c.Colored,
		Messages: c.PrintMessages,
		Warnings: c.PrintWarnings,
		Errors:   c.PrintErrors,
	}
}
