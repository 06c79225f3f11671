package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings are render options read from an optional YAML file.
// Zero values mean "not set"; command-line flags take precedence over
// the file, which takes precedence over the scene's Global block.
type Settings struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	RecurseDepth int    `yaml:"recurse_depth"`
	Workers      int    `yaml:"workers"`
	Output       string `yaml:"output"`
}

// loadSettings reads and decodes a YAML settings file.
func loadSettings(path string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrap(err, "reading settings file")
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrapf(err, "parsing settings file %s", path)
	}

	return s, nil
}

// merge overlays non-zero values from other onto s.
func (s Settings) merge(other Settings) Settings {
	if other.Width != 0 {
		s.Width = other.Width
	}
	if other.Height != 0 {
		s.Height = other.Height
	}
	if other.RecurseDepth != 0 {
		s.RecurseDepth = other.RecurseDepth
	}
	if other.Workers != 0 {
		s.Workers = other.Workers
	}
	if other.Output != "" {
		s.Output = other.Output
	}
	return s
}

// uniqueOutputName returns defaultOutput if it does not exist yet,
// otherwise the first free name of the form raytraced-N.png.
func uniqueOutputName() (string, error) {
	name := defaultOutput
	for i := 1; ; i++ {
		if _, err := os.Stat(name); os.IsNotExist(err) {
			return name, nil
		}
		if i > 1000 {
			return "", errors.New("could not find a unique output name, use -out")
		}
		name = fmt.Sprintf("raytraced-%d.png", i)
	}
}
