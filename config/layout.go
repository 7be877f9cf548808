package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/gatewarp/galaxy"
)

var ErrUnknownLinkRegion = errors.New("link references unknown region name")

// layoutFile is the on-disk galaxy format
// Connections are given either by name in links or by index in edges;
// links come first in registration order
type layoutFile struct {
	Regions []galaxy.RegionSpec `yaml:"regions"`
	Links   [][]string          `yaml:"links"`
	Edges   []galaxy.Edge       `yaml:"edges"`
}

// LoadLayout reads and validates a YAML galaxy file
func LoadLayout(path string) (*galaxy.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read galaxy file: %w", err)
	}
	layout, err := ParseLayout(data)
	if err != nil {
		return nil, fmt.Errorf("galaxy file %s: %w", path, err)
	}
	return layout, nil
}

// ParseLayout decodes and validates a YAML galaxy description
func ParseLayout(data []byte) (*galaxy.Layout, error) {
	var f layoutFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}

	layout := &galaxy.Layout{Regions: f.Regions}
	for i, link := range f.Links {
		if len(link) != 2 {
			return nil, fmt.Errorf("link %d: want two region names, got %d", i, len(link))
		}
		from, ok := layout.IndexOf(link[0])
		if !ok {
			return nil, fmt.Errorf("link %d: %w: %q", i, ErrUnknownLinkRegion, link[0])
		}
		to, ok := layout.IndexOf(link[1])
		if !ok {
			return nil, fmt.Errorf("link %d: %w: %q", i, ErrUnknownLinkRegion, link[1])
		}
		layout.Edges = append(layout.Edges, galaxy.Edge{From: from, To: to})
	}
	layout.Edges = append(layout.Edges, f.Edges...)

	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return layout, nil
}
