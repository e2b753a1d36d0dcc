package pathfinder

import (
	"bytes"

	"github.com/goccy/go-yaml"
)

// GoccyGoYamlFinder represents implementation of YAML path from https://github.com/goccy/go-yaml library
type GoccyGoYamlFinder struct{}

func NewGoccyGoYamlFinder() GoccyGoYamlFinder {
	return GoccyGoYamlFinder{}
}

// Find obtains data from yamlBytes according to given expr valid with goccy/go-yaml library
func (g GoccyGoYamlFinder) Find(expr string, yamlBytes []byte) (any, error) {
	yamlPath, err := yaml.PathString(expr)
	if err != nil {
		return nil, err
	}

	var result any
	err = yamlPath.Read(bytes.NewReader(yamlBytes), &result)
	if err != nil {
		return nil, err
	}

	return result, nil
}
