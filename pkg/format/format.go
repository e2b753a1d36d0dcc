// Package format holds utilities for recognizing data format.
package format

import (
	"encoding/json"

	"github.com/goccy/go-yaml"
)

const (
	// JSON describes JSON data format.
	JSON DataFormat = "JSON"

	// YAML describes Yaml data format.
	YAML DataFormat = "YAML"

	// PlainText describes plan text data format.
	PlainText DataFormat = "plain text"
)

// DataFormat describes format of data.
type DataFormat string

// IsJSON checks whether bytes are in JSON format.
func IsJSON(bytes []byte) bool {
	var js json.RawMessage
	err := json.Unmarshal(bytes, &js)

	return err == nil
}

// IsYAML checks whether bytes are in YAML format.
// Document roots may be mapping or sequence, bare scalar is treated as plain text.
func IsYAML(bytes []byte) bool {
	if IsJSON(bytes) {
		return false
	}

	var y interface{}
	if err := yaml.Unmarshal(bytes, &y); err != nil {
		return false
	}

	switch y.(type) {
	case map[string]interface{}, map[interface{}]interface{}, []interface{}:
		return true
	}

	return false
}
