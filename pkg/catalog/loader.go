package catalog

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/XiaoConstantine/knapsack-go/pkg/errors"
)

// catalogFile is the YAML document shape:
//
//	items:
//	  - name: Soy
//	    cost: 50
//	    value: 80
type catalogFile struct {
	Items []Item `yaml:"items"`
}

// Parse decodes a YAML catalog document and validates it.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, errors.InvalidInput, "failed to parse catalog YAML")
	}
	return New(file.Items)
}

// LoadFile reads and parses a YAML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.ResourceNotFound, "failed to read catalog file"),
			errors.Fields{"path": path})
	}
	return Parse(data)
}
