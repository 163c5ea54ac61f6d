package model

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Items []catalogFileItem `yaml:"items"`
}

type catalogFileItem struct {
	Name  string            `yaml:"name"`
	Sizes []catalogFileSize `yaml:"sizes"`
}

type catalogFileSize struct {
	Label string    `yaml:"label"`
	Price yamlPrice `yaml:"price"`
}

// yamlPrice keeps the literal text of a price so 2.50 never goes through
// a float.
type yamlPrice struct {
	decimal.Decimal
	set bool
}

func (p *yamlPrice) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: price must be a scalar", value.Line)
	}
	d, err := decimal.NewFromString(value.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d: invalid price %q", value.Line, value.Value)
	}
	p.Decimal = d
	p.set = true
	return nil
}

// LoadCatalog reads a YAML catalog from filePath.
func LoadCatalog(filePath string) (*Catalog, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog file %s", filePath)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog of the form
//
//	items:
//	  - name: Latte
//	    sizes:
//	      - label: Small
//	        price: 3.00
//
// Items and sizes keep the order they are declared in.
func ParseCatalog(data []byte) (*Catalog, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file catalogFile
	if err := decoder.Decode(&file); err != nil {
		if err == io.EOF {
			return nil, errors.Wrap(ErrInvalidCatalog, "catalog file is empty")
		}
		return nil, errors.Wrap(err, "failed to parse catalog YAML")
	}

	entries := make([]CatalogEntry, 0, len(file.Items))
	for _, item := range file.Items {
		sizes := make([]Size, 0, len(item.Sizes))
		for _, size := range item.Sizes {
			if !size.Price.set {
				return nil, errors.Wrapf(ErrInvalidCatalog, "item %q size %q has no price", item.Name, size.Label)
			}
			sizes = append(sizes, Size{Label: size.Label, Price: size.Price.Decimal})
		}
		entries = append(entries, CatalogEntry{Item: item.Name, Sizes: sizes})
	}
	return NewCatalog(entries)
}
