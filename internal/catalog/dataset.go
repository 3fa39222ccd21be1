package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultDataset []byte

type dataset struct {
	Products []Product `yaml:"products"`
}

// LoadDefault builds the Store from the dataset compiled into the binary.
func LoadDefault() (*Store, error) {
	return Load(bytes.NewReader(defaultDataset))
}

func Load(r io.Reader) (*Store, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ds dataset
	if err := dec.Decode(&ds); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	return NewStore(ds.Products)
}
