package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/automaton/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Decode parses a definition. ext selects the format: ".json" uses JSON,
// anything else is read as YAML.
func Decode(data []byte, ext string) (*domain.Definition, error) {
	var def domain.Definition

	if strings.ToLower(ext) == ".json" {
		if err := json.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("%w: failed to parse json: %v", domain.ErrMalformed, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &def); err != nil {
			return nil, fmt.Errorf("%w: failed to parse yaml: %v", domain.ErrMalformed, err)
		}
	}

	return &def, nil
}

// DecodeFile reads a definition from disk. A missing name defaults to the file name
// without its extension.
func DecodeFile(path string) (*domain.Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition: %w", err)
	}

	ext := filepath.Ext(path)
	def, err := Decode(data, ext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if def.Name == "" {
		def.Name = strings.TrimSuffix(filepath.Base(path), ext)
	}
	return def, nil
}

// DecodeMap converts a loosely typed map (e.g. decoded RPC arguments) into a definition.
func DecodeMap(m map[string]any) (*domain.Definition, error) {
	var def domain.Definition
	cfg := &mapstructure.DecoderConfig{
		Result:           &def,
		WeaklyTypedInput: true,
		TagName:          "mapstructure",
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(m); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformed, err)
	}
	return &def, nil
}

// Encode serializes a definition in the format selected by ext.
func Encode(def *domain.Definition, ext string) ([]byte, error) {
	if strings.ToLower(ext) == ".json" {
		return json.MarshalIndent(def, "", "  ")
	}
	return yaml.Marshal(def)
}
