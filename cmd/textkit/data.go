package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var (
	errUsage           = errors.New("invalid usage")
	errUnsupportedData = errors.New("unsupported data file type")
	errReadData        = errors.New("failed to read data file")
	errDecodeData      = errors.New("failed to decode data file")
)

// loadData decodes a YAML, TOML or JSON file into a generic map.
// An empty path yields an empty map.
func loadData(path string) (map[string]any, error) {
	data := make(map[string]any)
	if path == "" {
		return data, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(errReadData, err)
	}

	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "yaml", "yml":
		err = yaml.Unmarshal(content, &data)
	case "toml":
		err = toml.Unmarshal(content, &data)
	case "json":
		err = json.Unmarshal(content, &data)
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedData, path)
	}
	if err != nil {
		return nil, errors.Join(errDecodeData, err)
	}
	return data, nil
}
