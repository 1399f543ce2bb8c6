package main

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/textkit/pkg/catalog"
)

// catalogAdapter picks a directory or single-file adapter for path.
func catalogAdapter(path string) (catalog.Adapter, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrFailedToAccessDirectory, err)
	}
	if info.IsDir() {
		return catalog.NewDirectoryAdapter(catalog.NewMultiParser(), path), nil
	}

	parser, err := catalog.ParserForFile(path)
	if err != nil {
		return nil, err
	}
	return catalog.NewFileAdapter(parser, path), nil
}
