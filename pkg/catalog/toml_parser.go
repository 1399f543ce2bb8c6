package catalog

import (
	"context"
	"errors"

	"github.com/pelletier/go-toml/v2"
)

// TOMLParser decodes TOML template files. Each language is a top-level table.
type TOMLParser struct{}

func NewTOMLParser() *TOMLParser {
	return &TOMLParser{}
}

func (p *TOMLParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := toml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseTOML, err)
	}
	return toLanguageMap(data)
}

func (p *TOMLParser) SupportsFileExtension(ext string) bool {
	return hasExtension(ext, "toml")
}
