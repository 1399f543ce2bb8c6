package catalog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Parser decodes file content into language -> templates.
type Parser interface {
	Parse(ctx context.Context, content []byte) (map[string]map[string]any, error)
	// SupportsFileExtension accepts extensions with or without the leading dot.
	SupportsFileExtension(ext string) bool
}

// ParserForFile picks a parser by file extension.
func ParserForFile(filename string) (Parser, error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	for _, p := range []Parser{NewYAMLParser(), NewTOMLParser(), NewJSONParser()} {
		if p.SupportsFileExtension(ext) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFileType, filename)
}

// MultiParser dispatches to the first parser supporting a file's extension.
// It is meant for directories mixing formats.
type MultiParser []Parser

// NewMultiParser returns a parser handling YAML, TOML and JSON.
func NewMultiParser() MultiParser {
	return MultiParser{NewYAMLParser(), NewTOMLParser(), NewJSONParser()}
}

// Parse tries every parser in order and returns the first success.
func (m MultiParser) Parse(ctx context.Context, content []byte) (map[string]map[string]any, error) {
	var errs []error
	for _, p := range m {
		result, err := p.Parse(ctx, content)
		if err == nil {
			return result, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

func (m MultiParser) SupportsFileExtension(ext string) bool {
	for _, p := range m {
		if p.SupportsFileExtension(ext) {
			return true
		}
	}
	return false
}

func (m MultiParser) forExtension(ext string) Parser {
	for _, p := range m {
		if p.SupportsFileExtension(ext) {
			return p
		}
	}
	return nil
}

// parserFor narrows p to the parser registered for filename when p is a
// MultiParser.
func parserFor(p Parser, filename string) Parser {
	mp, ok := p.(MultiParser)
	if !ok {
		return p
	}
	if sub := mp.forExtension(filepath.Ext(filename)); sub != nil {
		return sub
	}
	return p
}

// toLanguageMap validates the decoded top level: every value must be a map.
func toLanguageMap(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		m, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q has %T", ErrInvalidStructure, lang, val)
		}
		result[lang] = m
	}
	return result, nil
}

func hasExtension(ext string, allowed ...string) bool {
	ext = strings.TrimPrefix(ext, ".")
	for _, a := range allowed {
		if strings.EqualFold(ext, a) {
			return true
		}
	}
	return false
}
