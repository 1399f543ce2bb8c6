package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
)

// Adapter loads templates keyed by language.
type Adapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves templates from memory. Load returns a deep copy, so
// Data may be changed after New and picked up by Reload.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a == nil {
		return nil, ErrNilAdapter
	}
	out := make(map[string]map[string]any, len(a.Data))
	for lang, templates := range a.Data {
		if templates == nil {
			// Kept nil so validation reports it.
			out[lang] = nil
			continue
		}
		out[lang] = make(map[string]any, len(templates))
		mergeMaps(out[lang], templates)
	}
	return out, nil
}

// FileAdapter loads a single template file.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a == nil {
		return nil, ErrNilAdapter
	}
	content, err := readWithContext(ctx, func() ([]byte, error) {
		return os.ReadFile(a.path)
	})
	if err != nil {
		return nil, err
	}
	return parseContent(ctx, parserFor(a.parser, a.path), a.path, content)
}

// FSAdapter loads every supported file in one directory of a file system.
// Subdirectories are not traversed. Works with embed.FS.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter returns nil if parser or fsys is nil. An empty dir means the
// root of fsys.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// NewDirectoryAdapter loads every supported file in a directory on disk.
// It returns nil if parser is nil or dir is empty.
func NewDirectoryAdapter(parser Parser, dir string) *FSAdapter {
	if dir == "" {
		return nil
	}
	return NewFSAdapter(parser, os.DirFS(dir), ".")
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a == nil {
		return nil, ErrNilAdapter
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	info, err := fs.Stat(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrFailedToAccessDirectory, a.dir)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}
	// Later files override earlier ones for the same key.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	all := make(map[string]map[string]any)
	var fileErrs []error
	loaded := 0

	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		templates, err := a.loadFile(ctx, name)
		if err != nil {
			// One broken file should not take the whole catalog down.
			fileErrs = append(fileErrs, err)
			continue
		}
		merge(all, templates)
		loaded++
	}

	if loaded == 0 {
		return nil, errors.Join(append([]error{fmt.Errorf("%w in %q", ErrNoTemplatesFound, a.dir)}, fileErrs...)...)
	}
	return all, nil
}

func (a *FSAdapter) loadFile(ctx context.Context, name string) (map[string]map[string]any, error) {
	content, err := readWithContext(ctx, func() ([]byte, error) {
		return fs.ReadFile(a.fsys, name)
	})
	if err != nil {
		return nil, err
	}
	return parseContent(ctx, parserFor(a.parser, name), name, content)
}

// readWithContext runs read in a goroutine so a cancelled context returns
// early even when the underlying read blocks.
func readWithContext(ctx context.Context, read func() ([]byte, error)) ([]byte, error) {
	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = read()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}
	return content, nil
}

func parseContent(ctx context.Context, p Parser, name string, content []byte) (map[string]map[string]any, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyFile, name)
	}
	templates, err := p.Parse(ctx, content)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("file %q", name), err)
	}
	return templates, nil
}

// merge deep-merges src into dst, language by language.
func merge(dst, src map[string]map[string]any) {
	for lang, templates := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(templates))
		}
		mergeMaps(dst[lang], templates)
	}
}

// mergeMaps copies nested maps instead of sharing them with src.
func mergeMaps(dst, src map[string]any) {
	for k, v := range src {
		if sv, ok := v.(map[string]any); ok {
			dv, ok := dst[k].(map[string]any)
			if !ok {
				dv = make(map[string]any, len(sv))
				dst[k] = dv
			}
			mergeMaps(dv, sv)
			continue
		}
		dst[k] = v
	}
}
