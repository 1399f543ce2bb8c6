package catalog

import "errors"

var (
	ErrNilAdapter    = errors.New("catalog adapter is nil")
	ErrEmptyLanguage = errors.New("empty language code found")
	ErrNilTemplates  = errors.New("nil template map for language")

	// Loading
	ErrLoadingCancelled        = errors.New("loading templates cancelled")
	ErrFailedToReadFile        = errors.New("failed to read template file")
	ErrFailedToParseFile       = errors.New("failed to parse template file")
	ErrEmptyFile               = errors.New("template file is empty")
	ErrFailedToAccessDirectory = errors.New("failed to access directory")
	ErrFailedToReadDirectory   = errors.New("failed to read directory")
	ErrNoTemplatesFound        = errors.New("no valid template files found")
	ErrUnsupportedFileType     = errors.New("unsupported template file type")

	// Parsing
	ErrParsingCancelled  = errors.New("parsing cancelled")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrFailedToParseTOML = errors.New("failed to parse TOML content")
	ErrFailedToParseJSON = errors.New("failed to parse JSON content")
	ErrInvalidStructure  = errors.New("expected a map of templates per language")
)
