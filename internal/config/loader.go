package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/dshills/actionmap/internal/logging"
)

// FileSystem is the file access the loader needs.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Format is a binding file encoding.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// Loader reads binding files.
type Loader struct {
	fs     FileSystem
	logger *logging.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFS sets the file system the loader reads from.
func WithFS(fsys FileSystem) LoaderOption {
	return func(l *Loader) {
		if fsys != nil {
			l.fs = fsys
		}
	}
}

// WithLogger sets the logger used for advisory warnings.
func WithLogger(log *logging.Logger) LoaderOption {
	return func(l *Loader) {
		if log != nil {
			l.logger = log.WithComponent("config")
		}
	}
}

// NewLoader creates a loader reading from the OS file system.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		fs:     OSFS{},
		logger: logging.Default().WithComponent("config"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads, decodes and builds the binding file at path.
func (l *Loader) Load(path string) (*Bindings, error) {
	f, err := l.Decode(path)
	if err != nil {
		return nil, err
	}
	b, err := f.Build(l.logger)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", path, err)
	}
	return b, nil
}

// Decode reads and decodes the binding file at path without building it.
func (l *Loader) Decode(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading binding file %s: %w", path, err)
	}

	return Parse(format, path, data)
}

// Load reads a binding file from the OS file system with the default logger.
func Load(path string) (*Bindings, error) {
	return NewLoader().Load(path)
}

// Parse decodes data in the given format. source names the data in errors.
func Parse(format Format, source string, data []byte) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, tomlParseError(source, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, yamlParseError(source, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	return &f, nil
}

func tomlParseError(source string, err error) *ParseError {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		pe.Line, pe.Column = derr.Position()
	}
	return pe
}

func yamlParseError(source string, err error) *ParseError {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}
	// yaml.v3 reports syntax errors as "yaml: line N: ...".
	var line int
	if _, scanErr := fmt.Sscanf(err.Error(), "yaml: line %d:", &line); scanErr == nil {
		pe.Line = line
	}
	return pe
}
