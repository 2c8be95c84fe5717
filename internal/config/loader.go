package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Loader produces one settings layer.
type Loader interface {
	// Load returns the layer as a nested map. A source that doesn't exist
	// yields nil, nil.
	Load() (map[string]any, error)
}

// FileSystem is the part of the OS file system the loaders need.
// Tests substitute an in-memory implementation.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	Stat(path string) (fs.FileInfo, error)
}

// OSFS reads from the real file system.
type OSFS struct{}

func (OSFS) ReadFile(path string) ([]byte, error)  { return os.ReadFile(path) }
func (OSFS) Stat(path string) (fs.FileInfo, error) { return os.Stat(path) }

// DefaultFS returns the OS file system.
func DefaultFS() FileSystem {
	return OSFS{}
}

// Format is a settings file syntax.
type Format struct {
	Name   string
	decode func(data []byte, v any) error

	// position extracts a 1-based line and column from a decode error.
	position func(err error) (line, col int)
}

// Supported settings file formats.
var (
	FormatTOML = Format{
		Name:   "toml",
		decode: toml.Unmarshal,
		position: func(err error) (int, int) {
			var derr *toml.DecodeError
			if errors.As(err, &derr) {
				return derr.Position()
			}
			return 0, 0
		},
	}
	FormatYAML = Format{
		Name:     "yaml",
		decode:   yaml.Unmarshal,
		position: func(error) (int, int) { return 0, 0 },
	}
)

// FileLoader reads one settings file in a fixed format.
type FileLoader struct {
	fs     FileSystem
	path   string
	format Format
}

// NewFileLoader creates a loader for path in the given format.
// A nil fsys means the OS file system.
func NewFileLoader(fsys FileSystem, path string, format Format) *FileLoader {
	if fsys == nil {
		fsys = DefaultFS()
	}
	return &FileLoader{fs: fsys, path: path, format: format}
}

// NewTOMLLoader creates a TOML loader for path.
func NewTOMLLoader(fsys FileSystem, path string) *FileLoader {
	return NewFileLoader(fsys, path, FormatTOML)
}

// NewYAMLLoader creates a YAML loader for path.
func NewYAMLLoader(fsys FileSystem, path string) *FileLoader {
	return NewFileLoader(fsys, path, FormatYAML)
}

// LoaderFor picks the loader matching path's extension: .toml, .yaml or .yml.
func LoaderFor(fsys FileSystem, path string) (*FileLoader, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return NewTOMLLoader(fsys, path), nil
	case ".yaml", ".yml":
		return NewYAMLLoader(fsys, path), nil
	default:
		return nil, &ParseError{Path: path, Message: fmt.Sprintf("no loader for extension %q", ext), Err: ErrUnsupportedFormat}
	}
}

// Format returns the loader's file format.
func (l *FileLoader) Format() Format {
	return l.format
}

// Load reads the configured file. A missing file is not an error.
func (l *FileLoader) Load() (map[string]any, error) {
	data, err := l.fs.ReadFile(l.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", l.path, err)
	}
	return l.decode(l.path, data)
}

// LoadFromReader decodes settings from r instead of the file.
func (l *FileLoader) LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s settings: %w", l.format.Name, err)
	}
	return l.decode("<reader>", data)
}

func (l *FileLoader) decode(source string, data []byte) (map[string]any, error) {
	var tree map[string]any
	if err := l.format.decode(data, &tree); err != nil {
		line, col := l.format.position(err)
		return nil, &ParseError{Path: source, Line: line, Column: col, Message: err.Error(), Err: err}
	}
	return tree, nil
}

// DeepMerge merges src into dst and returns dst. Nested maps merge key by
// key; any other src value replaces the dst value.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any, len(src))
	}
	for key, sv := range src {
		sm, srcIsMap := sv.(map[string]any)
		dm, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = DeepMerge(dm, sm)
			continue
		}
		dst[key] = sv
	}
	return dst
}
