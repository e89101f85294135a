package parser

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/convertsearch/internal/pipeline"
)

// DefaultMaxBytes is the upload size limit applied when none is configured.
const DefaultMaxBytes int64 = 25 << 20

// Parser converts one upload format into plain text.
type Parser interface {
	CanParse(filename string) bool
	Parse(content []byte) (string, error)
}

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// Extensions lists the accepted upload extensions.
var Extensions = []string{".csv", ".tsv", ".txt", ".doc", ".docx", ".xls", ".xlsx"}

// Supported reports whether filename has an accepted extension.
func Supported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ParseBytes converts content according to filename's extension.
func ParseBytes(filename string, content []byte) (string, error) {
	if !Supported(filename) {
		return "", &UnsupportedFormatError{Name: filename, Ext: filepath.Ext(filename)}
	}
	for _, p := range registry {
		if p.CanParse(filename) {
			text, err := p.Parse(content)
			if err != nil {
				return "", fmt.Errorf("parse %s: %w", filepath.Base(filename), err)
			}
			return text, nil
		}
	}
	return string(content), nil
}

// ParseFile reads path and returns its text content.
func ParseFile(path string) (string, error) {
	in, err := LoadFile(path, 0)
	if err != nil {
		return "", err
	}
	return in.Content, nil
}

// LoadFile validates and converts the upload at path. A limit of zero or less
// disables the size check.
func LoadFile(path string, limit int64) (pipeline.RawInput, error) {
	name := filepath.Base(path)
	if !Supported(name) {
		return pipeline.RawInput{}, &UnsupportedFormatError{Name: name, Ext: filepath.Ext(name)}
	}
	info, err := os.Stat(path)
	if err != nil {
		return pipeline.RawInput{}, fmt.Errorf("stat file: %w", err)
	}
	if info.IsDir() {
		return pipeline.RawInput{}, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() == 0 {
		return pipeline.RawInput{}, &EmptyFileError{Name: name}
	}
	if limit > 0 && info.Size() > limit {
		return pipeline.RawInput{}, &TooLargeError{Name: name, Size: info.Size(), Limit: limit}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.RawInput{}, fmt.Errorf("read file: %w", err)
	}
	text, err := ParseBytes(name, data)
	if err != nil {
		return pipeline.RawInput{}, err
	}
	return pipeline.RawInput{Name: name, SizeBytes: info.Size(), Content: text}, nil
}

func init() {
	Register(delimitedParser{})
	Register(legacyParser{})
	Register(docxParser{})
	Register(xlsxParser{})
}

// ErrUnsupported indicates a format is not supported.
var ErrUnsupported = errors.New("unsupported document format")

// UnsupportedFormatError reports an upload whose extension is not accepted.
type UnsupportedFormatError struct {
	Name string
	Ext  string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format %q (accepted: %s)", e.Name, e.Ext, strings.Join(Extensions, ", "))
}

func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupported }

// EmptyFileError reports a zero-byte upload.
type EmptyFileError struct{ Name string }

func (e *EmptyFileError) Error() string { return fmt.Sprintf("%s: file is empty", e.Name) }

// TooLargeError reports an upload over the size limit.
type TooLargeError struct {
	Name  string
	Size  int64
	Limit int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("%s: %.1f MB exceeds the %.0f MB limit", e.Name, float64(e.Size)/(1<<20), float64(e.Limit)/(1<<20))
}
