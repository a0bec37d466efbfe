package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parser turns a report file into plain text, one report line per line.
type Parser interface {
	CanParse(filename string) bool
	Parse(content []byte) (string, error)
}

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// ParseFile selects a parser based on filename and returns the report text.
// Unknown extensions are read as plain text.
func ParseFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return ParseBytes(path, data)
}

// ParseBytes parses content as if it had been read from filename.
func ParseBytes(filename string, data []byte) (string, error) {
	for _, p := range registry {
		if p.CanParse(filename) {
			return p.Parse(data)
		}
	}
	return string(data), nil
}

// ParseReader reads plain text from r, e.g. stdin.
func ParseReader(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(b), nil
}

// Supported reports whether filename has a registered parser.
func Supported(filename string) bool {
	for _, p := range registry {
		if p.CanParse(filename) {
			return true
		}
	}
	return false
}

func hasExt(filename string, exts ...string) bool {
	name := strings.ToLower(filename)
	for _, e := range exts {
		if strings.HasSuffix(name, e) {
			return true
		}
	}
	return false
}

func init() {
	Register(txtParser{})
	Register(markdownParser{})
	Register(docxParser{})
	Register(csvParser{})
	Register(xlsxParser{})
}

// ErrUnsupported indicates a document has no readable report content.
var ErrUnsupported = errors.New("unsupported document format")
