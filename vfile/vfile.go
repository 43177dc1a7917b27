// Package vfile wraps text together with the path it came from.
package vfile

import (
	"fmt"
	"io"
	"os"
)

// File is a text document with an optional path.
type File struct {
	Path  string
	Value []byte
}

// New creates a File holding text without a path.
func New(text string) *File {
	return &File{Value: []byte(text)}
}

// Read loads the file at path.
func Read(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return &File{Path: path, Value: data}, nil
}

// FromReader reads all of r. path is recorded as given and may be empty.
func FromReader(path string, r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", displayName(path), err)
	}

	return &File{Path: path, Value: data}, nil
}

// String returns the text content.
func (f *File) String() string {
	return string(f.Value)
}

// Name returns the path, or "<stdin>" for files without one.
func (f *File) Name() string {
	return displayName(f.Path)
}

func displayName(path string) string {
	if path == "" {
		return "<stdin>"
	}

	return path
}
