// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/z5labs/tour/internal/try"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format decodes a whole document into nested maps.
type Format struct {
	Name       string
	Extensions []string
	Unmarshal  func(b []byte, v any) error
}

// Supported document formats.
var (
	YAML = Format{Name: "yaml", Extensions: []string{".yaml", ".yml"}, Unmarshal: yaml.Unmarshal}
	JSON = Format{Name: "json", Extensions: []string{".json"}, Unmarshal: json.Unmarshal}
	TOML = Format{Name: "toml", Extensions: []string{".toml"}, Unmarshal: toml.Unmarshal}
)

// FormatOf picks the [Format] of a file by its extension, ignoring case.
func FormatOf(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, f := range []Format{YAML, JSON, TOML} {
		if slices.Contains(f.Extensions, ext) {
			return f, true
		}
	}
	return Format{}, false
}

// Document is a [Source] holding a single document of some [Format].
// The whole document is read on Apply and r is closed afterwards,
// if it is an [io.Closer].
type Document struct {
	format Format
	r      io.Reader
}

// Decode returns a [Document] reading f encoded config from r.
func Decode(f Format, r io.Reader) Document {
	return Document{format: f, r: r}
}

// FromYaml returns a [Document] reading YAML from r.
func FromYaml(r io.Reader) Document {
	return Decode(YAML, r)
}

// FromJson returns a [Document] reading JSON from r.
func FromJson(r io.Reader) Document {
	return Decode(JSON, r)
}

// FromToml returns a [Document] reading TOML from r.
func FromToml(r io.Reader) Document {
	return Decode(TOML, r)
}

// InvalidDocumentError occurs when a document isn't valid in its format.
type InvalidDocumentError struct {
	Format string
	Cause  error
}

// Error implements the error interface.
func (e InvalidDocumentError) Error() string {
	return fmt.Sprintf("invalid %s document: %s", e.Format, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e InvalidDocumentError) Unwrap() error {
	return e.Cause
}

// Apply implements the [Source] interface.
func (d Document) Apply(store Store) (err error) {
	defer try.Close(&err, d.r)

	b, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}

	var m map[string]any
	err = d.format.Unmarshal(b, &m)
	if err != nil {
		return InvalidDocumentError{Format: d.format.Name, Cause: err}
	}
	return Map(m).Apply(store)
}
