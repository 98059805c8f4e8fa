// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/z5labs/tour/internal/try"
)

// RenderTextTemplateOption configures a [TextTemplateRenderer].
type RenderTextTemplateOption func(template.FuncMap)

// TemplateFunc makes f callable as name from within the config template.
func TemplateFunc(name string, f any) RenderTextTemplateOption {
	return func(fm template.FuncMap) {
		fm[name] = f
	}
}

// TextTemplateRenderer is an [io.ReadCloser] which executes the
// text/template read from another [io.Reader] and yields the result.
// Nothing is read from the underlying reader until the first Read.
//
// Templates always have access to an "env" function which looks up
// environment variables, e.g. {{ env "KM" }}.
type TextTemplateRenderer struct {
	src   io.Reader
	funcs template.FuncMap

	out *bytes.Reader
	err error
}

// RenderTextTemplate returns a [TextTemplateRenderer] over r.
func RenderTextTemplate(r io.Reader, opts ...RenderTextTemplateOption) *TextTemplateRenderer {
	funcs := template.FuncMap{"env": os.Getenv}
	for _, opt := range opts {
		opt(funcs)
	}
	return &TextTemplateRenderer{src: r, funcs: funcs}
}

// TextTemplateParseError occurs when the config template fails to be parsed.
type TextTemplateParseError struct {
	Cause error
}

// Error implements the error interface.
func (e TextTemplateParseError) Error() string {
	return fmt.Sprintf("config template is malformed: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e TextTemplateParseError) Unwrap() error {
	return e.Cause
}

// TextTemplateExecError occurs when a template func returns an error
// or the template references something which doesn't exist.
type TextTemplateExecError struct {
	Cause error
}

// Error implements the error interface.
func (e TextTemplateExecError) Error() string {
	return fmt.Sprintf("config template failed to execute: %s", e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e TextTemplateExecError) Unwrap() error {
	return e.Cause
}

// Read implements the [io.Reader] interface.
func (ttr *TextTemplateRenderer) Read(b []byte) (int, error) {
	if ttr.out == nil && ttr.err == nil {
		ttr.out, ttr.err = ttr.execute()
	}
	if ttr.err != nil {
		return 0, ttr.err
	}
	return ttr.out.Read(b)
}

// Close closes the underlying [io.Reader], if it's an [io.Closer].
func (ttr *TextTemplateRenderer) Close() (err error) {
	defer try.Close(&err, ttr.src)
	return nil
}

func (ttr *TextTemplateRenderer) execute() (*bytes.Reader, error) {
	text, err := io.ReadAll(ttr.src)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("config").
		Option("missingkey=error").
		Funcs(ttr.funcs).
		Parse(string(text))
	if err != nil {
		return nil, TextTemplateParseError{Cause: err}
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, nil)
	if err != nil {
		return nil, TextTemplateExecError{Cause: err}
	}
	return bytes.NewReader(buf.Bytes()), nil
}
