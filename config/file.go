// Copyright (c) 2024 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package config

import (
	"io"
	"io/fs"
)

// FileReader reads a file from an [fs.FS], opening it on the first
// call to Read. A failed open is remembered and returned by every
// later Read.
type FileReader struct {
	fsys fs.FS
	path string

	opened bool
	file   fs.File
	err    error
}

// NewFileReader returns a [FileReader] for path within fsys.
func NewFileReader(fsys fs.FS, path string) *FileReader {
	return &FileReader{fsys: fsys, path: path}
}

// Path returns the path of the file within its [fs.FS].
func (r *FileReader) Path() string {
	return r.path
}

// Read implements the [io.Reader] interface.
func (r *FileReader) Read(b []byte) (int, error) {
	if !r.opened {
		r.opened = true
		r.file, r.err = r.fsys.Open(r.path)
	}
	switch {
	case r.err != nil:
		return 0, r.err
	case r.file == nil:
		return 0, io.EOF
	}
	return r.file.Read(b)
}

// Close implements the [io.Closer] interface. Closing a reader
// whose file was never opened does nothing.
func (r *FileReader) Close() error {
	f := r.file
	r.file = nil
	if f == nil {
		return nil
	}
	return f.Close()
}
