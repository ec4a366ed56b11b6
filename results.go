// Copyright (c) 2018 Iori Mizutani
//
// Use of this source code is governed by The MIT License
// that can be found in the LICENSE file.

// Package mfmhex reads the results file of the Magnetic Field Mapper (MFM)
// so that the calibration message in it can be pasted into a device
// as a hex string.
package mfmhex

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// FileAccessError is returned when the results file cannot be opened or read
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	if e.NotFound() {
		return fmt.Sprintf("File '%s' not found.", e.Path)
	}
	return fmt.Sprintf("File '%s' could not be read: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// NotFound returns true if the file does not exist
func (e *FileAccessError) NotFound() bool {
	return errors.Is(e.Err, fs.ErrNotExist)
}

// ReadResults reads the whole results file at path.
// The file is closed before ReadResults returns.
func ReadResults(path string) ([]byte, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer fp.Close()

	data, err := io.ReadAll(fp)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	return data, nil
}
