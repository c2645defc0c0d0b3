// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tomlx opens and saves TOML files.
package tomlx

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"cogentcore.org/mini/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// Open reads the given object from the given filename using TOML encoding.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := Read(v, bufio.NewReader(f)); err != nil {
		return fmt.Errorf("tomlx.Open %q: %w", filename, err)
	}
	return nil
}

// OpenFiles reads the given object from the given filenames in order,
// so that later files overwrite the settings of earlier ones.
// It attempts every file and returns all of the errors joined.
func OpenFiles(v any, filenames ...string) error {
	var errs []error
	for _, fn := range filenames {
		if err := Open(v, fn); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Read reads the given object from the given reader using TOML encoding.
// Keys that do not match a field of the object are an error.
func Read(v any, r io.Reader) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// ReadBytes reads the given object from the given bytes using TOML encoding.
func ReadBytes(v any, data []byte) error {
	return toml.Unmarshal(data, v)
}

// Save writes the given object to the given filename using TOML encoding.
func Save(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	err = Write(v, bw)
	if err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Write writes the given object to the given writer using TOML encoding.
func Write(v any, w io.Writer) error {
	return toml.NewEncoder(w).Encode(v)
}
