// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides file system utilities.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/mini/base/errors"
	"github.com/mitchellh/go-homedir"
)

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths attempts to locate given file(s) on given list of paths,
// returning the full Abs path to each file found (nil if none).
// An absolute file name is returned as is if it exists.
// A leading ~ in a path or file name is the user's home directory.
func FindFilesOnPaths(paths []string, files ...string) []string {
	var res []string
	for _, fn := range files {
		fn = errors.Log1(homedir.Expand(fn))
		if filepath.IsAbs(fn) {
			if ok, _ := FileExists(fn); ok {
				res = append(res, fn)
			}
			continue
		}
		for _, path := range paths {
			path = errors.Log1(homedir.Expand(path))
			fp, err := filepath.Abs(filepath.Join(path, fn))
			if err != nil {
				continue
			}
			if ok, _ := FileExists(fp); ok {
				res = append(res, fp)
				break
			}
		}
	}
	return res
}
