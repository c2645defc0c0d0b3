// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/mini/base/errors"
)

// File format versions.
//
//	11: a single material type, equivalent to the current Disney material
//	12: tagged material variants, each with its own field layout
const (
	FormatVersion       = 12
	LegacyFormatVersion = 11
)

// MagicBase is added to the format version to form the magic word
// written at the start and end of every scene file.
const MagicBase uint64 = 4321000000

// Magic words of the current and the previous format version.
const (
	Magic       = MagicBase + FormatVersion
	LegacyMagic = MagicBase + LegacyFormatVersion
)

var (
	// ErrOpen is returned when a scene file cannot be opened.
	ErrOpen = errors.New("could not open scene file")

	// ErrWrite is returned when writing a scene file fails.
	ErrWrite = errors.New("error writing scene file")

	// ErrIncompatible is returned when a file does not start with
	// a supported magic word.
	ErrIncompatible = errors.New("invalid or incompatible mini scene file (wrong file magic)")

	// ErrCorrupt is returned when a file is truncated, does not end with
	// a valid magic word, or contains invalid references.
	ErrCorrupt = errors.New("incomplete or corrupt mini scene file")

	// ErrUnsupportedMaterial is returned for a material variant that
	// cannot be stored in, or was read from, a file.
	ErrUnsupportedMaterial = errors.New("unsupported material type")

	// ErrInvalidReference is returned for a reference between scene nodes
	// that does not resolve: a missing mesh material or object, or an
	// out-of-range ID in a file.
	ErrInvalidReference = errors.New("invalid reference")
)

// versionOfMagic returns the format version for the given magic word,
// or 0 if it is not supported.
func versionOfMagic(magic uint64) int {
	switch magic {
	case Magic:
		return FormatVersion
	case LegacyMagic:
		return LegacyFormatVersion
	}
	return 0
}

func magicOfVersion(version int) uint64 {
	return MagicBase + uint64(version)
}

func checkMagic(magic uint64, where string) (int, error) {
	if v := versionOfMagic(magic); v != 0 {
		return v, nil
	}
	return 0, fmt.Errorf("%s magic %d, expected %d (version %d) or %d (version %d)", where, magic, Magic, FormatVersion, LegacyMagic, LegacyFormatVersion)
}
