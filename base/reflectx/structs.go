// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reflectx provides reflection helpers for setting
// struct fields from default value tags.
package reflectx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"cogentcore.org/mini/base/errors"
)

// SetFromDefaultTags sets the values of the fields of the given struct
// pointer from their `default:"..."` field tags. Struct fields without
// a tag are set recursively. A struct field with a tag is set from
// space separated values, one per field in order, so that
// `default:"100 0 0"` sets a three component vector.
// All fields are attempted, and the errors are joined.
func SetFromDefaultTags(obj any) error {
	val := NonPointerValue(reflect.ValueOf(obj))
	if val.Kind() != reflect.Struct || !val.CanSet() {
		return fmt.Errorf("SetFromDefaultTags: need a pointer to a struct, not %T", obj)
	}
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok {
			if fv.Kind() == reflect.Struct {
				if err := SetFromDefaultTags(fv.Addr().Interface()); err != nil {
					errs = append(errs, err)
				}
			}
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("SetFromDefaultTags: field %s of %s: %w", f.Name, typ.Name(), err))
		}
	}
	return errors.Join(errs...)
}

// SetFromString sets the given settable value from its string
// representation. Numbers, bools and strings are parsed directly.
// Structs of such fields are set from space separated values.
func SetFromString(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		x, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(x)
	case reflect.Struct:
		parts := strings.Fields(s)
		if len(parts) != v.NumField() {
			return fmt.Errorf("%d values for %d fields of %s", len(parts), v.NumField(), v.Type())
		}
		for i, p := range parts {
			if err := SetFromString(v.Field(i), p); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("cannot set kind %v from a string", v.Kind())
	}
	return nil
}
