// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestHandler(t *testing.T) {
	defer func(l slog.Level) { UserLevel = l }(UserLevel)
	UserLevel = slog.LevelInfo

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, termenv.WithProfile(termenv.Ascii)))
	lg.Debug("hidden")
	lg.Info("loaded scene", "file", "a.mini", "instances", 3)
	lg.WithGroup("save").With("version", 12).Warn("slow")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO loaded scene file=a.mini instances=3\n")
	assert.Contains(t, out, "WARN slow save.version=12\n")
}

func TestPrintln(t *testing.T) {
	defer func(l slog.Level) { UserLevel = l }(UserLevel)
	var buf bytes.Buffer
	SetStdout(&buf, termenv.WithProfile(termenv.Ascii))
	defer SetStdout(os.Stdout)

	UserLevel = slog.LevelWarn
	PrintlnInfo("loading")
	PrintlnSuccess("saved")
	assert.Equal(t, "saved\n", buf.String())

	buf.Reset()
	UserLevel = slog.LevelError
	PrintlnSuccess("saved")
	PrintlnError("failed")
	assert.Equal(t, "failed\n", buf.String())
}
