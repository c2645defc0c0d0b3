// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// Stdout is the output used by the Print functions.
var Stdout = termenv.NewOutput(os.Stdout)

// SetStdout sets the output used by the Print functions,
// mainly for tests.
func SetStdout(w io.Writer, opts ...termenv.OutputOption) {
	Stdout = termenv.NewOutput(w, opts...)
}

// PrintlnInfo prints a blue status line if [UserLevel] is
// at or below [slog.LevelInfo].
func PrintlnInfo(a ...any) {
	printlnColor(slog.LevelInfo, termenv.ANSIBrightBlue, a...)
}

// PrintlnSuccess prints a green status line if [UserLevel] is
// at or below [slog.LevelWarn]; it reports completed steps.
func PrintlnSuccess(a ...any) {
	printlnColor(slog.LevelWarn, termenv.ANSIBrightGreen, a...)
}

// PrintlnError prints a red line if [UserLevel] is at or below [slog.LevelError].
func PrintlnError(a ...any) {
	printlnColor(slog.LevelError, termenv.ANSIRed, a...)
}

func printlnColor(level slog.Level, color termenv.Color, a ...any) {
	if level < UserLevel {
		return
	}
	fmt.Fprintln(Stdout, Stdout.String(fmt.Sprint(a...)).Foreground(color).String())
}
