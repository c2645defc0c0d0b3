// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command mini inspects and transforms mini scene files.
package main

import (
	"os"

	"cogentcore.org/mini/base/logx"
	"cogentcore.org/mini/cmd/mini/cmd"
	"cogentcore.org/mini/cmd/mini/config"
)

func main() {
	logx.SetDefaultLogger()
	if err := cmd.Root(config.New()).Execute(); err != nil {
		logx.PrintlnError("error: ", err)
		os.Exit(1)
	}
}
