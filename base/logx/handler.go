// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes one line per record with
// a colored level label, filtering records below [UserLevel].
type Handler struct {
	out    *termenv.Output
	mu     *sync.Mutex
	attrs  string
	groups string
}

// NewHandler returns a new [Handler] writing to the given writer.
// Colors are only used if the writer is a terminal that supports them,
// unless the options select a color profile.
func NewHandler(w io.Writer, opts ...termenv.OutputOption) *Handler {
	return &Handler{out: termenv.NewOutput(w, opts...), mu: &sync.Mutex{}}
}

// SetDefaultLogger sets the default [slog] logger to one
// using a [Handler] that writes to [os.Stderr].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.levelLabel(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)
	sb.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.groups, a)
		return true
	})
	sb.WriteByte('\n')
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, sb.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := *h
	var sb strings.Builder
	for _, a := range attrs {
		writeAttr(&sb, h.groups, a)
	}
	nh.attrs += sb.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups += name + "."
	return &nh
}

func (h *Handler) levelLabel(level slog.Level) string {
	label := level.String()
	var color termenv.Color
	switch {
	case level >= slog.LevelError:
		color = termenv.ANSIRed
	case level >= slog.LevelWarn:
		color = termenv.ANSIYellow
	case level >= slog.LevelInfo:
		color = termenv.ANSICyan
	default:
		color = termenv.ANSIBrightBlack
	}
	return h.out.String(label).Foreground(color).Bold().String()
}

func writeAttr(sb *strings.Builder, groups string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		prefix := groups
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			writeAttr(sb, prefix, ga)
		}
		return
	}
	fmt.Fprintf(sb, " %s%s=%v", groups, a.Key, a.Value.Any())
}
