//go:build go1.21

// Package slog adapts a *slog.Logger to textcompat.Logger.
package slog

import (
	"context"
	stdslog "log/slog"
	"sort"

	"github.com/unkn0wn-root/textcompat"
)

var _ textcompat.Logger = Logger{}

// Logger writes every line under a "textcompat" group unless Flat is set.
type Logger struct {
	L    *stdslog.Logger
	Flat bool
}

func (s Logger) Debug(msg string, f textcompat.Fields) { s.log(stdslog.LevelDebug, msg, f) }
func (s Logger) Info(msg string, f textcompat.Fields)  { s.log(stdslog.LevelInfo, msg, f) }
func (s Logger) Warn(msg string, f textcompat.Fields)  { s.log(stdslog.LevelWarn, msg, f) }
func (s Logger) Error(msg string, f textcompat.Fields) { s.log(stdslog.LevelError, msg, f) }

func (s Logger) log(level stdslog.Level, msg string, f textcompat.Fields) {
	ctx := context.Background()
	if !s.L.Enabled(ctx, level) {
		return
	}
	as := attrs(f)
	if !s.Flat && len(as) > 0 {
		s.L.LogAttrs(ctx, level, msg, stdslog.Attr{Key: "textcompat", Value: stdslog.GroupValue(as...)})
		return
	}
	s.L.LogAttrs(ctx, level, msg, as...)
}

func attrs(f textcompat.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	out := make([]stdslog.Attr, 0, len(f))
	for k, v := range f {
		out = append(out, stdslog.Any(k, v))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
