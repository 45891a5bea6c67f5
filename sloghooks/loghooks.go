// Package sloghooks implements textcompat.Hooks on top of log/slog.
package sloghooks

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/textcompat"
)

type Options struct {
	// Sampling to avoid floods on hot decode paths; 0/1 = log all.
	LossyEvery  uint64
	FailedEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	lossyCtr  atomic.Uint64
	failedCtr atomic.Uint64
}

var _ textcompat.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) LossyDecode(encoding string, policy textcompat.ErrorPolicy, count int) {
	if h.l == nil || !sample(h.opts.LossyEvery, &h.lossyCtr) {
		return
	}
	h.l.Debug("textcompat.lossy_decode",
		"encoding", encoding,
		"policy", policy.String(),
		"count", count)
}

func (h *Hooks) DecodeFailed(encoding string, offset int) {
	if h.l == nil || !sample(h.opts.FailedEvery, &h.failedCtr) {
		return
	}
	h.l.Info("textcompat.decode_failed",
		"encoding", encoding,
		"offset", offset)
}

func (h *Hooks) UnknownEncoding(label string) {
	if h.l == nil {
		return
	}
	h.l.Warn("textcompat.unknown_encoding",
		"label", label)
}
