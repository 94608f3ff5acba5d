// Package sloghooks is a slog-backed Hooks implementation with sampling and
// key redaction, suitable for production hot paths.
package sloghooks

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/linkcache"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	DecodeEvery     uint64
	BackgroundEvery uint64
	// Optional key redactor. Defaults to SHA-256 prefix.
	Redact func(string) string
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	decodeCtr     atomic.Uint64
	backgroundCtr atomic.Uint64
}

var _ linkcache.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func (h *Hooks) redact(k string) string {
	if h.opts.Redact != nil {
		return h.opts.Redact(k)
	}
	sum := sha256.Sum256([]byte(k))
	return hex.EncodeToString(sum[:8])
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) StoreFault(keys int, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("linkcache.store_fault",
		"keys", keys,
		"err", err)
}

func (h *Hooks) DecodeFailure(key string, err error) {
	if h.l == nil || !sample(h.opts.DecodeEvery, &h.decodeCtr) {
		return
	}
	h.l.Warn("linkcache.decode_failure",
		"key", h.redact(key),
		"err", err)
}

func (h *Hooks) ServiceFault(op string, status int) {
	if h.l == nil {
		return
	}
	h.l.Warn("linkcache.service_fault",
		"op", op,
		"status", status)
}

func (h *Hooks) TransportFault(op string, err error) {
	if h.l == nil {
		return
	}
	h.l.Error("linkcache.transport_fault",
		"op", op,
		"err", err)
}

func (h *Hooks) BackgroundAccepted(op string) {
	if h.l == nil || !sample(h.opts.BackgroundEvery, &h.backgroundCtr) {
		return
	}
	h.l.Debug("linkcache.background_accepted",
		"op", op)
}
