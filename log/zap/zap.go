package zap

import (
	"github.com/unkn0wn-root/linkcache"
	"go.uber.org/zap"
)

var _ linkcache.Logger = Logger{}

type Logger struct{ L *zap.Logger }

func (z Logger) Debug(msg string, f linkcache.Fields) { z.L.Debug(msg, zf(f)...) }
func (z Logger) Info(msg string, f linkcache.Fields)  { z.L.Info(msg, zf(f)...) }
func (z Logger) Warn(msg string, f linkcache.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z Logger) Error(msg string, f linkcache.Fields) { z.L.Error(msg, zf(f)...) }

func zf(f linkcache.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		out = append(out, zap.Any(k, v))
	}
	return out
}
