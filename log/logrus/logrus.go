package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/linkcache"
)

var _ linkcache.Logger = Logger{}

type Logger struct{ E *logrus.Entry }

func (l Logger) Debug(msg string, f linkcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Debug(msg)
}
func (l Logger) Info(msg string, f linkcache.Fields) { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f linkcache.Fields) { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f linkcache.Fields) {
	l.E.WithFields(logrus.Fields(f)).Error(msg)
}
