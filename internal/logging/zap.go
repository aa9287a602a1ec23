package logging

import "go.uber.org/zap"

// NewZap реализация Logger поверх zap.
func NewZap(log *zap.Logger) Logger {
	if log == nil {
		log = zap.NewNop()
	}

	return zapLogger{log: log}
}

type zapLogger struct {
	log *zap.Logger
}

func (l zapLogger) ListInsertRejected(index, reached int, err error) {
	l.log.Warn(
		"list insert rejected",
		zap.Int("index", index),
		zap.Int("reached", reached),
		zap.Error(err),
	)
}
