package seq

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type traceConfig struct {
	stage string
	level zapcore.Level
}

// TraceOption configures Trace.
type TraceOption func(*traceConfig)

// WithStage names the traced stage in every log entry. Defaults to "seq".
func WithStage(name string) TraceOption {
	return func(c *traceConfig) {
		c.stage = name
	}
}

// WithLevel sets the level pulls are logged at. Defaults to debug.
func WithLevel(level zapcore.Level) TraceOption {
	return func(c *traceConfig) {
		c.level = level
	}
}

// Trace logs every value pulled through this point of the pipeline and the
// moment the upstream reports exhaustion. A nil logger disables tracing.
//
// Example:
//
//	evens := seq.Count(0).Filter(isEven).Trace(logger, seq.WithStage("evens")).Take(3)
func (s Seq[T]) Trace(logger *zap.Logger, opts ...TraceOption) Seq[T] {
	cfg := traceConfig{stage: "seq", level: zapcore.DebugLevel}
	for _, opt := range opts {
		opt(&cfg)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.With(zap.String("stage", cfg.stage))

	return derive(s, func(up *Cursor[T]) func() (T, bool) {
		index := 0
		return func() (T, bool) {
			v, ok := up.Next()
			if !ok {
				if ce := log.Check(cfg.level, "sequence exhausted"); ce != nil {
					ce.Write(zap.Int("pulled", index))
				}
				return v, false
			}
			if ce := log.Check(cfg.level, "pulled value"); ce != nil {
				ce.Write(zap.Int("index", index), zap.Any("value", v))
			}
			index++
			return v, true
		}
	})
}
