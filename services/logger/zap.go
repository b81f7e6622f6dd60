package logsvc

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trezcool/marksheet/core"
)

// ZapLogger writes structured logs to stderr. Every entry carries the id of the current run.
type ZapLogger struct {
	sugar *zap.SugaredLogger
	RunID string
}

var _ core.Logger = (*ZapLogger)(nil)

func NewZapLogger(conf *core.Config, verbose bool) (*ZapLogger, error) {
	zconf := zap.NewProductionConfig()
	if conf.Debug {
		zconf = zap.NewDevelopmentConfig()
	}
	if conf.LogLevel != "" {
		lvl, err := zapcore.ParseLevel(conf.LogLevel)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing log level %q", conf.LogLevel)
		}
		zconf.Level = zap.NewAtomicLevelAt(lvl)
	}
	if verbose {
		zconf.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := zconf.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	runID := uuid.NewString()
	logger = logger.With(zap.String("app", conf.AppName), zap.String("env", conf.Env), zap.String("run_id", runID))
	return &ZapLogger{sugar: logger.Sugar(), RunID: runID}, nil
}

func (l *ZapLogger) Debug(msg string, args ...interface{}) { l.sugar.Debugw(msg, args...) }
func (l *ZapLogger) Info(msg string, args ...interface{})  { l.sugar.Infow(msg, args...) }
func (l *ZapLogger) Warn(msg string, args ...interface{})  { l.sugar.Warnw(msg, args...) }
func (l *ZapLogger) Error(msg string, args ...interface{}) { l.sugar.Errorw(msg, args...) }

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}
