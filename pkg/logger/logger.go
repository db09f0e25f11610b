package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/GlebRadaev/spintracker/internal/config"
)

const (
	timeLayout = "15:04:05 02-01-2006"
	name       = "spintracker"
)

var logLvlMap = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
}

// InitLogger replaces zap's global logger; the rest of the code logs
// through zap.L().
func InitLogger(conf *config.Config) error {
	lvl, ok := logLvlMap[conf.LogLvl]
	if !ok {
		return fmt.Errorf("unsupported log lvl: %s", conf.LogLvl)
	}

	encodeConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	c := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Development:       lvl == zapcore.DebugLevel,
		DisableStacktrace: lvl != zapcore.DebugLevel,
		Encoding:          "console",
		EncoderConfig:     encodeConfig,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger.Named(name))

	return nil
}
