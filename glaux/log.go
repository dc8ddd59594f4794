package glaux

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds a human readable console logger at the configured level.
func NewLogger(cfg LogConfig) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, errors.Wrap(err, "parsing log level")
	}
	zcfg := zap.NewDevelopmentConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	zcfg.DisableStacktrace = true
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	logger, err := zcfg.Build()
	if err != nil {
		return nil, errors.Wrap(err, "building logger")
	}
	return logger, nil
}

// Setup loads settings from r and builds the logger they configure.
func Setup(r io.Reader) (Settings, *zap.Logger, error) {
	settings, err := LoadSettings(r)
	if err != nil {
		return Settings{}, nil, err
	}
	logger, err := NewLogger(settings.Log)
	if err != nil {
		return Settings{}, nil, err
	}
	return settings, logger, nil
}
