package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/arena/config"
	"github.com/lixenwraith/arena/constants"
)

// newLogger writes to a file under cfg.Dir since the terminal owns stdout
// Disabled logging returns a no-op logger
func newLogger(cfg config.LoggingConfig) (*zap.Logger, func(), error) {
	if !cfg.Enabled {
		return zap.NewNop(), func() {}, nil
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(cfg.Dir, constants.LogFileName)
	if err := rotateLog(path, constants.MaxLogSize); err != nil {
		return nil, nil, err
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{path}
	zapCfg.ErrorOutputPaths = []string{path}

	log, err := zapCfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	return log, func() { _ = log.Sync() }, nil
}

// rotateLog moves path aside to path.old once it exceeds limit bytes
func rotateLog(path string, limit int64) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log: %w", err)
	}
	if info.Size() <= limit {
		return nil
	}
	if err := os.Rename(path, path+".old"); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}
