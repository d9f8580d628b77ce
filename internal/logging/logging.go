// Package logging builds the application logger: a rotating file sink at
// the configured level, optionally teed to stderr for interactive runs.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/litescript/ls-media-sort/internal/config"
)

const logFileName = "media-sort.log"

// New builds the logger from the config. The file sink honors
// options.log_level; the console sink, enabled for interactive commands,
// stays at info so debug runs don't flood the terminal. The returned
// closer flushes buffered entries and is safe to defer.
func New(cfg config.Config, console bool) (*zap.SugaredLogger, func(), error) {
	if err := os.MkdirAll(cfg.Folders.Logs, 0755); err != nil {
		return nil, nil, err
	}

	fileLevel, err := zapcore.ParseLevel(cfg.Options.LogLevel)
	if err != nil {
		fileLevel = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewConsoleEncoder(encCfg)

	fileSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(cfg.Folders.Logs, logFileName),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	})
	core := zapcore.NewCore(encoder, fileSink, fileLevel)

	if console {
		consoleCore := zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), zapcore.InfoLevel)
		core = zapcore.NewTee(core, consoleCore)
	}

	logger := zap.New(core)
	closer := func() {
		_ = logger.Sync()
	}
	return logger.Sugar(), closer, nil
}
