package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SetupLogger: консоль (stderr, чтобы не мешать выводу поиска) + файл с ротацией.
func SetupLogger(cfg Config) zerolog.Logger {
	if dir := filepath.Dir(cfg.LogFile); dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}

	console := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	file := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	logger := zerolog.New(zerolog.MultiLevelWriter(console, file)).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}
