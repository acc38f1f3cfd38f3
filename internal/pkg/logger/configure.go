package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/soil-insights/soilboard/internal/app/appconfig"
)

func Configure(conf *appconfig.Config) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	var level zerolog.Level
	if conf.DevMode {
		level = zerolog.TraceLevel
	} else {
		level = zerolog.DebugLevel
	}

	log.Logger = zerolog.New(writer(conf)).
		With().
		Timestamp().
		Logger().
		Level(level)

	// loggers taken from a context that carries none fall back to the global one
	zerolog.DefaultContextLogger = &log.Logger
}

func writer(conf *appconfig.Config) io.Writer {
	var stdout io.Writer = os.Stdout
	if !conf.LogJsonStdout {
		stdout = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339Nano,
		}
	}

	if conf.LogFile == "" {
		return stdout
	}

	return zerolog.MultiLevelWriter(
		&lumberjack.Logger{
			Filename:   conf.LogFile,
			MaxSize:    conf.LogFileMaxSizeMB,
			MaxBackups: conf.LogFileMaxBackups,
			Compress:   true,
		},
		stdout,
	)
}
