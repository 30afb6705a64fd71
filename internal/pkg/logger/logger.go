package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger - интерфейс для логирования
type Logger interface {
	Debug(msg string, fields ...map[string]interface{})
	Info(msg string, fields ...map[string]interface{})
	Warn(msg string, fields ...map[string]interface{})
	Error(msg string, fields ...map[string]interface{})
	Fatal(msg string, fields ...map[string]interface{})
	With(key string, value interface{}) Logger
}

// zerologLogger - реализация Logger на основе zerolog
type zerologLogger struct {
	logger zerolog.Logger
}

// New создает logger с заданным уровнем, форматом и выводом.
// output: stdout, stderr или путь к файлу (дописывается в конец).
func New(level, format, output string) Logger {
	return NewWithWriter(openOutput(output), level, format)
}

// NewWithWriter создает logger, пишущий в w
func NewWithWriter(w io.Writer, level, format string) Logger {
	// Формат console - человекочитаемый прогресс симуляции
	if format == "console" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.TimeOnly,
		}
	}

	logger := zerolog.New(w).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Logger()

	return &zerologLogger{logger: logger}
}

func (l *zerologLogger) Debug(msg string, fields ...map[string]interface{}) {
	l.write(l.logger.Debug(), msg, fields)
}

func (l *zerologLogger) Info(msg string, fields ...map[string]interface{}) {
	l.write(l.logger.Info(), msg, fields)
}

func (l *zerologLogger) Warn(msg string, fields ...map[string]interface{}) {
	l.write(l.logger.Warn(), msg, fields)
}

func (l *zerologLogger) Error(msg string, fields ...map[string]interface{}) {
	l.write(l.logger.Error(), msg, fields)
}

func (l *zerologLogger) Fatal(msg string, fields ...map[string]interface{}) {
	l.write(l.logger.Fatal(), msg, fields)
}

func (l *zerologLogger) With(key string, value interface{}) Logger {
	newLogger := l.logger.With().Interface(key, value).Logger()
	return &zerologLogger{logger: newLogger}
}

// write добавляет поля к событию и отправляет его
func (l *zerologLogger) write(event *zerolog.Event, msg string, fields []map[string]interface{}) {
	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			event.Interface(key, value)
		}
	}
	event.Msg(msg)
}

// openOutput открывает место назначения логов
func openOutput(output string) io.Writer {
	switch output {
	case "", "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	}

	file, err := os.OpenFile(output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		// Файл недоступен - пишем в stdout, чтобы не потерять прогресс
		return os.Stdout
	}
	return file
}

// parseLevel преобразует строковое значение уровня в zerolog.Level
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetGlobalLogger устанавливает глобальный logger
func SetGlobalLogger(logger Logger) {
	if zl, ok := logger.(*zerologLogger); ok {
		log.Logger = zl.logger
	}
}

// NewDevelopment creates a logger suitable for development/testing
func NewDevelopment() Logger {
	return New("debug", "console", "stdout")
}

// NewNoop creates a noop logger that discards all log messages
func NewNoop() Logger {
	logger := zerolog.New(io.Discard)
	return &zerologLogger{logger: logger}
}
