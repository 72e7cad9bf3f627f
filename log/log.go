/*
 * @Author:    thepoy
 * @Email:     thepoy@163.com
 * @File Name: log.go
 * @Created:   2021-08-01 11:09:18
 * @Modified:  2023-03-31 20:27:44
 */

package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Level defines the log level
type Level uint8

// log level
const (
	DEBUG Level = iota
	INFO
	WARNING
	ERROR
	FATAL
)

var (
	// Default time format with nanosecond precision
	TimeFormat = "2006-01-02 15:04:05.999999999"

	// Console default time format with millisecond accuracy
	ConsoleTimeFormat = "15:04:05.000"
)

// Logger records a `zerolog.Logger` pointer and uses this pointer
// to implement all logging methods
type Logger struct {
	L    *zerolog.Logger
	out  io.Writer
	skip int
}

// Arg records the parameters required in the log as key-value pairs,
// the key is of type `string`, and the value can be of any type.
type Arg struct {
	Key   string
	Value any
}

func NewArg(key string, value any) Arg {
	return Arg{key, value}
}

func guessType(l *zerolog.Event, args ...Arg) *zerolog.Event {
	for _, arg := range args {
		switch v := arg.Value.(type) {
		case string:
			l = l.Str(arg.Key, v)
		case int:
			l = l.Int(arg.Key, v)
		case int64:
			l = l.Int64(arg.Key, v)
		case uint:
			l = l.Uint(arg.Key, v)
		case uint64:
			l = l.Uint64(arg.Key, v)
		case bool:
			l = l.Bool(arg.Key, v)
		case []int:
			l = l.Ints(arg.Key, v)
		case []string:
			l = l.Strs(arg.Key, v)
		case error:
			l = l.AnErr(arg.Key, v)
		case time.Duration:
			l = l.Dur(arg.Key, v)
		case fmt.Stringer:
			l = l.Stringer(arg.Key, v)
		default:
			l = l.Interface(arg.Key, v)
		}
	}
	return l
}

// Debug logs a `DEBUG` message with some `Arg`s.
func (log *Logger) Debug(msg string, args ...Arg) {
	l := log.L.Debug().Caller(log.skip)
	l = guessType(l, args...)
	l.Msg(msg)
}

// Info logs a `INFO` message with some `Arg`s.
func (log *Logger) Info(msg string, args ...Arg) {
	l := log.L.Info()
	l = guessType(l, args...)
	l.Msg(msg)
}

// Warning logs a `WARNING` message with some `Arg`s.
func (log *Logger) Warning(msg string, args ...Arg) {
	l := log.L.Warn().Caller(log.skip)
	l = guessType(l, args...)
	l.Msg(msg)
}

func validate(err any) error {
	switch t := err.(type) {
	case string:
		return errors.New(t)
	case error:
		return t
	default:
		panic("type not allowed")
	}
}

// Error logs a `ERROR` message with some `Arg`s.
func (log *Logger) Error(err any, args ...Arg) {
	l := log.L.Error().Caller(log.skip).Err(validate(err))
	l = guessType(l, args...)
	l.Send()
}

func newZerologLogger(level Level, out io.Writer) zerolog.Logger {
	lvl := zerolog.Level(level)
	// `DEBUG` in the environment wins over the requested level
	if IsDebug() {
		lvl = zerolog.DebugLevel
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// SetLevel will create a `zerolog.Logger` instance with a new `LEVEL`
// using the existing `out`(io.Writer)
func (log *Logger) SetLevel(level Level) {
	logger := newZerologLogger(level, log.out)

	log.L = &logger
}

func (log Logger) Out() io.Writer {
	return log.out
}

// IsDebug determines whether the current environment is `DEBUG` through
// the `DEBUG` variable in the current environment variables.
func IsDebug() bool {
	v := os.Getenv("DEBUG")
	return v != "" && v != "0" && strings.ToLower(v) != "false"
}

// NewLogger returns a new `Logger` pointer.
func NewLogger(level Level, out io.Writer, skip ...int) *Logger {
	zerolog.TimeFieldFormat = TimeFormat
	logger := newZerologLogger(level, out)

	l := new(Logger)
	l.L = &logger

	l.out = out

	if len(skip) > 0 {
		l.skip = skip[0]
	} else {
		l.skip = 1
	}

	return l
}

// ToConsole returns an `io.Writer` that outputs the log to stderr, so
// that it never mixes with the statuses printed on stdout.
func ToConsole() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: ConsoleTimeFormat}
}

func fileWriter(filepath string, flag int) (io.Writer, error) {
	if flag < 0 {
		flag = os.O_RDWR | os.O_CREATE | os.O_TRUNC
	}
	return os.OpenFile(filepath, flag, 0666)
}

// ToFileAnd returns an `io.Writer` that saves the log to a local file
// and also writes it to out, or an `error`.
//
// The `flag` parameter is passed to the `os.OpenFile` function.
// If flag < 0, it will be assigned the value `os.O_RDWR|os.O_CREATE|os.O_TRUNC`.
func ToFileAnd(out io.Writer, filepath string, flag int) (io.Writer, error) {
	fw, err := fileWriter(filepath, flag)
	if err != nil {
		return nil, err
	}
	return zerolog.MultiLevelWriter(fw, out), nil
}
