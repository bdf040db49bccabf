package logging

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// ZerologLogger adapts a zerolog.Logger to the project Logger interface.
type ZerologLogger struct {
	l zerolog.Logger
}

func NewZerologLogger(l zerolog.Logger) *ZerologLogger {
	return &ZerologLogger{l: l}
}

func (z *ZerologLogger) Debug(ctx context.Context, msg string, args ...any) {
	z.emit(z.l.Debug(), msg, args)
}

func (z *ZerologLogger) Info(ctx context.Context, msg string, args ...any) {
	z.emit(z.l.Info(), msg, args)
}

func (z *ZerologLogger) Warn(ctx context.Context, msg string, args ...any) {
	z.emit(z.l.Warn(), msg, args)
}

func (z *ZerologLogger) Error(ctx context.Context, msg string, args ...any) {
	z.emit(z.l.Error(), msg, args)
}

func (z *ZerologLogger) With(args ...any) Logger {
	c := z.l.With()
	for k, v := range pairs(args) {
		c = c.Interface(k, v)
	}
	return &ZerologLogger{l: c.Logger()}
}

func (z *ZerologLogger) emit(e *zerolog.Event, msg string, args []any) {
	for k, v := range pairs(args) {
		e = e.Interface(k, v)
	}
	e.Msg(msg)
}

// pairs converts a flat key/value list into a map. A trailing key without a
// value is kept with a nil value rather than dropped.
func pairs(args []any) map[string]any {
	m := make(map[string]any, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		if i+1 < len(args) {
			m[key] = args[i+1]
		} else {
			m[key] = nil
		}
	}
	return m
}
