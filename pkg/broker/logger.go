package broker

import (
	"fmt"
	"log/slog"
)

type infoLogger struct {
	l *slog.Logger
}

func (il *infoLogger) Printf(msg string, args ...any) {
	il.l.Info(fmt.Sprintf(msg, args...))
}

type errorLogger struct {
	l *slog.Logger
}

func (el *errorLogger) Printf(msg string, args ...any) {
	el.l.Error(fmt.Sprintf(msg, args...))
}
