// SPDX-License-Identifier: MIT
// Package cli implements the lsapctl command-line interface.
package cli

import (
	"context"

	log "github.com/sirupsen/logrus"
)

type ctxKey int

const loggerKey ctxKey = 0

// newLogger builds a logrus entry writing to stderr at level, text-formatted
// with a full timestamp so piped stdout (the solve result) stays clean.
func newLogger(level log.Level) *log.Entry {
	l := log.New()
	l.SetLevel(level)
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return log.NewEntry(l)
}

func withLogger(ctx context.Context, l *log.Entry) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger attached by root's
// PersistentPreRunE, falling back to the package-level default logger if a
// command is invoked without going through root (e.g. in a unit test).
func loggerFromContext(ctx context.Context) *log.Entry {
	if l, ok := ctx.Value(loggerKey).(*log.Entry); ok {
		return l
	}
	return log.NewEntry(log.StandardLogger())
}
