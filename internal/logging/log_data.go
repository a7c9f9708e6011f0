package logging

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type logDataKey struct{}

// LogData collects the fields and timings of one request so they can be
// emitted as a single log line when the request finishes.
type LogData struct {
	mu      sync.Mutex
	timings map[string]int64
	fields  logrus.Fields
	cause   error
	logger  *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		timings: make(map[string]int64),
		fields:  make(logrus.Fields),
		logger:  logger,
	}
}

// WithLogData returns a child context carrying logData.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, logData)
}

// GetLogData returns the request's LogData, or nil outside a logged request.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataKey{}).(*LogData)
	return logData
}

// AddTiming starts a stopwatch; calling the returned func stores the elapsed
// milliseconds under name, replacing any earlier value.
func (l *LogData) AddTiming(name string) func() {
	return l.stopwatch(name, false)
}

// AddToExistingTiming is AddTiming, but repeated calls accumulate.
func (l *LogData) AddToExistingTiming(name string) func() {
	return l.stopwatch(name, true)
}

func (l *LogData) stopwatch(name string, accumulate bool) func() {
	started := time.Now()
	return func() {
		elapsed := time.Since(started).Milliseconds()
		l.mu.Lock()
		defer l.mu.Unlock()
		if accumulate {
			elapsed += l.timings[name]
		}
		l.timings[name] = elapsed
	}
}

func (l *LogData) AddData(key string, value any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fields[key] = value
}

// SetCause records the error behind a failed request.
func (l *LogData) SetCause(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cause = err
}

func (l *LogData) Cause() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cause
}

// Timings returns a copy of the recorded timings.
func (l *LogData) Timings() map[string]int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return maps.Clone(l.timings)
}

// Log returns an entry carrying every field and timing recorded so far.
func (l *LogData) Log() *logrus.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	fields := make(logrus.Fields, len(l.fields)+len(l.timings))
	maps.Copy(fields, l.fields)
	for name, ms := range l.timings {
		fields[name] = ms
	}
	return l.logger.WithFields(fields)
}

// Timed starts a timing on the request's LogData when there is one. The returned
// stop func is always safe to call.
func Timed(ctx context.Context, name string) func() {
	if logData := GetLogData(ctx); logData != nil {
		return logData.AddTiming(name)
	}
	return func() {}
}

// AddData records a field on the request's LogData when there is one.
func AddData(ctx context.Context, key string, value any) {
	if logData := GetLogData(ctx); logData != nil {
		logData.AddData(key, value)
	}
}
