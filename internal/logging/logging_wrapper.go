package logging

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// statusWriter remembers the status code a plain handler wrote.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// LoggingWrapper gives a plain net/http handler the same per-request LogData
// and Start/Complete/Error lines as huma operations get from Middleware.
func LoggingWrapper(
	loggingName string,
	log *logrus.Logger,
	handler func(http.ResponseWriter, *http.Request, *LogData) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		logData := NewLogData(log)
		log.Debugf("Handler.%v.Start", loggingName)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		endTimer := logData.AddTiming("duration")
		err := handler(sw, req.WithContext(WithLogData(req.Context(), logData)), logData)
		endTimer()

		logData.AddData("status", sw.status)
		if err != nil {
			logData.Log().WithError(err).Errorf("Handler.%v.Error", loggingName)
			return
		}
		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// Middleware is the huma counterpart of LoggingWrapper. Each operation gets its own
// LogData, reachable from handlers through GetLogData.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		loggingName := "Unknown"
		if op := ctx.Operation(); op != nil && op.OperationID != "" {
			loggingName = op.OperationID
		}

		logData := NewLogData(log)
		log.Debugf("Handler.%v.Start", loggingName)

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logDataKey{}, logData))
		endTimer()

		status := ctx.Status()
		logData.AddData("status", status)
		if status >= http.StatusInternalServerError {
			entry := logData.Log()
			if cause := logData.Cause(); cause != nil {
				entry = entry.WithError(cause)
			}
			entry.Errorf("Handler.%v.Error", loggingName)
			return
		}
		logData.Log().Infof("Handler.%v.Complete", loggingName)
	}
}

// causer is implemented by error bodies that keep their wrapped errors out of
// the response.
type causer interface {
	GetStatus() int
	Cause() error
}

// RecordCause is a huma transformer that copies the cause of a 5xx error body
// onto the request's LogData, so Middleware can log it.
func RecordCause(ctx huma.Context, _ string, v any) (any, error) {
	body, ok := v.(causer)
	if !ok || body.GetStatus() < http.StatusInternalServerError {
		return v, nil
	}
	if logData := GetLogData(ctx.Context()); logData != nil {
		if cause := body.Cause(); cause != nil {
			logData.SetCause(cause)
		}
	}
	return v, nil
}
