package logging

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

type logDataContextKey struct{}

// WithLogData returns a context carrying the given LogData.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataContextKey{}, logData)
}

// GetLogData returns the request's LogData, or nil when the request was not
// routed through the logging middleware.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataContextKey{}).(*LogData)
	return logData
}

// NewHumaMiddleware attaches a LogData to every huma request and emits one
// structured completion line per operation.
func NewHumaMiddleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(logger)
		operationID := ctx.Operation().OperationID

		endTimer := logData.AddTiming("duration")
		next(huma.WithContext(ctx, WithLogData(ctx.Context(), logData)))
		endTimer()

		logData.AddData("status", ctx.Status())
		logData.Log().Infof("Handler.%v.Complete", operationID)
	}
}
