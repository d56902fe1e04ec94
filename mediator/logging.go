package mediator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LoggingBehavior logs every dispatch with a correlation id, the request type
// and the outcome. It never alters the request or the result.
func LoggingBehavior(log *logrus.Logger) Behavior {
	return func(ctx context.Context, request Request, next HandlerFunc) (Response, error) {
		entry := log.WithFields(logrus.Fields{
			"dispatch_id":  uuid.NewString(),
			"request_type": fmt.Sprintf("%T", request),
		})
		entry.Debug("Dispatching request")

		start := time.Now()
		response, err := next(ctx, request)

		entry = entry.WithField("duration_ms", time.Since(start).Milliseconds())
		if err != nil {
			entry.WithError(err).Warn("Dispatch failed")
			return response, err
		}

		entry.Debug("Dispatch completed")
		return response, nil
	}
}
