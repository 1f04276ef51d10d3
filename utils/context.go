package utils

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, found := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !found {
		return slog.Default()
	}
	return logger
}

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		requestLogger := logger
		if requestId, ok := RequestIdFromContext(ctx); ok {
			requestLogger = logger.With(slog.String("request_id", requestId))
		}
		c.Request = c.Request.WithContext(StoreLoggerInContext(ctx, requestLogger))
	}
}

func RequestIdFromContext(ctx context.Context) (string, bool) {
	requestId, ok := ctx.Value(ContextKeyRequestId).(string)
	return requestId, ok && requestId != ""
}

func StoreRequestIdInContext(ctx context.Context, requestId string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestId, requestId)
}
