package contextutil

import (
	"context"

	"go-hris-leave/internal/domain"

	"go.uber.org/zap"
)

type contextKey string

const (
	requestIDKey    contextKey = "request_id"
	userIDKey       contextKey = "user_id"
	loggerKey       contextKey = "logger"
	capabilitiesKey contextKey = "capabilities"
)

// --- Request ID Helpers ---

func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}

func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// --- User ID Helpers ---

func WithUserID(ctx context.Context, uid string) context.Context {
	return context.WithValue(ctx, userIDKey, uid)
}

func GetUserID(ctx context.Context) string {
	if uid, ok := ctx.Value(userIDKey).(string); ok {
		return uid
	}
	return ""
}

// --- Logger Helpers ---

// WithLogger stores a request scoped logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// GetLogger falls back to defaultLogger, then to a no-op logger.
func GetLogger(ctx context.Context, defaultLogger *zap.Logger) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
			return l
		}
	}

	if defaultLogger != nil {
		return defaultLogger
	}

	return zap.NewNop()
}

// --- Capability Helpers ---

func WithCapabilities(ctx context.Context, caps domain.Capabilities) context.Context {
	return context.WithValue(ctx, capabilitiesKey, caps)
}

// GetCapabilities returns the caller's resolved capability set, or nil when
// the request never went through capability resolution.
func GetCapabilities(ctx context.Context) domain.Capabilities {
	if ctx == nil {
		return nil
	}
	if caps, ok := ctx.Value(capabilitiesKey).(domain.Capabilities); ok {
		return caps
	}
	return nil
}
