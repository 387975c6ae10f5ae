package obs

import (
	"context"
	"log"
	"strings"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID stores id on ctx for log correlation.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

// RequestID returns the request id stored on ctx, or "-".
func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(RequestIDKey).(string); ok && id != "" {
		return id
	}
	return "-"
}

// Time logs the duration of an operation when the returned func is called.
// Usage: defer obs.Time(ctx, "router.exhaustive", "tasks=3")(&err)
func Time(ctx context.Context, name string, fields ...string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)
	extra := ""
	if len(fields) > 0 {
		extra = " " + strings.Join(fields, " ")
	}

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			log.Printf("req_id=%s op=%s%s dur=%dms err=%v", reqID, name, extra, dur.Milliseconds(), *errp)
			return
		}
		log.Printf("req_id=%s op=%s%s dur=%dms", reqID, name, extra, dur.Milliseconds())
	}
}
