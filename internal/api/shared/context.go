package shared

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"time"
)

// traceIDKey is the private context key for the request trace ID.
type traceIDKey struct{}

// traceIDBytes is the trace ID entropy; hex-encoded it yields 32 characters.
const traceIDBytes = 16

// SetTraceID stamps the context with a fresh trace ID, used to correlate
// log lines and error responses belonging to one request.
func SetTraceID(ctx context.Context) context.Context {
	return context.WithValue(ctx, traceIDKey{}, newTraceID())
}

// GetTraceID returns the trace ID carried by the context, or "" when the
// request never passed through the trace middleware.
func GetTraceID(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}

// newTraceID returns 32 hex characters of randomness. If the random source
// fails the bytes are filled from the clock instead; a degraded ID still
// beats a static one.
func newTraceID() string {
	b := make([]byte, traceIDBytes)
	if _, err := rand.Read(b); err != nil {
		binary.BigEndian.PutUint64(b[:8], uint64(time.Now().UnixNano()))
		binary.BigEndian.PutUint64(b[8:], uint64(time.Now().Unix()))
	}
	return hex.EncodeToString(b)
}
