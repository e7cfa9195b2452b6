package utils

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator produces time-ordered identifiers used as trace IDs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 if the
// v7 generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// TraceID returns the trace ID carried by ctx or a freshly generated one.
func (g *UUIDGenerator) TraceID(ctx context.Context) string {
	if traceID, ok := GetTraceIDFromContext(ctx); ok {
		return traceID
	}

	return g.Generate()
}
