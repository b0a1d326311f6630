package utils

import "github.com/google/uuid"

// RequestIDGenerator produces identifiers attached to outbound requests so a
// single provider call can be followed through the logs.
type RequestIDGenerator struct {
}

func NewRequestIDGenerator() *RequestIDGenerator {
	return &RequestIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random UUIDv4.
func (g *RequestIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
