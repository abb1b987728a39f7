package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for new users: time-ordered UUIDv7,
// falling back to a random v4 when the clock source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
