package utils

import "github.com/google/uuid"

// UUIDGenerator produces opaque identifiers for recipes and uploaded image
// file names. V7 identifiers are preferred for their time-ordered prefix;
// random V4 is the fallback when V7 generation fails.
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
