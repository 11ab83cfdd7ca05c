package utils

import "github.com/google/uuid"

// UUIDGenerator mints identifiers such as the persisted device identity.
// V7 is preferred so identifiers sort roughly by creation time.
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
