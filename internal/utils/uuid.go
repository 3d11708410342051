package utils

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-offline-store/models"
)

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

// TempID returns a device-local entity id. Version 7 uuids sort by creation
// time, so temp ids created later also sort later.
func (g *UUIDGenerator) TempID() string {
	return models.TempIDPrefix + g.Generate()
}
