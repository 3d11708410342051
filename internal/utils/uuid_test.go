package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-offline-store/models"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	id, err := uuid.Parse(g.Generate())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, g.Generate(), g.Generate())
}

func TestUUIDGenerator_TempID(t *testing.T) {
	id := NewUUIDGenerator().TempID()

	assert.True(t, models.IsTempID(id))
	_, err := uuid.Parse(strings.TrimPrefix(id, models.TempIDPrefix))
	assert.NoError(t, err)
}
