package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-offline-store/models"
)

func TestDeltaTracker_SaveGetInvalidate(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	tracker := NewDeltaTracker(db, "todos")
	other := NewDeltaTracker(db, "notes")

	_, ok, err := tracker.Get(ctx, "fp1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, tracker.Save(ctx, models.DeltaMarker{QueryFingerprint: "fp1", ServerMarker: "2026-01-01T00:00:00.000Z"}))
	require.NoError(t, tracker.Save(ctx, models.DeltaMarker{QueryFingerprint: "fp2", ServerMarker: "m2"}))
	require.NoError(t, other.Save(ctx, models.DeltaMarker{QueryFingerprint: "fp1", ServerMarker: "notes-marker"}))

	marker, ok, err := tracker.Get(ctx, "fp1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "todos", marker.Collection)
	assert.Equal(t, "2026-01-01T00:00:00.000Z", marker.ServerMarker)
	assert.False(t, marker.UpdatedAt.IsZero())

	require.NoError(t, tracker.Save(ctx, models.DeltaMarker{QueryFingerprint: "fp1", ServerMarker: "2026-02-01T00:00:00.000Z"}))
	marker, _, err = tracker.Get(ctx, "fp1")
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01T00:00:00.000Z", marker.ServerMarker)

	require.NoError(t, tracker.Invalidate(ctx, "fp1"))
	_, ok, err = tracker.Get(ctx, "fp1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, tracker.InvalidateAll(ctx))
	_, ok, err = tracker.Get(ctx, "fp2")
	require.NoError(t, err)
	assert.False(t, ok)

	marker, ok, err = other.Get(ctx, "fp1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "notes-marker", marker.ServerMarker)
}
