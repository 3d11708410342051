// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestSyncIDCtxKey(t *testing.T) {
	if SyncIDCtxKey.String() != "syncID" {
		t.Errorf("expected 'syncID', got '%s'", SyncIDCtxKey.String())
	}
}

func TestGetSyncIDFromContext_Success(t *testing.T) {
	ctx := WithSyncID(context.Background(), "run-1")

	syncID, ok := GetSyncIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if syncID != "run-1" {
		t.Errorf("expected 'run-1', got '%s'", syncID)
	}
}

func TestGetSyncIDFromContext_Missing(t *testing.T) {
	syncID, ok := GetSyncIDFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if syncID != "" {
		t.Errorf("expected empty id, got '%s'", syncID)
	}
}

func TestGetSyncIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), SyncIDCtxKey, 42)

	if _, ok := GetSyncIDFromContext(ctx); ok {
		t.Fatal("expected ok=false for a non-string value")
	}
}
