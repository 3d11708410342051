// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-offline-store/models"
)

func TestEntityValidator_Entity(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		entity  models.Entity
		fields  []string
		wantErr error
	}{
		{name: "valid", entity: models.NewEntity("a", map[string]any{"title": "x", "n": 1})},
		{name: "empty id is allowed", entity: models.NewEntity("", map[string]any{"title": "x"})},
		{name: "nil fields", entity: models.Entity{ID: "a"}},
		{name: "padded id", entity: models.NewEntity(" a", nil), wantErr: ErrInvalidEntityID},
		{name: "reserved id key", entity: models.NewEntity("a", map[string]any{"_id": "b"}), wantErr: ErrReservedField},
		{name: "reserved metadata key", entity: models.NewEntity("a", map[string]any{"_kmd": map[string]any{}}), wantErr: ErrReservedField},
		{name: "reserved acl key", entity: models.NewEntity("a", map[string]any{"_acl": nil}), wantErr: ErrReservedField},
		{name: "empty field name", entity: models.NewEntity("a", map[string]any{"": 1}), wantErr: ErrEmptyFieldName},
		{name: "channel value", entity: models.NewEntity("a", map[string]any{"c": make(chan int)}), wantErr: ErrUnencodableValue},
		{name: "max int64", entity: models.NewEntity("a", map[string]any{"n": uint64(math.MaxInt64)})},
		{name: "uint64 above int64", entity: models.NewEntity("a", map[string]any{"n": uint64(math.MaxInt64) + 1}), wantErr: ErrIntegerOutOfRange},
		{
			name:    "nested uint64 above int64",
			entity:  models.NewEntity("a", map[string]any{"obj": map[string]any{"ids": []any{uint64(math.MaxUint64)}}}),
			wantErr: ErrIntegerOutOfRange,
		},
		{
			name:   "scoped to id",
			entity: models.NewEntity("a", map[string]any{"_id": "b"}),
			fields: []string{FieldID},
		},
		{name: "unknown field", entity: models.NewEntity("a", nil), fields: []string{"colour"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.entity, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			// pointer form behaves the same
			entity := tt.entity
			assert.ErrorIs(t, v.Validate(ctx, &entity, tt.fields...), tt.wantErr)
		})
	}
}

func TestEntityValidator_Query(t *testing.T) {
	v := NewEntityValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		query   *models.Query
		wantErr error
	}{
		{name: "nil query", query: nil},
		{name: "empty query", query: models.NewQuery()},
		{
			name:  "full query",
			query: models.NewQuery().Where("a", models.OpIn, []int{1, 2}).OrderBy("a", true).Page(10, 5),
		},
		{name: "empty field", query: models.NewQuery().Where("", models.OpEqual, 1), wantErr: ErrEmptyFieldName},
		{name: "unknown operator", query: models.NewQuery().Where("a", "like", "x"), wantErr: ErrUnknownOperator},
		{name: "in needs a list", query: models.NewQuery().Where("a", models.OpIn, "x"), wantErr: ErrInvalidOperand},
		{name: "nin needs a list", query: models.NewQuery().Where("a", models.OpNotIn, nil), wantErr: ErrInvalidOperand},
		{name: "exists needs a bool", query: models.NewQuery().Where("a", models.OpExists, "yes"), wantErr: ErrInvalidOperand},
		{name: "unencodable value", query: models.NewQuery().Where("a", models.OpEqual, func() {}), wantErr: ErrUnencodableValue},
		{name: "negative skip", query: models.NewQuery().Page(-1, 0), wantErr: ErrInvalidPagination},
		{name: "negative limit", query: models.NewQuery().Page(0, -1), wantErr: ErrInvalidPagination},
		{name: "empty sort field", query: models.NewQuery().OrderBy("", false), wantErr: ErrEmptySortField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.query)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEntityValidator_UnsupportedType(t *testing.T) {
	v := NewEntityValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), models.PendingWriteAction{}), ErrUnsupportedType)
}
