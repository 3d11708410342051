package validators

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-offline-store/models"
)

// Field name constants used to restrict validation to a subset of checks.
const (
	// FieldID checks the entity id. An empty id is allowed; one is assigned
	// on save.
	FieldID = "id"
	// FieldFields checks the user-defined attributes of an entity.
	FieldFields = "fields"
	// FieldFilter checks the conditions of a query.
	FieldFilter = "filter"
	// FieldSort checks the sort fields of a query.
	FieldSort = "sort"
	// FieldPaging checks skip and limit of a query.
	FieldPaging = "paging"
)

var reservedFields = []string{models.IDField, models.MetadataField, models.ACLField}

var knownOperators = []models.Operator{
	models.OpEqual,
	models.OpNotEqual,
	models.OpGreater,
	models.OpGreaterOrEqual,
	models.OpLess,
	models.OpLessOrEqual,
	models.OpIn,
	models.OpNotIn,
	models.OpExists,
}

type EntityValidator struct {
}

func NewEntityValidator() Validator {
	return &EntityValidator{}
}

func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Entity:
		return v.validateEntity(ctx, value, fields...)
	case *models.Entity:
		return v.validateEntity(ctx, *value, fields...)

	case *models.Query:
		if value == nil {
			return nil
		}
		return v.validateQuery(ctx, *value, fields...)
	case models.Query:
		return v.validateQuery(ctx, value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntityValidator) validateEntity(_ context.Context, entity models.Entity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldFields}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if entity.ID != "" && strings.TrimSpace(entity.ID) != entity.ID {
				return fmt.Errorf("%w: %q", ErrInvalidEntityID, entity.ID)
			}
		case FieldFields:
			for name, value := range entity.Fields {
				if name == "" {
					return ErrEmptyFieldName
				}
				if isReserved(name) {
					return fmt.Errorf("%w: %q", ErrReservedField, name)
				}
				if _, err := json.Marshal(value); err != nil {
					return fmt.Errorf("%w: %q: %w", ErrUnencodableValue, name, err)
				}
				if exceedsInt64(value) {
					return fmt.Errorf("%w: %q", ErrIntegerOutOfRange, name)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntityValidator) validateQuery(_ context.Context, query models.Query, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFilter, FieldSort, FieldPaging}
	}

	for _, f := range fields {
		switch f {
		case FieldFilter:
			for i, cond := range query.Filter {
				if err := validateCondition(cond); err != nil {
					return fmt.Errorf("condition %d: %w", i, err)
				}
			}
		case FieldSort:
			for _, s := range query.Sort {
				if s.Field == "" {
					return ErrEmptySortField
				}
			}
		case FieldPaging:
			if query.Skip < 0 || query.Limit < 0 {
				return ErrInvalidPagination
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateCondition(cond models.Condition) error {
	if cond.Field == "" {
		return ErrEmptyFieldName
	}
	if !isKnownOperator(cond.Op) {
		return fmt.Errorf("%w: %q", ErrUnknownOperator, cond.Op)
	}

	switch cond.Op {
	case models.OpExists:
		if _, ok := cond.Value.(bool); !ok {
			return fmt.Errorf("%w: %s on %q needs a bool", ErrInvalidOperand, cond.Op, cond.Field)
		}
	case models.OpIn, models.OpNotIn:
		kind := reflect.ValueOf(cond.Value).Kind()
		if kind != reflect.Slice && kind != reflect.Array {
			return fmt.Errorf("%w: %s on %q needs a list", ErrInvalidOperand, cond.Op, cond.Field)
		}
	}

	if _, err := json.Marshal(cond.Value); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnencodableValue, cond.Field, err)
	}
	return nil
}

// exceedsInt64 reports whether v holds an unsigned integer above
// math.MaxInt64, at any depth. Such values cannot be stored without loss.
func exceedsInt64(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() > math.MaxInt64
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil() && exceedsInt64(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if exceedsInt64(rv.Index(i).Interface()) {
				return true
			}
		}
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			if exceedsInt64(iter.Value().Interface()) {
				return true
			}
		}
	}
	return false
}

func isReserved(name string) bool {
	for _, r := range reservedFields {
		if name == r {
			return true
		}
	}
	return false
}

func isKnownOperator(op models.Operator) bool {
	for _, o := range knownOperators {
		if op == o {
			return true
		}
	}
	return false
}
