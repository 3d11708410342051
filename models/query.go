// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"cmp"
	"math"
	"reflect"
	"strings"
)

// Operator is a comparison used in a query condition.
type Operator string

const (
	OpEqual          Operator = "eq"
	OpNotEqual       Operator = "ne"
	OpGreater        Operator = "gt"
	OpGreaterOrEqual Operator = "gte"
	OpLess           Operator = "lt"
	OpLessOrEqual    Operator = "lte"
	OpIn             Operator = "in"
	OpNotIn          Operator = "nin"
	// OpExists matches when the presence of the field equals Value (a bool).
	OpExists Operator = "exists"
)

// Condition compares one entity field against a literal value.
type Condition struct {
	Field string   `json:"field"`
	Op    Operator `json:"op"`
	Value any      `json:"value,omitempty"`
}

// SortField orders results by one field.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"desc,omitempty"`
}

// Query is the intermediate representation of a collection query. The
// local cache compiles it to SQL and the network gateway serialises it to
// the backend filter syntax, so both sides agree on what a query means.
//
// Conditions in Filter are joined with AND. A nil *Query means "everything".
type Query struct {
	Filter []Condition `json:"filter,omitempty"`
	Sort   []SortField `json:"sort,omitempty"`
	Skip   int         `json:"skip,omitempty"`
	Limit  int         `json:"limit,omitempty"`
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{}
}

// Where appends a condition.
func (q *Query) Where(field string, op Operator, value any) *Query {
	q.Filter = append(q.Filter, Condition{Field: field, Op: op, Value: value})
	return q
}

// OrderBy appends a sort key.
func (q *Query) OrderBy(field string, descending bool) *Query {
	q.Sort = append(q.Sort, SortField{Field: field, Descending: descending})
	return q
}

// Page sets skip and limit.
func (q *Query) Page(skip, limit int) *Query {
	q.Skip = skip
	q.Limit = limit
	return q
}

// IsPaged reports whether the query windows or orders its result. Such
// queries cannot be answered incrementally.
func (q *Query) IsPaged() bool {
	if q == nil {
		return false
	}
	return q.Skip > 0 || q.Limit > 0 || len(q.Sort) > 0
}

// HasFilter reports whether the query restricts the result set.
func (q *Query) HasFilter() bool {
	return q != nil && len(q.Filter) > 0
}

// FilterOnly returns a copy of q without sort and paging.
func (q *Query) FilterOnly() *Query {
	if q == nil {
		return nil
	}
	return &Query{Filter: append([]Condition(nil), q.Filter...)}
}

// Match evaluates the filter of q against e. Sort and paging are ignored.
func (q *Query) Match(e Entity) bool {
	if q == nil {
		return true
	}
	for _, c := range q.Filter {
		if !c.Match(e) {
			return false
		}
	}
	return true
}

// Match evaluates a single condition against e.
func (c Condition) Match(e Entity) bool {
	value, found := e.Value(c.Field)

	switch c.Op {
	case OpExists:
		want, _ := c.Value.(bool)
		return found == want
	case OpEqual:
		return found && equalValues(value, c.Value)
	case OpNotEqual:
		return !found || !equalValues(value, c.Value)
	case OpIn:
		return found && containsValue(c.Value, value)
	case OpNotIn:
		return !found || !containsValue(c.Value, value)
	case OpGreater, OpGreaterOrEqual, OpLess, OpLessOrEqual:
		if !found {
			return false
		}
		cmp, ok := compareValues(value, c.Value)
		if !ok {
			return false
		}
		switch c.Op {
		case OpGreater:
			return cmp > 0
		case OpGreaterOrEqual:
			return cmp >= 0
		case OpLess:
			return cmp < 0
		default:
			return cmp <= 0
		}
	}
	return false
}

func equalValues(a, b any) bool {
	if cmp, ok := compareValues(a, b); ok {
		return cmp == 0
	}
	return reflect.DeepEqual(a, b)
}

func containsValue(set, v any) bool {
	rv := reflect.ValueOf(set)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return equalValues(set, v)
	}
	for i := 0; i < rv.Len(); i++ {
		if equalValues(rv.Index(i).Interface(), v) {
			return true
		}
	}
	return false
}

// compareValues orders two scalars of the same family (numbers or strings).
// Two integers are compared exactly.
func compareValues(a, b any) (int, bool) {
	if ia, ok := toInt(a); ok {
		if ib, ok := toInt(b); ok {
			return cmp.Compare(ia, ib), true
		}
	}
	if fa, ok := toFloat(a); ok {
		fb, ok := toFloat(b)
		if !ok {
			return 0, false
		}
		switch {
		case fa < fb:
			return -1, true
		case fa > fb:
			return 1, true
		}
		return 0, true
	}
	sa, ok := a.(string)
	if !ok {
		return 0, false
	}
	sb, ok := b.(string)
	if !ok {
		return 0, false
	}
	return strings.Compare(sa, sb), true
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), uint64(n) <= math.MaxInt64
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= math.MaxInt64
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
