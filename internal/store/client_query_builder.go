package store

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-offline-store/models"
)

const (
	never  = "0 = 1"
	always = "1 = 1"
)

// entityQueryBuilder compiles a models.Query into a parameterised SELECT over
// the cached documents of one collection. Values are always bound, never
// interpolated. Results are ordered by the requested sort fields with the
// entity id as the final tiebreaker.
type entityQueryBuilder struct {
	collection string
}

func newEntityQueryBuilder(collection string) entityQueryBuilder {
	return entityQueryBuilder{collection: collection}
}

func (b entityQueryBuilder) build(query *models.Query, columns ...string) (string, []any, error) {
	builder := sq.Select(columns...).
		From(entitiesTable).
		Where(sq.Eq{"collection": b.collection}).
		PlaceholderFormat(sq.Question)

	if query != nil {
		for _, cond := range query.Filter {
			pred, args, err := compileCondition(cond)
			if err != nil {
				return "", nil, err
			}
			builder = builder.Where(pred, args...)
		}

		for _, s := range query.Sort {
			direction := "ASC"
			if s.Descending {
				direction = "DESC"
			}
			if s.Field == models.IDField {
				builder = builder.OrderBy("id " + direction)
				continue
			}
			path, err := jsonPath(s.Field)
			if err != nil {
				return "", nil, err
			}
			builder = builder.OrderByClause("json_extract(document, ?) "+direction, path)
		}

		if query.Limit > 0 {
			builder = builder.Limit(uint64(query.Limit))
		}
		if query.Skip > 0 {
			// sqlite only accepts OFFSET after a LIMIT
			if query.Limit <= 0 {
				builder = builder.Limit(math.MaxInt64)
			}
			builder = builder.Offset(uint64(query.Skip))
		}
	}

	builder = builder.OrderBy("id ASC")

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sqlQuery, args, nil
}

// operand is the SQL side of a condition: either the id column or a value
// extracted from the JSON document.
type operand struct {
	expr string
	args []any
	// path is empty for the id column.
	path string
}

func newOperand(field string) (operand, error) {
	if field == models.IDField {
		return operand{expr: "id"}, nil
	}
	path, err := jsonPath(field)
	if err != nil {
		return operand{}, err
	}
	return operand{expr: "json_extract(document, ?)", args: []any{path}, path: path}, nil
}

// typeGuard restricts the comparison to stored values of the same JSON type
// as v, so that sqlite's cross-type ordering never leaks into results.
// ok is false when no stored value can ever match.
func (o operand) typeGuard(v any) (guard string, args []any, ok bool) {
	kind := valueKind(v)
	if o.path == "" {
		return always, nil, kind == kindString
	}

	args = []any{o.path}
	switch kind {
	case kindNull:
		return "json_type(document, ?) = 'null'", args, true
	case kindNumber:
		return "json_type(document, ?) IN ('integer', 'real')", args, true
	case kindString:
		return "json_type(document, ?) = 'text'", args, true
	case kindBool:
		return "json_type(document, ?) IN ('true', 'false')", args, true
	}
	return "", nil, false
}

func (o operand) equals(v any) (string, []any) {
	guard, args, ok := o.typeGuard(v)
	if !ok {
		return never, nil
	}
	if v == nil {
		return "COALESCE(" + guard + ", 0)", args
	}
	args = append(args, o.args...)
	return "COALESCE(" + guard + " AND " + o.expr + " = ?, 0)", append(args, v)
}

func (o operand) compare(op string, v any) (string, []any) {
	if kind := valueKind(v); kind != kindNumber && kind != kindString {
		return never, nil
	}
	guard, args, ok := o.typeGuard(v)
	if !ok {
		return never, nil
	}
	args = append(args, o.args...)
	return "COALESCE(" + guard + " AND " + o.expr + " " + op + " ?, 0)", append(args, v)
}

func (o operand) oneOf(values []any) (string, []any) {
	if len(values) == 0 {
		return never, nil
	}
	parts := make([]string, 0, len(values))
	var args []any
	for _, v := range values {
		part, partArgs := o.equals(v)
		parts = append(parts, part)
		args = append(args, partArgs...)
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

func (o operand) exists(want bool) (string, []any) {
	if o.path == "" {
		if want {
			return always, nil
		}
		return never, nil
	}
	if want {
		return "json_type(document, ?) IS NOT NULL", []any{o.path}
	}
	return "json_type(document, ?) IS NULL", []any{o.path}
}

func compileCondition(cond models.Condition) (string, []any, error) {
	o, err := newOperand(cond.Field)
	if err != nil {
		return "", nil, err
	}

	switch cond.Op {
	case models.OpExists:
		want, ok := cond.Value.(bool)
		if !ok {
			return "", nil, fmt.Errorf("%w: exists on %q needs a bool", ErrUnsupportedQuery, cond.Field)
		}
		pred, args := o.exists(want)
		return pred, args, nil
	case models.OpIn, models.OpNotIn:
		values, err := listValues(cond.Value)
		if err != nil {
			return "", nil, fmt.Errorf("%w: field %q", err, cond.Field)
		}
		pred, args := o.oneOf(values)
		if cond.Op == models.OpNotIn {
			pred = "NOT " + pred
		}
		return pred, args, nil
	}

	if valueKind(cond.Value) == kindUnsupported {
		return "", nil, fmt.Errorf("%w: value of type %T on %q", ErrUnsupportedQuery, cond.Value, cond.Field)
	}

	switch cond.Op {
	case models.OpEqual:
		pred, args := o.equals(cond.Value)
		return pred, args, nil
	case models.OpNotEqual:
		pred, args := o.equals(cond.Value)
		return "NOT " + pred, args, nil
	case models.OpGreater:
		pred, args := o.compare(">", cond.Value)
		return pred, args, nil
	case models.OpGreaterOrEqual:
		pred, args := o.compare(">=", cond.Value)
		return pred, args, nil
	case models.OpLess:
		pred, args := o.compare("<", cond.Value)
		return pred, args, nil
	case models.OpLessOrEqual:
		pred, args := o.compare("<=", cond.Value)
		return pred, args, nil
	}

	return "", nil, fmt.Errorf("%w: operator %q", ErrUnsupportedQuery, cond.Op)
}

// jsonPath turns a dotted field path into a sqlite JSON path with every
// label quoted, e.g. "address.city" -> `$."address"."city"`.
func jsonPath(field string) (string, error) {
	parts := strings.Split(field, ".")
	var b strings.Builder
	b.WriteString("$")
	for _, part := range parts {
		if part == "" || strings.ContainsAny(part, `"\`) {
			return "", fmt.Errorf("%w: field path %q", ErrUnsupportedQuery, field)
		}
		b.WriteString(`."`)
		b.WriteString(part)
		b.WriteString(`"`)
	}
	return b.String(), nil
}

type kind int

const (
	kindUnsupported kind = iota
	kindNull
	kindNumber
	kindString
	kindBool
)

func valueKind(v any) kind {
	if v == nil {
		return kindNull
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.String:
		return kindString
	case reflect.Bool:
		return kindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return kindNumber
	}
	return kindUnsupported
}

// listValues flattens the operand of in/nin. A scalar counts as a list of one.
func listValues(v any) ([]any, error) {
	rv := reflect.ValueOf(v)
	if v == nil || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		if valueKind(v) == kindUnsupported {
			return nil, fmt.Errorf("%w: value of type %T", ErrUnsupportedQuery, v)
		}
		return []any{v}, nil
	}

	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item := rv.Index(i).Interface()
		if valueKind(item) == kindUnsupported {
			return nil, fmt.Errorf("%w: list item of type %T", ErrUnsupportedQuery, item)
		}
		out = append(out, item)
	}
	return out, nil
}
