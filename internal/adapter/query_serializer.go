package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-offline-store/models"
)

// mongoOperators maps query operators to the backend filter syntax. OpEqual
// is written as a bare value and is not listed.
var mongoOperators = map[models.Operator]string{
	models.OpNotEqual:       "$ne",
	models.OpGreater:        "$gt",
	models.OpGreaterOrEqual: "$gte",
	models.OpLess:           "$lt",
	models.OpLessOrEqual:    "$lte",
	models.OpIn:             "$in",
	models.OpNotIn:          "$nin",
	models.OpExists:         "$exists",
}

// queryParams converts a query into the request parameters understood by the
// collection endpoint: query, sort, skip and limit. Empty parts are omitted.
func queryParams(q *models.Query) (map[string]string, error) {
	params := make(map[string]string)
	if q == nil {
		return params, nil
	}

	if q.HasFilter() {
		filter, err := serializeFilter(q.Filter)
		if err != nil {
			return nil, err
		}
		params["query"] = filter
	}
	if len(q.Sort) > 0 {
		sort, err := serializeSort(q.Sort)
		if err != nil {
			return nil, err
		}
		params["sort"] = sort
	}
	if q.Skip > 0 {
		params["skip"] = strconv.Itoa(q.Skip)
	}
	if q.Limit > 0 {
		params["limit"] = strconv.Itoa(q.Limit)
	}
	return params, nil
}

// serializeFilter renders the conditions as a Mongo-style JSON document.
// Conditions on distinct fields share one document; a field that is
// constrained more than once makes the whole filter an explicit $and.
func serializeFilter(conditions []models.Condition) (string, error) {
	seen := make(map[string]bool, len(conditions))
	repeated := false
	for _, c := range conditions {
		if seen[c.Field] {
			repeated = true
		}
		seen[c.Field] = true
	}

	var doc any
	if repeated {
		clauses := make([]map[string]any, 0, len(conditions))
		for _, c := range conditions {
			clause, err := conditionClause(c)
			if err != nil {
				return "", err
			}
			clauses = append(clauses, map[string]any{c.Field: clause})
		}
		doc = map[string]any{"$and": clauses}
	} else {
		fields := make(map[string]any, len(conditions))
		for _, c := range conditions {
			clause, err := conditionClause(c)
			if err != nil {
				return "", err
			}
			fields[c.Field] = clause
		}
		doc = fields
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("encode query filter: %w", err)
	}
	return string(b), nil
}

func conditionClause(c models.Condition) (any, error) {
	if c.Field == "" {
		return nil, fmt.Errorf("encode query filter: empty field name")
	}
	if c.Op == models.OpEqual {
		return c.Value, nil
	}
	op, ok := mongoOperators[c.Op]
	if !ok {
		return nil, fmt.Errorf("encode query filter: unsupported operator %q", c.Op)
	}
	return map[string]any{op: c.Value}, nil
}

// serializeSort keeps the order of the sort keys, which a Go map would lose.
func serializeSort(sort []models.SortField) (string, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range sort {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(s.Field)
		if err != nil {
			return "", fmt.Errorf("encode query sort: %w", err)
		}
		buf.Write(key)
		if s.Descending {
			buf.WriteString(":-1")
		} else {
			buf.WriteString(":1")
		}
	}
	buf.WriteByte('}')
	return buf.String(), nil
}
