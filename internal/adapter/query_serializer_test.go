package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-offline-store/models"
)

func TestSerializeFilter(t *testing.T) {
	tests := []struct {
		name  string
		query *models.Query
		want  string
	}{
		{"equality is a bare value", models.NewQuery().Where("done", models.OpEqual, true), `{"done":true}`},
		{"operators", models.NewQuery().Where("age", models.OpGreaterOrEqual, 18).Where("name", models.OpNotEqual, "bob"),
			`{"age":{"$gte":18},"name":{"$ne":"bob"}}`},
		{"in and nin", models.NewQuery().Where("tag", models.OpIn, []string{"a", "b"}).Where("owner", models.OpNotIn, []string{"x"}),
			`{"tag":{"$in":["a","b"]},"owner":{"$nin":["x"]}}`},
		{"exists", models.NewQuery().Where("due", models.OpExists, false), `{"due":{"$exists":false}}`},
		{"reserved paths pass through", models.NewQuery().Where("_kmd.lmt", models.OpGreater, "2026"), `{"_kmd.lmt":{"$gt":"2026"}}`},
		{"repeated field becomes $and", models.NewQuery().Where("age", models.OpGreater, 1).Where("age", models.OpLess, 9),
			`{"$and":[{"age":{"$gt":1}},{"age":{"$lt":9}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := serializeFilter(tt.query.Filter)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, got)
		})
	}
}

func TestSerializeFilter_Invalid(t *testing.T) {
	_, err := serializeFilter([]models.Condition{{Field: "a", Op: "regex", Value: "x"}})
	assert.Error(t, err)

	_, err = serializeFilter([]models.Condition{{Field: "", Op: models.OpEqual, Value: 1}})
	assert.Error(t, err)
}

func TestSerializeSort_KeepsOrder(t *testing.T) {
	got, err := serializeSort([]models.SortField{{Field: "b", Descending: true}, {Field: "a"}})
	require.NoError(t, err)
	assert.Equal(t, `{"b":-1,"a":1}`, got)
}

func TestQueryParams(t *testing.T) {
	params, err := queryParams(nil)
	require.NoError(t, err)
	assert.Empty(t, params)

	params, err = queryParams(models.NewQuery().Where("a", models.OpEqual, 1).OrderBy("a", false).Page(3, 7))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"query": `{"a":1}`,
		"sort":  `{"a":1}`,
		"skip":  "3",
		"limit": "7",
	}, params)
}
