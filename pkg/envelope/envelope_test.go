package envelope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordsProbesNestedShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"doubly nested", `{"data":{"data":{"clients":[{"name":"Acme"}]}}}`},
		{"single nested", `{"data":{"clients":[{"name":"Acme"}]}}`},
		{"flat", `{"clients":[{"name":"Acme"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.body))
			require.NoError(t, err)

			records := doc.Records("clients")
			require.Len(t, records, 1)
			assert.Equal(t, "Acme", String(records[0], "name"))
		})
	}
}

func TestRecordsMissingYieldsEmpty(t *testing.T) {
	doc, err := Parse([]byte(`{"data":{"something_else":true}}`))
	require.NoError(t, err)

	assert.Empty(t, doc.Records("clients"))
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{"data":`))
	assert.Error(t, err)
}

func TestEntity(t *testing.T) {
	doc, err := Parse([]byte(`{"data":{"invoice":{"_id":"abc123"}}}`))
	require.NoError(t, err)

	entity := doc.Entity("invoice")
	require.NotNil(t, entity)

	id, ok := RecordID(entity)
	assert.True(t, ok)
	assert.Equal(t, "abc123", id)
}

func TestRecordID(t *testing.T) {
	id, ok := RecordID(map[string]interface{}{"id": "xyz"})
	assert.True(t, ok)
	assert.Equal(t, "xyz", id)

	id, ok = RecordID(map[string]interface{}{"_id": "mongo1", "id": "other"})
	assert.True(t, ok)
	assert.Equal(t, "mongo1", id)

	id, ok = RecordID(map[string]interface{}{"id": float64(42)})
	assert.True(t, ok)
	assert.Equal(t, "42", id)

	// No identifier at all: caller falls back to list navigation.
	_, ok = RecordID(map[string]interface{}{"name": "no id here"})
	assert.False(t, ok)
}

func TestPaginationUnderPaginationKey(t *testing.T) {
	doc, err := Parse([]byte(`{"pagination":{"page":2,"totalPages":5,"total":68}}`))
	require.NoError(t, err)

	meta := doc.Pagination("clients", 15)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 5, meta.TotalPages)
	assert.Equal(t, int64(68), meta.Total)
}

func TestPaginationDerivesTotalPages(t *testing.T) {
	doc, err := Parse([]byte(`{"meta":{"page":1,"totalDocs":31}}`))
	require.NoError(t, err)

	meta := doc.Pagination("clients", 15)
	assert.Equal(t, int64(31), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestPaginationEntityScopedTotal(t *testing.T) {
	doc, err := Parse([]byte(`{"meta":{"totalInvoices":16}}`))
	require.NoError(t, err)

	meta := doc.Pagination("invoices", 15)
	assert.Equal(t, int64(16), meta.Total)
	assert.Equal(t, 2, meta.TotalPages)
}

func TestPaginationAbsent(t *testing.T) {
	doc, err := Parse([]byte(`{"clients":[]}`))
	require.NoError(t, err)

	meta := doc.Pagination("clients", 15)
	assert.Equal(t, 1, meta.Page)
	assert.Equal(t, 0, meta.TotalPages)
}

func TestNumberToleratesStrings(t *testing.T) {
	record := map[string]interface{}{"total": "12.5", "count": float64(3), "bad": true}

	assert.Equal(t, 12.5, Number(record, "total"))
	assert.Equal(t, 3.0, Number(record, "count"))
	assert.Equal(t, 0.0, Number(record, "bad"))
	assert.Equal(t, 0.0, Number(record, "missing"))
}

func TestErrorMessagePreferenceChain(t *testing.T) {
	body := []byte(`{"data":{"message":"Reference already exists"}}`)
	assert.Equal(t, "Reference already exists", ErrorMessage(body, errors.New("http 409"), "Something went wrong"))

	topLevel := []byte(`{"message":"Invalid payload"}`)
	assert.Equal(t, "Invalid payload", ErrorMessage(topLevel, nil, "Something went wrong"))

	assert.Equal(t, "connection refused", ErrorMessage(nil, errors.New("connection refused"), "Something went wrong"))

	assert.Equal(t, "Something went wrong", ErrorMessage([]byte(`{}`), nil, "Something went wrong"))
}
