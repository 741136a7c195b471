package parsebench

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateJSON(t *testing.T) {
	for _, mb := range []int{0, -3} {
		data, err := GenerateJSON(mb)
		assert.ErrorIs(t, err, ErrInvalidSize, "sizeMB=%d", mb)
		assert.Nil(t, data)
	}

	data, err := GenerateJSON(1)
	require.NoError(t, err)

	// The generated payload must be well-formed JSON
	var parsed []map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.Len(t, parsed, 1024*1024/jsonBytesPerRecord)

	again, err := GenerateJSON(1)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestParseJSONSmall(t *testing.T) {
	input := `[
  {
    "id": 1,
    "name": "Record_1",
    "value": 3.14159,
    "active": true
  },
  {
    "id": 2,
    "name": "Record_2",
    "value": 6.28318,
    "active": false
  }
]`

	records := ParseJSON([]byte(input))
	require.Len(t, records, 2)

	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, "Record_1", records[0].Name)
	assert.InDelta(t, 3.14159, records[0].Value, 1e-9)
	assert.True(t, records[0].Active)

	assert.Equal(t, 2, records[1].ID)
	assert.False(t, records[1].Active)
}

func TestParseJSONEscapedString(t *testing.T) {
	input := `[{"id": 7, "name": "Record \"seven\"", "value": 1.0, "active": true}]`

	records := ParseJSON([]byte(input))
	require.Len(t, records, 1)
	assert.Equal(t, `Record "seven"`, records[0].Name)
}

func TestParseJSONIgnoresUnknownKeysAndBadRecords(t *testing.T) {
	input := `[
  {"id": 1, "name": "a", "value": 1.0, "active": true, "extra": 99},
  {"id": 0, "name": "dropped", "value": 2.0, "active": false},
  {"name": "no id", "value": 3.0, "active": true}
]`

	records := ParseJSON([]byte(input))
	require.Len(t, records, 1)
	assert.Equal(t, 1, records[0].ID)

	assert.Empty(t, ParseJSON(nil))
	assert.Empty(t, ParseJSON([]byte("[]")))
}

func TestParseJSONAgreesWithEncodingJSON(t *testing.T) {
	data, err := GenerateJSON(1)
	require.NoError(t, err)

	records := ParseJSON(data)

	var want []struct {
		ID     int     `json:"id"`
		Name   string  `json:"name"`
		Value  float64 `json:"value"`
		Active bool    `json:"active"`
	}
	require.NoError(t, json.Unmarshal(data, &want))
	require.Len(t, records, len(want))

	for i := range want {
		assert.Equal(t, want[i].ID, records[i].ID, "record %d", i)
		assert.Equal(t, want[i].Name, records[i].Name, "record %d", i)
		assert.InDelta(t, want[i].Value, records[i].Value, 1e-9, "record %d", i)
		assert.Equal(t, want[i].Active, records[i].Active, "record %d", i)
	}
}

func TestRunJSON(t *testing.T) {
	_, err := RunJSON(-1)
	assert.ErrorIs(t, err, ErrInvalidSize)

	result, err := RunJSON(1)
	require.NoError(t, err)

	assert.Equal(t, 1024*1024/jsonBytesPerRecord, result.RecordCount)
	assert.Greater(t, result.ByteSize, 0)
	assert.Greater(t, result.AvgValue, 0.0)
	assert.GreaterOrEqual(t, result.ParseTimeMs, 0.0)
}

func BenchmarkParseJSON(b *testing.B) {
	data, err := GenerateJSON(1)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseJSON(data)
	}
}
