package parsebench

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCSV(t *testing.T) {
	for _, mb := range []int{0, -1} {
		data, err := GenerateCSV(mb)
		assert.ErrorIs(t, err, ErrInvalidSize, "sizeMB=%d", mb)
		assert.Nil(t, data)
	}

	data, err := GenerateCSV(1)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data[:20]), "id,name,"))

	// Roughly the requested size, never wildly off
	assert.Greater(t, len(data), 512*1024)
	assert.Less(t, len(data), 2*1024*1024)

	again, err := GenerateCSV(1)
	require.NoError(t, err)
	assert.Equal(t, data, again)
}

func TestParseCSVSmall(t *testing.T) {
	csv := csvHeader +
		"1,Record_1,1.500,2.300,0.700,1,active,12.99,1,2024-01-01,0.850,1.150,0.950,1,Description_1,2.500,1,typeA,0.1230,0\n" +
		"2,Record_2,3.000,4.600,1.400,2,inactive,25.98,2,2024-02-02,1.700,2.300,1.900,2,Description_2,5.000,2,typeB,0.2460,1\n"

	records := ParseCSV([]byte(csv))
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "Record_1", first.Name)
	assert.InDelta(t, 1.5, first.Value1, 1e-9)
	assert.InDelta(t, 2.3, first.Value2, 1e-9)
	assert.InDelta(t, 0.7, first.Value3, 1e-9)
	assert.Equal(t, "active", first.Status)
	assert.Equal(t, "2024-01-01", first.Date)
	assert.Equal(t, "typeA", first.Type)
	assert.Equal(t, 0, first.Flag)

	second := records[1]
	assert.Equal(t, 2, second.ID)
	assert.Equal(t, "inactive", second.Status)
	assert.Equal(t, 1, second.Flag)
}

func TestParseCSVQuotedField(t *testing.T) {
	csv := csvHeader +
		"3,\"Record, quoted\",1.0,2.0,3.0,1,active,9.99,1,2024-03-03,0.1,0.2,0.3,1,Desc,1.0,1,typeA,0.5,1\n"

	records := ParseCSV([]byte(csv))
	require.Len(t, records, 1)
	assert.Equal(t, "Record, quoted", records[0].Name)
}

func TestParseCSVCRLF(t *testing.T) {
	csv := strings.ReplaceAll(csvHeader+
		"4,Record_4,1.0,2.0,3.0,1,active,9.99,1,2024-04-04,0.1,0.2,0.3,1,Desc,1.0,1,typeA,0.5,1\n",
		"\n", "\r\n")

	records := ParseCSV([]byte(csv))
	require.Len(t, records, 1)
	assert.Equal(t, 4, records[0].ID)
}

func TestParseCSVSkipsIncompleteRows(t *testing.T) {
	csv := csvHeader + "5,Record_5,1.0,2.0\n"
	assert.Empty(t, ParseCSV([]byte(csv)))

	// Header only
	assert.Empty(t, ParseCSV([]byte(csvHeader)))
	assert.Empty(t, ParseCSV(nil))
}

func TestRunCSV(t *testing.T) {
	_, err := RunCSV(0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	result, err := RunCSV(1)
	require.NoError(t, err)

	expectedRecords := 1024 * 1024 / csvBytesPerRecord
	assert.Equal(t, expectedRecords, result.RecordCount)
	assert.Greater(t, result.ByteSize, 0)
	assert.Greater(t, result.AvgValue, 0.0)
	assert.GreaterOrEqual(t, result.ParseTimeMs, 0.0)
}

func BenchmarkParseCSV(b *testing.B) {
	data, err := GenerateCSV(1)
	if err != nil {
		b.Fatal(err)
	}

	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ParseCSV(data)
	}
}
