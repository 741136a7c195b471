package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sampleResult struct {
	Checksum float64 `json:"checksum" yaml:"checksum"`
	Size     int     `json:"size" yaml:"size"`
}

func TestParseFormat(t *testing.T) {
	type test struct {
		input string
		want  Format
		ok    bool
	}

	tests := []test{
		{"table", FormatTable, true},
		{"JSON", FormatJSON, true},
		{"csv", FormatCSV, true},
		{"yaml", FormatYAML, true},
		{"xml", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if tt.ok {
			assert.NoError(t, err, "ParseFormat(%q)", tt.input)
			assert.Equal(t, tt.want, got)
		} else {
			assert.Error(t, err, "ParseFormat(%q)", tt.input)
		}
	}
}

func TestRenderJSON(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("json", 3, &buf)
	require.NoError(t, err)

	result := sampleResult{Checksum: 12.5, Size: 64}
	require.NoError(t, f.Render("ignored", result, nil))

	var decoded sampleResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, result, decoded)
}

func TestRenderYAML(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("yaml", 3, &buf)
	require.NoError(t, err)

	result := sampleResult{Checksum: 12.5, Size: 64}
	require.NoError(t, f.Render("ignored", result, nil))

	var decoded sampleResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, result, decoded)
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("table", 2, &buf)
	require.NoError(t, err)

	rows := []Row{
		{Name: "checksum", Value: 1234.5},
		{Name: "size", Value: 64},
	}
	require.NoError(t, f.Render("Matrix Product", nil, rows))

	out := buf.String()
	assert.Contains(t, out, "Matrix Product")
	assert.Contains(t, out, "checksum")
	// Locale-aware grouping in the table output
	assert.Contains(t, out, "1,234.50")
}

func TestRenderCSV(t *testing.T) {
	var buf bytes.Buffer
	f, err := NewFormatter("csv", 2, &buf)
	require.NoError(t, err)

	rows := []Row{
		{Name: "checksum", Value: 1234.5},
		{Name: "size", Value: 64},
	}
	require.NoError(t, f.Render("", nil, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "checksum,size", lines[0])
	// Plain (ungrouped) numbers so cells stay parseable
	assert.Equal(t, "1234.50,64", lines[1])
}

func TestNewFormatterRejectsUnknownFormat(t *testing.T) {
	_, err := NewFormatter("html", 2, &bytes.Buffer{})
	assert.Error(t, err)
}
