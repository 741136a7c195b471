package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Format selects how benchmark results are rendered
type Format string

// Supported output formats, selected by the root -o flag
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates a format name from flags or configuration
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", name)
	}
}

// Row is one labeled value of a human-readable result table
type Row struct {
	Name  string
	Value interface{}
}

// Formatter renders benchmark results in the configured format
type Formatter struct {
	format    Format
	precision int
	printer   *message.Printer
	w         io.Writer
}

// NewFormatter creates a formatter writing to w. precision controls how many
// decimals the table and csv formats print for floating-point values.
func NewFormatter(format string, precision int, w io.Writer) (*Formatter, error) {
	f, err := ParseFormat(format)
	if err != nil {
		return nil, err
	}

	if precision < 0 {
		precision = 6
	}

	return &Formatter{
		format:    f,
		precision: precision,
		printer:   message.NewPrinter(language.English),
		w:         w,
	}, nil
}

// Render writes one result. The json and yaml formats marshal v directly;
// table and csv print the labeled rows.
func (f *Formatter) Render(title string, v interface{}, rows []Row) error {
	switch f.format {
	case FormatJSON:
		enc := json.NewEncoder(f.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(f.w)
		defer enc.Close()
		return enc.Encode(v)
	case FormatCSV:
		return f.renderCSV(rows)
	default:
		return f.renderTable(title, rows)
	}
}

func (f *Formatter) renderTable(title string, rows []Row) error {
	if title != "" {
		if _, err := fmt.Fprintf(f.w, "%s\n%s\n", title, strings.Repeat("-", len(title))); err != nil {
			return err
		}
	}

	width := 0
	for _, row := range rows {
		if len(row.Name) > width {
			width = len(row.Name)
		}
	}

	for _, row := range rows {
		if _, err := fmt.Fprintf(f.w, "%-*s  %s\n", width, row.Name, f.formatValue(row.Value)); err != nil {
			return err
		}
	}

	return nil
}

func (f *Formatter) renderCSV(rows []Row) error {
	names := make([]string, len(rows))
	values := make([]string, len(rows))

	for i, row := range rows {
		names[i] = row.Name
		// No digit grouping here: grouped numbers would break the CSV cells
		values[i] = f.formatPlain(row.Value)
	}

	if _, err := fmt.Fprintln(f.w, strings.Join(names, ",")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(f.w, strings.Join(values, ","))
	return err
}

// formatValue renders a single cell, grouping digits for readability in
// tables via the locale-aware printer
func (f *Formatter) formatValue(v interface{}) string {
	switch value := v.(type) {
	case float64:
		return f.printer.Sprintf("%.*f", f.precision, value)
	case float32:
		return f.printer.Sprintf("%.*f", f.precision, float64(value))
	case int:
		return f.printer.Sprintf("%d", value)
	case int64:
		return f.printer.Sprintf("%d", value)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (f *Formatter) formatPlain(v interface{}) string {
	switch value := v.(type) {
	case float64:
		return fmt.Sprintf("%.*f", f.precision, value)
	case float32:
		return fmt.Sprintf("%.*f", f.precision, float64(value))
	default:
		return fmt.Sprintf("%v", v)
	}
}
