package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tunein/compute-benchmark-cli/internal/output"
	"github.com/tunein/compute-benchmark-cli/pkg/logging"
	"github.com/tunein/compute-benchmark-cli/pkg/parsebench"
)

var (
	csvSizeMB  int
	jsonSizeMB int
)

// csvCmd represents the CSV parser benchmark command
var csvCmd = &cobra.Command{
	Use:   "csv",
	Short: "Run the delimited-text parser benchmark",
	Long: `Run the CSV benchmark: generate a synthetic 20-column dataset of the
requested size, parse it with a hand-rolled byte-level field splitter, and
report record count and parse time.

Examples:
  compute-benchmark csv --size-mb 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse("csv", csvSizeMB, parsebench.RunCSV)
	},
}

// jsonCmd represents the JSON parser benchmark command
var jsonCmd = &cobra.Command{
	Use:   "json",
	Short: "Run the structured-text parser benchmark",
	Long: `Run the JSON benchmark: generate a synthetic array of records of the
requested size, parse it with a hand-rolled state machine, and report record
count and parse time.

Examples:
  compute-benchmark json --size-mb 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runParse("json", jsonSizeMB, parsebench.RunJSON)
	},
}

func init() {
	rootCmd.AddCommand(csvCmd)
	rootCmd.AddCommand(jsonCmd)

	csvCmd.Flags().IntVar(&csvSizeMB, "size-mb", 5,
		"approximate payload size in megabytes")
	jsonCmd.Flags().IntVar(&jsonSizeMB, "size-mb", 5,
		"approximate payload size in megabytes")
}

func runParse(name string, sizeMB int, run func(int) (parsebench.Result, error)) error {
	logger := newLogger()

	logger.Debug("Running parser benchmark", logging.Fields{
		"benchmark": name,
		"size_mb":   sizeMB,
	})

	result, err := run(sizeMB)
	if err != nil {
		return fmt.Errorf("%s benchmark failed: %w", name, err)
	}

	formatter, err := newFormatter()
	if err != nil {
		return err
	}

	title := "CSV Parser"
	if name == "json" {
		title = "JSON Parser"
	}

	return formatter.Render(title, result, []output.Row{
		{Name: "size_mb", Value: sizeMB},
		{Name: "record_count", Value: result.RecordCount},
		{Name: "byte_size", Value: result.ByteSize},
		{Name: "avg_value", Value: result.AvgValue},
		{Name: "parse_time_ms", Value: result.ParseTimeMs},
	})
}
