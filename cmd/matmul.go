package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tunein/compute-benchmark-cli/internal/output"
	"github.com/tunein/compute-benchmark-cli/pkg/logging"
	"github.com/tunein/compute-benchmark-cli/pkg/matrix"
)

var matmulSize int

// matmulCmd represents the matrix multiplication benchmark command
var matmulCmd = &cobra.Command{
	Use:   "matmul",
	Short: "Run the dense matrix product benchmark",
	Long: `Run the matrix benchmark: fill two seeded random n×n matrices, multiply
them with the naive triple loop, and reduce the product to an element-sum
checksum.

Examples:
  # Run with the default size
  compute-benchmark matmul

  # 512x512 product
  compute-benchmark matmul --size 512`,
	RunE: runMatmul,
}

func init() {
	rootCmd.AddCommand(matmulCmd)

	matmulCmd.Flags().IntVar(&matmulSize, "size", 256,
		"matrix dimension")
}

func runMatmul(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	logger.Debug("Running matrix product benchmark", logging.Fields{
		"size": matmulSize,
	})

	result, err := matrix.Run(matmulSize)
	if err != nil {
		return fmt.Errorf("matrix benchmark failed: %w", err)
	}

	formatter, err := newFormatter()
	if err != nil {
		return err
	}

	return formatter.Render("Matrix Product", result, []output.Row{
		{Name: "size", Value: result.Size},
		{Name: "checksum", Value: result.Checksum},
	})
}
