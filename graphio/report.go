package graphio

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/kmst/graph"
)

// ReportName returns the report file name for a seed and timestamp.
func ReportName(seed int64, stamp string) string {
	return fmt.Sprintf("report_seed_%d_%s.txt", seed, stamp)
}

// WriteReport writes edges as "from,to,weight" lines to
// dir/report_seed_<seed>_<stamp>.txt, creating dir when needed, and returns
// the file path.
func WriteReport(dir string, seed int64, stamp string, edges []graph.Edge) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}
	path := filepath.Join(dir, ReportName(seed, stamp))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for i, e := range edges {
		row := []string{e.From, e.To, strconv.FormatFloat(e.Weight, 'g', -1, 64)}
		if err = writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	writer.Flush()
	if err = writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush report: %w", err)
	}

	return path, file.Close()
}
