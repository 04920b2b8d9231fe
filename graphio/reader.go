package graphio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/kmst/graph"
)

// ReadEdgesFile opens path and parses it with ReadEdges. The path must carry
// a .txt extension.
func ReadEdgesFile(path string) ([]graph.Input, error) {
	if filepath.Ext(path) != ".txt" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ReadEdges(file)
}

// ReadEdges parses one "from,to,weight" record per line. Fields are trimmed;
// blank lines are skipped. Weight validation (sign, NaN) is left to graph.New.
func ReadEdges(r io.Reader) ([]graph.Input, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	var out []graph.Input
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		line, _ := reader.FieldPos(0)

		weight, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: invalid weight: %v", ErrInvalidFormat, line, err)
		}
		out = append(out, graph.Input{
			From:   strings.TrimSpace(record[0]),
			To:     strings.TrimSpace(record[1]),
			Weight: weight,
		})
	}

	return out, nil
}
