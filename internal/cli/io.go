// SPDX-License-Identifier: MIT
package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath/matrix"
)

// infToken is the textual sentinel accepted in both JSON and CSV cost
// matrices for an unreachable (forbidden) row/column pair; JSON has no
// native Infinity literal, so both formats share this convention.
const infToken = "inf"

// readCostMatrix dispatches on path's extension: ".json" for a JSON array of
// arrays, ".csv" for comma-separated rows. Any other extension is rejected
// rather than guessed.
func readCostMatrix(path string) (*matrix.Dense, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return readCostMatrixJSON(path)
	case ".csv":
		return readCostMatrixCSV(path)
	default:
		return nil, fmt.Errorf("lsapctl: unsupported cost matrix extension %q (want .json or .csv)", ext)
	}
}

func readCostMatrixJSON(path string) (*matrix.Dense, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lsapctl: read %s: %w", path, err)
	}
	// Cells unmarshal as []interface{} rather than [][]float64 so a row can
	// mix numbers with the infToken string sentinel for forbidden pairs.
	var generic [][]interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("lsapctl: parse %s: %w", path, err)
	}
	rows := make([][]float64, len(generic))
	for i, row := range generic {
		rows[i] = make([]float64, len(row))
		for j, cell := range row {
			v, err := cellToFloat(cell)
			if err != nil {
				return nil, fmt.Errorf("lsapctl: %s[%d][%d]: %w", path, i, j, err)
			}
			rows[i][j] = v
		}
	}
	return denseFromRows(rows)
}

func cellToFloat(cell interface{}) (float64, error) {
	switch v := cell.(type) {
	case float64:
		return v, nil
	case string:
		if strings.EqualFold(v, infToken) {
			return math.Inf(1), nil
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number or %q: %w", infToken, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("unsupported JSON cell kind %T", v)
	}
}

func readCostMatrixCSV(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("lsapctl: open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("lsapctl: parse %s: %w", path, err)
	}

	rows := make([][]float64, len(records))
	for i, rec := range records {
		rows[i] = make([]float64, len(rec))
		for j, cell := range rec {
			cell = strings.TrimSpace(cell)
			if strings.EqualFold(cell, infToken) {
				rows[i][j] = math.Inf(1)
				continue
			}
			f, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("lsapctl: %s row %d col %d: %w", path, i, j, err)
			}
			rows[i][j] = f
		}
	}
	return denseFromRows(rows)
}

func denseFromRows(rows [][]float64) (*matrix.Dense, error) {
	if len(rows) == 0 {
		return matrix.NewDenseWithOptions(0, 0, matrix.WithAllowInfDistances())
	}
	m, err := matrix.NewDenseWithOptions(len(rows), len(rows[0]), matrix.WithAllowInfDistances())
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j, v := range row {
			if err := m.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("lsapctl: set (%d,%d): %w", i, j, err)
			}
		}
	}
	return m, nil
}

// writeResultJSON prints a lsap.Result to stdout as JSON.
func writeResultJSON(row4col, col4row []int, u, v []float64) error {
	out := struct {
		Row4Col []int     `json:"row4col"`
		Col4Row []int     `json:"col4row"`
		U       []float64 `json:"u"`
		V       []float64 `json:"v"`
	}{row4col, col4row, u, v}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
