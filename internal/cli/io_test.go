// SPDX-License-Identifier: MIT
package cli

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestReadCostMatrixJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cost.json")
	if err := os.WriteFile(path, []byte(`[[0, "inf"], ["inf", 0]]`), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := readCostMatrix(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Rows() != 2 || m.Cols() != 2 {
		t.Fatalf("got %dx%d, want 2x2", m.Rows(), m.Cols())
	}
	v, err := m.At(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(v, 1) {
		t.Fatalf("At(0,1) = %v, want +Inf", v)
	}
}

func TestReadCostMatrixCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cost.csv")
	if err := os.WriteFile(path, []byte("4,1,3\n2,0,5\n3,2,2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := readCostMatrix(path)
	if err != nil {
		t.Fatal(err)
	}
	v, err := m.At(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0 {
		t.Fatalf("At(1,1) = %v, want 0", v)
	}
}

func TestReadCostMatrixRejectsUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cost.txt")
	if err := os.WriteFile(path, []byte("1,2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := readCostMatrix(path); err == nil {
		t.Fatal("expected an error for an unsupported extension")
	}
}
