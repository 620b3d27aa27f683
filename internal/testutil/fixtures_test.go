package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestBalanceSheetRows_EndsWithFooter(t *testing.T) {
	rows := BalanceSheetRows()
	last := rows[len(rows)-1][0]
	if !strings.Contains(last, "GMT") {
		t.Errorf("Expected footer row, got %q", last)
	}
}

func TestFixtures_ReturnFreshCopies(t *testing.T) {
	first := CashFlowRows()
	first[6][1] = "mutated"

	second := CashFlowRows()
	if second[6][1] == "mutated" {
		t.Error("CashFlowRows shares state between calls")
	}
}

func TestHistoricalRows_PeriodLabels(t *testing.T) {
	rows := HistoricalRows(12)

	periodRow := rows[5]
	if len(periodRow) != 13 {
		t.Fatalf("Expected 13 cells in period row, got %d", len(periodRow))
	}
	if periodRow[1] != "Jan 2025" {
		t.Errorf("Expected first label Jan 2025, got %q", periodRow[1])
	}
	if periodRow[12] != "Dec 2025" {
		t.Errorf("Expected last label Dec 2025, got %q", periodRow[12])
	}
}

func TestHistoricalRows_DeterministicAmounts(t *testing.T) {
	a := HistoricalRows(6)
	b := HistoricalRows(6)

	for i := range a {
		if strings.Join(a[i], "|") != strings.Join(b[i], "|") {
			t.Errorf("Row %d differs between calls", i)
		}
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.csv")
	if err := WriteCSV(path, ProfitLossRows()); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(records) == 0 {
		t.Fatal("No records read back")
	}
	if records[0][0] != "Profit and Loss" {
		t.Errorf("Expected title row, got %q", records[0][0])
	}
}
