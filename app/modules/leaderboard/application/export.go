package leaderboardservice

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// StandingsSheet is the worksheet name of exported workbooks.
const StandingsSheet = "Leaderboard"

// BuildStandingsWorkbook writes standings to an XLSX workbook with a Rank, Name, Score header row.
// Players with equal scores share a rank.
func BuildStandingsWorkbook(standings []Standing) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), StandingsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(StandingsSheet, "A1", &[]any{"Rank", "Name", "Score"}); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	rank := 0
	for i, s := range standings {
		if i == 0 || s.Score != standings[i-1].Score {
			rank = i + 1
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(StandingsSheet, cell, &[]any{rank, s.Name, s.Score}); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetColWidth(StandingsSheet, "B", "B", 30); err != nil {
		return nil, fmt.Errorf("failed to size name column: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
