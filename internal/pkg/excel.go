package pkg

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"club-hub/internal/model"
)

const LedgerSheetName = "Ledger"

// BuildLedgerXLSX 把会计内容生成为xlsx，调用方负责排序
func BuildLedgerXLSX(entries []model.AccountingEntry) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", LedgerSheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headers := []string{"date", "manager", "description", "amount"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(LedgerSheetName, cell, h); err != nil {
			return nil, err
		}
	}

	for row, e := range entries {
		values := []any{e.Date, e.Manager, e.Description, e.Amount}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(LedgerSheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	return f.WriteToBuffer()
}
