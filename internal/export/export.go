// Package export serializes a finished result set. The tabular formats share
// one shape: one row per record, one column per distinct key across all
// records, missing keys rendered empty.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/auditlens/soc-extract/internal/record"
)

// WriteCSV writes one header row plus one row per record. Structured values
// render as compact JSON text.
func WriteCSV(w io.Writer, rs record.ResultSet) error {
	cols := record.Columns(rs)
	cw := csv.NewWriter(w)

	if err := cw.Write(cols); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rs {
		row := make([]string, len(cols))
		for i, c := range cols {
			row[i] = cellValue(r[c])
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSONL writes each record as one self-contained JSON object per line.
func WriteJSONL(w io.Writer, rs record.ResultSet) error {
	enc := json.NewEncoder(w)
	for _, r := range rs {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("write jsonl: %w", err)
		}
	}
	return nil
}

// WriteJSON writes the whole result set as a single indented JSON array.
func WriteJSON(w io.Writer, rs record.ResultSet) error {
	if rs == nil {
		rs = record.ResultSet{}
	}
	b, err := json.MarshalIndent(rs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}

// WriteXLSX writes the tabular shape as an Excel workbook.
func WriteXLSX(w io.Writer, rs record.ResultSet) error {
	f := excelize.NewFile()
	const sheet = "Reports"

	index, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	cols := record.Columns(rs)
	for i, c := range cols {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, c); err != nil {
			return err
		}
	}

	for rowIdx, r := range rs {
		for i, c := range cols {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowIdx+2)
			if err := f.SetCellValue(sheet, cell, cellValue(r[c])); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write xlsx: %w", err)
	}
	return f.Close()
}

// cellValue renders a normalized value for a tabular cell: absent -> empty,
// strings as-is, everything else as compact JSON.
func cellValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprintf("%v", t)
		}
		return string(b)
	}
}
