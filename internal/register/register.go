// Package register builds the charge register: a spreadsheet with one row
// per compiled block.
package register

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/dgallion1/dc4u/internal/pipeline"
)

const sheet = "Register"

// Header is the register's first row.
var Header = []string{
	"Source", "Block", "Line", "Status", "Output",
	"Suspect", "Suspect ID", "Charge", "Date of Offence", "Statute",
	"Charging Officer", "Date of Charge", "Error",
}

// Build lays out every block of every batch.
func Build(batches ...*pipeline.Batch) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		f.Close()
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	row := 1
	if err := setRow(f, row, toCells(Header)); err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		f.Close()
		return nil, err
	}

	for _, b := range batches {
		for _, r := range b.Results {
			row++
			if err := setRow(f, row, cells(r)); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "M", 20); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// Write streams the register for batches as an XLSX workbook.
func Write(w io.Writer, batches ...*pipeline.Batch) error {
	f, err := Build(batches...)
	if err != nil {
		return fmt.Errorf("build register: %w", err)
	}
	defer f.Close()
	if err := f.Write(w); err != nil {
		return fmt.Errorf("write register: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func cells(r pipeline.Result) []any {
	status, output, errText := "rendered", "", ""
	if r.Err != nil {
		status = "failed"
		errText = r.Err.Error()
	} else {
		output = r.Output.FileName
	}

	row := []any{r.Source, r.Index, r.Line, status, output}
	if rec := r.Record; rec != nil {
		row = append(row,
			rec.SuspectName, rec.SuspectID, rec.ChargeTitle, rec.OffenseDate, rec.Statute,
			rec.ChargingOfficerName, rec.ChargingDate)
	} else {
		row = append(row, "", "", "", "", "", "", "")
	}
	return append(row, errText)
}

func toCells(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
