package render

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/finwell/finhealth-cli/internal/model"
)

// WriteScoringXLSX writes the scoring table to an XLSX workbook with a
// single "Scoring" sheet: header row, one row per metric, totals row.
func WriteScoringXLSX(path string, table model.ScoringTable) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet("Scoring")
	if err != nil {
		return eris.Wrap(err, "xlsx: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range []string{"Metric", "Weight", "Benchmark", "Value", "Verdict", "Points"} {
		header.AddCell().SetString(col)
	}

	for _, row := range table.Rows {
		r := sheet.AddRow()
		r.AddCell().SetString(row.Metric)
		r.AddCell().SetInt(row.Weight)
		r.AddCell().SetString(row.Benchmark)
		r.AddCell().SetString(row.Value)
		r.AddCell().SetString(row.Verdict)
		r.AddCell().SetFloat(row.Points)
	}

	totals := sheet.AddRow()
	totals.AddCell().SetString("Total")
	totals.AddCell().SetInt(table.TotalWeight)
	totals.AddCell().SetString("")
	totals.AddCell().SetString("")
	totals.AddCell().SetString("")
	totals.AddCell().SetFloat(table.TotalPoints)

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "xlsx: save %s", path)
	}
	return nil
}
