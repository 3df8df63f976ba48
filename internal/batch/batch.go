// Package batch runs many beam jobs from a spreadsheet: one beam per row,
// one results row out. Bad rows are skipped rather than aborting the run,
// matching the interactive tool's tolerance for half-filled inputs.
package batch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/structcalc/gobeam/internal/capacity"
	"github.com/structcalc/gobeam/internal/check"
	"github.com/structcalc/gobeam/internal/engine"
)

// Expected input columns, first row is a header:
// name, span_m, udl_dead_kn_m, udl_live_kn_m, section, members, usage

// Row is one beam job parsed from a spreadsheet row.
type Row struct {
	Name    string
	Span    float64
	UDLDead float64
	UDLLive float64
	Section string
	Members int
	Usage   string
}

// Outcome is one processed beam.
type Outcome struct {
	Row      Row
	Result   *engine.Result
	Capacity capacity.Capacity
	Report   check.Report
}

// Run reads jobs from inputPath, analyses each and, when outputPath is
// non-empty, writes a results workbook. It returns the processed outcomes
// and the number of rows skipped.
func Run(inputPath, outputPath string, limits check.Limits) ([]Outcome, int, error) {
	f, err := excelize.OpenFile(inputPath)
	if err != nil {
		return nil, 0, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, 0, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, 0, fmt.Errorf("sheet %s has no data rows", sheet)
	}

	var outcomes []Outcome
	skipped := 0
	for i := 1; i < len(rows); i++ {
		row, err := ParseRow(rows[i])
		if err != nil {
			skipped++
			continue
		}
		out, err := process(row, limits)
		if err != nil {
			skipped++
			continue
		}
		outcomes = append(outcomes, out)
	}

	if outputPath != "" {
		if err := writeResults(outcomes, outputPath); err != nil {
			return outcomes, skipped, err
		}
	}
	return outcomes, skipped, nil
}

// ParseRow parses one spreadsheet row into a beam job.
func ParseRow(cells []string) (Row, error) {
	if len(cells) < 5 {
		return Row{}, fmt.Errorf("row needs at least 5 columns, got %d", len(cells))
	}

	row := Row{Name: strings.TrimSpace(cells[0]), Section: strings.TrimSpace(cells[4]), Members: 1}

	var err error
	if row.Span, err = toFloat(cells[1]); err != nil {
		return Row{}, fmt.Errorf("span: %w", err)
	}
	if row.UDLDead, err = toFloat(cells[2]); err != nil {
		return Row{}, fmt.Errorf("dead UDL: %w", err)
	}
	if row.UDLLive, err = toFloat(cells[3]); err != nil {
		return Row{}, fmt.Errorf("live UDL: %w", err)
	}
	if len(cells) > 5 && strings.TrimSpace(cells[5]) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(cells[5]))
		if err != nil {
			return Row{}, fmt.Errorf("members: %w", err)
		}
		row.Members = n
	}
	if len(cells) > 6 {
		row.Usage = strings.TrimSpace(cells[6])
	}
	if row.Span <= 0 || row.Section == "" {
		return Row{}, fmt.Errorf("row needs a positive span and a section")
	}
	return row, nil
}

func process(row Row, limits check.Limits) (Outcome, error) {
	job := engine.JobFile{
		Name:    row.Name,
		Span:    row.Span,
		Section: row.Section,
		Members: row.Members,
		Usage:   row.Usage,
		Loads: engine.LoadSet{
			UDLs: []engine.UDL{{ID: "udl-1", Start: 0, Finish: row.Span, Dead: row.UDLDead, Live: row.UDLLive}},
		},
	}
	in, err := job.Input()
	if err != nil {
		return Outcome{}, err
	}

	res := engine.Analyze(in)
	cap := capacity.Compute(*in.Section)
	return Outcome{
		Row:      row,
		Result:   res,
		Capacity: cap,
		Report:   check.Evaluate(res, cap, in.Span, limits),
	}, nil
}

func writeResults(outcomes []Outcome, path string) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	header := []any{
		"name", "section", "span_m",
		"max_moment_knm", "moment_case", "phi_m_knm",
		"max_shear_kn", "shear_case", "phi_v_kn",
		"defl_initial_mm", "defl_short_mm", "defl_long_mm",
		"verdict",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, o := range outcomes {
		verdict := "PASS"
		if !o.Report.Pass {
			verdict = "FAIL"
		}
		row := []any{
			o.Row.Name, o.Row.Section, o.Row.Span,
			o.Result.MaxMoment, o.Result.MomentCase, o.Capacity.PhiM,
			o.Result.MaxShear, o.Result.ShearCase, o.Capacity.PhiV,
			o.Result.InitialDeflection, o.Result.ShortTermDeflection, o.Result.LongTermDeflection,
			verdict,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func toFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
