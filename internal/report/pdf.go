// Package report renders a design-check report to PDF.
package report

import (
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/structcalc/gobeam/internal/capacity"
	"github.com/structcalc/gobeam/internal/check"
	"github.com/structcalc/gobeam/internal/engine"
	"github.com/structcalc/gobeam/internal/version"
)

// Job summarises the inputs echoed at the top of the report.
type Job struct {
	Title   string
	Span    float64
	Section string
	Members int
	Ws, Wl  float64
	J2      float64
}

// Write renders the check report for one beam to a PDF file.
func Write(path string, job Job, res *engine.Result, cap capacity.Capacity, rep check.Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	title := job.Title
	if title == "" {
		title = "Beam Design Check"
	}
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 5, fmt.Sprintf("gobeam v%s  -  %s", version.Version, time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	// Input summary
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Inputs")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	inputs := [][2]string{
		{"Span", fmt.Sprintf("%.2f m", job.Span)},
		{"Section", fmt.Sprintf("%s  (x%d)", job.Section, max(job.Members, 1))},
		{"Service factors", fmt.Sprintf("ws = %.2f, wl = %.2f, j2 = %.2f", job.Ws, job.Wl, job.J2)},
	}
	for _, kv := range inputs {
		pdf.Cell(50, 6, kv[0])
		pdf.Cell(0, 6, kv[1])
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Governing actions
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Governing Actions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	if res != nil {
		pdf.Cell(0, 6, fmt.Sprintf("M* = %.2f kN-m  (%s)", res.MaxMoment, res.MomentCase))
		pdf.Ln(6)
		pdf.Cell(0, 6, fmt.Sprintf("V* = %.2f kN  (%s)", res.MaxShear, res.ShearCase))
		pdf.Ln(6)
		if res.SelfWeight > 0 {
			pdf.Cell(0, 6, fmt.Sprintf("Self-weight included: %.3f kN/m", res.SelfWeight))
			pdf.Ln(6)
		}
	} else {
		pdf.Cell(0, 6, "No analysis result (no section selected)")
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Check table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Design Checks")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(55, 7, "Check", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 7, "Actual", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 7, "Allowable", "1", 0, "R", true, 0, "")
	pdf.CellFormat(25, 7, "Util.", "1", 0, "R", true, 0, "")
	pdf.CellFormat(20, 7, "Status", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, it := range rep.Items {
		status := "-"
		util := "-"
		if it.Checked {
			status = "PASS"
			if !it.Pass {
				status = "FAIL"
			}
			if it.Utilization > 0 {
				util = fmt.Sprintf("%.2f", it.Utilization)
			}
		}
		pdf.CellFormat(55, 7, it.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f %s", it.Actual, it.Unit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f %s", it.Allowable, it.Unit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 7, util, "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, status, "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	// Capacity notes
	if len(cap.Notes) > 0 {
		pdf.SetFont("Helvetica", "I", 9)
		for _, note := range cap.Notes {
			pdf.MultiCell(0, 5, "Note: "+note, "", "L", false)
		}
		pdf.Ln(4)
	}

	verdict := "PASS"
	if !rep.Pass {
		verdict = "FAIL"
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 10, fmt.Sprintf("Overall: %s", verdict))

	return pdf.OutputFileAndClose(path)
}
