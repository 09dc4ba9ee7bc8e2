package pdfexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	"personnel-backend/lib/analytics"
	"personnel-backend/lib/utils/dateutils"
)

// GenerateTodayRoster renders the daily on-leave roster as a one-page table.
func GenerateTodayRoster(rows []analytics.RosterRow, today time.Time) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateTodayRoster panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("On leave %s", today.Format(dateutils.DayFormat)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	colWidths := []float64{60, 40, 30, 30, 20}
	headers := []string{"Employee", "Position", "Start", "End", "Days"}
	for idx, header := range headers {
		pdf.CellFormat(colWidths[idx], 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	if len(rows) == 0 {
		pdf.CellFormat(180, 8, "no one is on leave today", "1", 1, "C", false, 0, "")
	}
	for _, row := range rows {
		cells := []string{
			row.Employee.FullName(),
			row.Employee.Position,
			row.Leave.StartDate.Format(dateutils.DayFormat),
			row.Leave.EndDate.Format(dateutils.DayFormat),
			fmt.Sprintf("%d", row.DurationDays),
		}
		for idx, value := range cells {
			pdf.CellFormat(colWidths[idx], 8, value, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, errors.Wrap(err, "pdf output failed")
	}
	return buf.Bytes(), nil
}
