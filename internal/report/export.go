package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"grantflow/internal/models"
)

const queueSheet = "Priority Queue"

var queueHeaders = []string{
	"Priority Rank",
	"Organization",
	"Project Title",
	"Category",
	"Requested Amount",
	"Risk Score",
	"Eligibility Score",
	"Completeness Score",
	"Status",
	"Submitted Date",
}

func queueRow(rank int, a models.Application) []string {
	return []string{
		strconv.Itoa(rank),
		a.Organization,
		a.ProjectTitle,
		a.Category,
		strconv.FormatFloat(a.RequestedAmount, 'f', -1, 64),
		percent(a.RiskScore),
		percent(a.EligibilityScore),
		percent(a.CompletenessScore),
		a.Status,
		a.SubmittedDate,
	}
}

func percent(v float64) string {
	return strconv.FormatFloat(v*100, 'f', 1, 64)
}

// FileName is the download name for an export taken on the given date.
func FileName(q models.ExportQueue, ext string) string {
	date := q.ExportDate
	if len(date) >= 10 {
		date = date[:10]
	}
	return fmt.Sprintf("grant-queue-%s.%s", date, ext)
}

func WriteCSV(w io.Writer, q models.ExportQueue) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(queueHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, a := range q.PrioritizedQueue {
		if err := cw.Write(queueRow(i+1, a)); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX renders the queue as a workbook with a styled header row and a summary line.
func WriteXLSX(w io.Writer, q models.ExportQueue) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", queueSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, h := range queueHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("header cell %d: %w", i+1, err)
		}
		if err := f.SetCellValue(queueSheet, cell, h); err != nil {
			return fmt.Errorf("set header %s: %w", cell, err)
		}
	}
	if err := f.SetCellStyle(queueSheet, "A1", "J1", headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}
	for _, cw := range []struct {
		from, to string
		width    float64
	}{{"A", "A", 14}, {"B", "C", 36}, {"D", "J", 18}} {
		if err := f.SetColWidth(queueSheet, cw.from, cw.to, cw.width); err != nil {
			return fmt.Errorf("set width %s:%s: %w", cw.from, cw.to, err)
		}
	}

	for i, a := range q.PrioritizedQueue {
		row := i + 2
		values := []any{
			i + 1,
			a.Organization,
			a.ProjectTitle,
			a.Category,
			a.RequestedAmount,
			round1(a.RiskScore * 100),
			round1(a.EligibilityScore * 100),
			round1(a.CompletenessScore * 100),
			a.Status,
			a.SubmittedDate,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return fmt.Errorf("row %d col %d: %w", row, col+1, err)
			}
			if err := f.SetCellValue(queueSheet, cell, v); err != nil {
				return fmt.Errorf("set %s: %w", cell, err)
			}
		}
	}

	note := len(q.PrioritizedQueue) + 3
	summary := [][2]any{
		{"Exported", q.ExportDate},
		{"Total applications", q.TotalApplications},
		{"Notes", q.ProcessingNotes},
	}
	for i, kv := range summary {
		row := note + i
		if err := f.SetCellValue(queueSheet, fmt.Sprintf("A%d", row), kv[0]); err != nil {
			return fmt.Errorf("set summary label row %d: %w", row, err)
		}
		if err := f.SetCellValue(queueSheet, fmt.Sprintf("B%d", row), kv[1]); err != nil {
			return fmt.Errorf("set summary value row %d: %w", row, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func round1(v float64) float64 {
	s, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return s
}
