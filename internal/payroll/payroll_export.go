package payroll

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Payroll"

var exportHeaders = []string{
	"Staff Member",
	"Email",
	"Reports To",
	"Auto Seconds",
	"Manual Seconds",
	"Total Seconds",
	"Total Decimal Hours",
	"Pending",
	"Status",
}

// BuildWorkbook renders the report as a single-sheet xlsx. Row 1 is the
// period title, row 2 the header, data starts on row 3.
func BuildWorkbook(report ReportResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
	f.SetColWidth(SheetName, "A", "C", 24)
	f.SetColWidth(SheetName, "D", lastCol, 16)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	f.SetCellValue(SheetName, "A1", fmt.Sprintf("Payroll %s to %s", report.Start, report.End))
	f.MergeCell(SheetName, "A1", lastCol+"1")
	f.SetCellStyle(SheetName, "A1", "A1", headerStyle)

	for i, h := range exportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetCellValue(SheetName, cell(col, 2), h)
	}
	f.SetCellStyle(SheetName, "A2", lastCol+"2", headerStyle)

	for i, r := range report.Rows {
		row := i + 3
		manager := "None"
		if r.ManagerName != nil {
			manager = *r.ManagerName
		}
		values := []any{
			r.Name,
			r.Email,
			manager,
			r.AutoSeconds,
			r.ManualSeconds,
			r.TotalSeconds,
			r.TotalHours,
			r.PendingCount,
			r.Status,
		}
		for j, v := range values {
			col, _ := excelize.ColumnNumberToName(j + 1)
			f.SetCellValue(SheetName, cell(col, row), v)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
