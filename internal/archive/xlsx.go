package archive

import (
	"fmt"
	"io"
	"time"

	"carehome/pkg/domain"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the workbook layout.
const (
	SheetResident      = "Resident"
	SheetPrescriptions = "Prescriptions"
	SheetAdministered  = "Administered"
)

// XLSXEncoder writes a workbook with one sheet per archive section.
type XLSXEncoder struct{}

func (XLSXEncoder) Extension() string { return "xlsx" }
func (XLSXEncoder) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

func (XLSXEncoder) Encode(w io.Writer, rec domain.ArchiveRecord) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	res := rec.Resident
	sheets := []struct {
		name    string
		headers []string
		rows    [][]any
	}{
		{
			name:    SheetResident,
			headers: []string{"ID", "Name", "Gender", "Age", "Discharged At", "Discharged By"},
			rows:    [][]any{{res.ID, res.Name, string(res.Gender), res.Age, formatTime(rec.DischargedAt), rec.DischargedBy}},
		},
		{
			name:    SheetPrescriptions,
			headers: []string{"Medicine", "Dosage", "Time", "Doctor ID"},
		},
		{
			name:    SheetAdministered,
			headers: []string{"Administered At", "Medicine", "Dosage", "Nurse ID"},
		},
	}
	for _, p := range rec.Prescriptions {
		sheets[1].rows = append(sheets[1].rows, []any{p.Medicine, p.Dosage, p.Time.String(), p.DoctorID})
	}
	for _, a := range rec.Administrations {
		sheets[2].rows = append(sheets[2].rows, []any{formatTime(a.AdministeredAt), a.Medicine, a.Dosage, a.NurseID})
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(sheet.name); err != nil {
			return fmt.Errorf("create sheet %s: %w", sheet.name, err)
		}
		header := make([]any, len(sheet.headers))
		for j, h := range sheet.headers {
			header[j] = h
		}
		if err := f.SetSheetRow(sheet.name, "A1", &header); err != nil {
			return fmt.Errorf("write %s header: %w", sheet.name, err)
		}
		last, err := excelize.CoordinatesToCellName(len(sheet.headers), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet.name, "A1", last, headerStyle); err != nil {
			return fmt.Errorf("style %s header: %w", sheet.name, err)
		}
		for r, row := range sheet.rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return err
			}
			row := row
			if err := f.SetSheetRow(sheet.name, cell, &row); err != nil {
				return fmt.Errorf("write %s row %d: %w", sheet.name, r+2, err)
			}
		}
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write xlsx archive: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
