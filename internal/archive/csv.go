package archive

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"carehome/pkg/domain"
)

// Section markers of the CSV layout.
const (
	csvResident      = "Resident"
	csvPrescriptions = "Prescriptions"
	csvAdministered  = "Administered"
)

// CSVEncoder writes the sectioned layout:
//
//	Resident,<id>,<name>,<gender>,<age>
//	Prescriptions
//	<medicine>,<dosage>,<HH:MM>,<doctor id>
//	Administered
//	<timestamp>,<medicine>,<dosage>,<nurse id>
type CSVEncoder struct{}

func (CSVEncoder) Extension() string   { return "csv" }
func (CSVEncoder) ContentType() string { return "text/csv" }

func (CSVEncoder) Encode(w io.Writer, rec domain.ArchiveRecord) error {
	cw := csv.NewWriter(w)
	res := rec.Resident
	rows := [][]string{
		{csvResident, res.ID, res.Name, string(res.Gender), strconv.Itoa(res.Age)},
		{csvPrescriptions},
	}
	for _, p := range rec.Prescriptions {
		rows = append(rows, []string{p.Medicine, p.Dosage, p.Time.String(), p.DoctorID})
	}
	rows = append(rows, []string{csvAdministered})
	for _, a := range rec.Administrations {
		rows = append(rows, []string{a.AdministeredAt.UTC().Format(time.RFC3339), a.Medicine, a.Dosage, a.NurseID})
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write csv archive: %w", err)
	}
	return nil
}

// DecodeCSV parses the layout written by CSVEncoder. DischargedAt and
// DischargedBy are not part of the layout and stay zero.
func DecodeCSV(r io.Reader) (domain.ArchiveRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return domain.ArchiveRecord{}, fmt.Errorf("read csv archive: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) != 5 || rows[0][0] != csvResident {
		return domain.ArchiveRecord{}, &domain.InvalidArgumentError{Field: "archive", Reason: "missing resident line"}
	}
	age, err := domain.ParseAge(rows[0][4])
	if err != nil {
		return domain.ArchiveRecord{}, err
	}
	rec := domain.ArchiveRecord{Resident: domain.Resident{
		ID: rows[0][1], Name: rows[0][2], Gender: domain.Gender(rows[0][3]), Age: age,
	}}

	section := ""
	for i, row := range rows[1:] {
		line := i + 2
		if len(row) == 1 && (row[0] == csvPrescriptions || row[0] == csvAdministered) {
			section = row[0]
			continue
		}
		if len(row) != 4 {
			return domain.ArchiveRecord{}, &domain.InvalidArgumentError{Field: "archive", Reason: fmt.Sprintf("line %d: expected 4 fields, got %d", line, len(row))}
		}
		switch section {
		case csvPrescriptions:
			at, err := domain.ParseTimeOfDay(row[2])
			if err != nil {
				return domain.ArchiveRecord{}, err
			}
			rec.Prescriptions = append(rec.Prescriptions, domain.Prescription{Medicine: row[0], Dosage: row[1], Time: at, DoctorID: row[3]})
		case csvAdministered:
			at, err := domain.ParseTimestamp(row[0])
			if err != nil {
				return domain.ArchiveRecord{}, err
			}
			rec.Administrations = append(rec.Administrations, domain.AdministrationRecord{AdministeredAt: at, Medicine: row[1], Dosage: row[2], NurseID: row[3]})
		default:
			return domain.ArchiveRecord{}, &domain.InvalidArgumentError{Field: "archive", Reason: fmt.Sprintf("line %d: row outside a section", line)}
		}
	}
	return rec, nil
}
