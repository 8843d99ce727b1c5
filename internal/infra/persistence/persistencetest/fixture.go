// Package persistencetest holds fixtures shared by the snapshot store tests.
package persistencetest

import (
	"context"
	"testing"
	"time"

	"carehome/pkg/domain"

	"github.com/stretchr/testify/require"
)

// Fixture returns a valid snapshot with one resident in W1-R2-B1, a full
// staff directory, clinical history and audit entries.
func Fixture() domain.Snapshot {
	at := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	bedID := domain.BedID(1, 2, 1)
	residentID := "R1"

	snap := domain.Snapshot{
		Version: domain.SnapshotVersion,
		Residents: map[string]domain.Resident{
			residentID: {
				ID: residentID, Name: "Alice Moreau", Gender: domain.GenderFemale, Age: 84,
				BedID: &bedID,
				Prescriptions: []domain.Prescription{
					{Medicine: "Paracetamol", Dosage: "500mg", Time: domain.Clock(8, 0), DoctorID: "D1"},
				},
				Administrations: []domain.AdministrationRecord{
					{Medicine: "Paracetamol", Dosage: "500mg", AdministeredAt: at, NurseID: "N1"},
				},
			},
		},
		Staff: map[string]domain.Staff{
			"mgr": {ID: "M1", Name: "Manager", Gender: domain.GenderMale, Username: "mgr", Password: "secret", Role: domain.RoleManager},
			"dev": {ID: "D1", Name: "Dev", Gender: domain.GenderMale, Username: "dev", Password: "pw", Role: domain.RoleDoctor, Specialization: "General"},
			"nina": {
				ID: "N1", Name: "Nina", Gender: domain.GenderFemale, Username: "nina", Password: "pw", Role: domain.RoleNurse,
				Shifts: []domain.Shift{{Day: domain.Monday, Start: domain.Clock(8, 0), End: domain.Clock(16, 0)}},
			},
		},
		Audit: []domain.AuditEntry{
			{Timestamp: at, ActorID: "M1", ActorName: "Manager", Action: "add_resident", Message: "added resident Alice Moreau to " + bedID},
		},
	}
	for _, id := range domain.DefaultTopology().BedIDs() {
		b := domain.Bed{ID: id}
		if id == bedID {
			occupant := residentID
			b.OccupantID = &occupant
		}
		snap.Beds = append(snap.Beds, b)
	}
	return snap
}

// RoundTrip saves Fixture to store, loads it back and requires deep equality.
func RoundTrip(t *testing.T, store domain.SnapshotStore) {
	t.Helper()
	ctx := context.Background()
	want := Fixture()
	require.NoError(t, store.SaveSnapshot(ctx, want))
	got, err := store.LoadSnapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, want.Clone(), got.Clone())
}
