package core

import (
	"context"
	"testing"
	"time"

	"carehome/pkg/domain"
)

var fixedNow = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

var (
	manager = domain.Actor{ID: "M1", Name: "Manager", Username: "mgr", Role: domain.RoleManager}
	doctor  = domain.Actor{ID: "D1", Name: "Dev", Username: "dev", Role: domain.RoleDoctor}
	nurse   = domain.Actor{ID: "N1", Name: "Nina", Username: "nina", Role: domain.RoleNurse}
)

func newTestRegistry(t *testing.T, opts ...Option) *Registry {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return New(opts...)
}

func seedStaff(t *testing.T, r *Registry) {
	t.Helper()
	ctx := context.Background()
	for _, s := range []domain.Staff{
		{ID: "M1", Name: "Manager", Gender: domain.GenderMale, Username: "mgr", Password: "secret", Role: domain.RoleManager},
		{ID: "D1", Name: "Dev", Gender: domain.GenderMale, Username: "dev", Password: "pw", Role: domain.RoleDoctor, Specialization: "General"},
		{ID: "N1", Name: "Nina", Gender: domain.GenderFemale, Username: "nina", Password: "pw", Role: domain.RoleNurse},
	} {
		if err := r.AddStaff(ctx, manager, s); err != nil {
			t.Fatalf("seed staff %s: %v", s.Username, err)
		}
	}
}

func admit(t *testing.T, r *Registry, id, bed string) {
	t.Helper()
	res := domain.Resident{ID: id, Name: "Resident " + id, Gender: domain.GenderFemale, Age: 80}
	if err := r.AddResident(context.Background(), manager, res, bed); err != nil {
		t.Fatalf("admit %s into %s: %v", id, bed, err)
	}
}

func shift(t *testing.T, day domain.Weekday, sh, sm, eh, em int) domain.Shift {
	t.Helper()
	s, err := domain.NewShift(day, domain.Clock(sh, sm), domain.Clock(eh, em))
	if err != nil {
		t.Fatalf("NewShift: %v", err)
	}
	return s
}

// assertOccupancySymmetric checks both directions of the bed/resident link.
func assertOccupancySymmetric(t *testing.T, r *Registry) {
	t.Helper()
	residents := map[string]domain.Resident{}
	for _, res := range r.Residents() {
		residents[res.ID] = res
	}
	linked := 0
	for _, b := range r.Beds() {
		if b.OccupantID == nil {
			continue
		}
		linked++
		res, ok := residents[*b.OccupantID]
		if !ok {
			t.Fatalf("bed %s occupied by unknown resident %s", b.ID, *b.OccupantID)
		}
		if res.BedID == nil || *res.BedID != b.ID {
			t.Fatalf("bed %s points at %s but resident points at %v", b.ID, res.ID, res.BedID)
		}
	}
	if linked != len(residents) {
		t.Fatalf("%d occupied beds for %d residents", linked, len(residents))
	}
}

type recordingSink struct {
	records []domain.ArchiveRecord
	err     error
}

func (s *recordingSink) WriteArchive(_ context.Context, rec domain.ArchiveRecord) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, rec)
	return nil
}
