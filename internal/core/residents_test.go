package core

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"carehome/pkg/domain"
)

func TestAddResidentLinksBed(t *testing.T) {
	r := newTestRegistry(t)
	admit(t, r, "R1", "W1-R2-B1")

	bed, err := r.Bed("W1-R2-B1")
	if err != nil {
		t.Fatalf("Bed: %v", err)
	}
	if bed.OccupantID == nil || *bed.OccupantID != "R1" {
		t.Fatalf("expected R1 in W1-R2-B1, got %v", bed.OccupantID)
	}
	res, err := r.Resident("R1")
	if err != nil {
		t.Fatalf("Resident: %v", err)
	}
	if res.BedID == nil || *res.BedID != "W1-R2-B1" {
		t.Fatalf("expected resident bed W1-R2-B1, got %v", res.BedID)
	}
	log := r.AuditLog()
	if len(log) != 1 || log[0].Action != OpAddResident || log[0].ActorID != "M1" || !log[0].Timestamp.Equal(fixedNow) {
		t.Fatalf("unexpected audit %+v", log)
	}
}

func TestAddResidentIntoOccupiedBed(t *testing.T) {
	r := newTestRegistry(t)
	admit(t, r, "R1", "W1-R2-B1")
	before := r.Snapshot()

	err := r.AddResident(context.Background(), manager, domain.Resident{ID: "R2", Name: "Second"}, "W1-R2-B1")
	var occ *domain.OccupiedError
	if !errors.As(err, &occ) {
		t.Fatalf("expected OccupiedError, got %v", err)
	}
	if occ.BedID != "W1-R2-B1" || occ.OccupantID != "R1" {
		t.Fatalf("unexpected error detail %+v", occ)
	}
	if !reflect.DeepEqual(before, r.Snapshot()) {
		t.Fatalf("state changed after rejected admission")
	}
}

func TestAddResidentUnknownBedAndDuplicateID(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t)
	if err := r.AddResident(ctx, manager, domain.Resident{ID: "R1"}, "W9-R1-B1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	admit(t, r, "R1", "W1-R1-B1")
	err := r.AddResident(ctx, manager, domain.Resident{ID: "R1", Name: "Imposter"}, "W1-R2-B2")
	var dup *domain.DuplicateIDError
	if !errors.As(err, &dup) || dup.ID != "R1" {
		t.Fatalf("expected DuplicateIDError, got %v", err)
	}
	if b, _ := r.Bed("W1-R2-B2"); b.Occupied() {
		t.Fatalf("duplicate admission must not occupy the bed")
	}
}

func TestMoveResident(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t)
	admit(t, r, "R1", "W1-R1-B1")

	if err := r.MoveResident(ctx, nurse, "R1", "W2-R6-B4"); err != nil {
		t.Fatalf("MoveResident: %v", err)
	}
	if b, _ := r.Bed("W1-R1-B1"); b.Occupied() {
		t.Fatalf("source bed still occupied")
	}
	if b, _ := r.Bed("W2-R6-B4"); b.OccupantID == nil || *b.OccupantID != "R1" {
		t.Fatalf("destination not linked: %+v", b)
	}
	assertOccupancySymmetric(t, r)
}

func TestMoveResidentRejections(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t)
	admit(t, r, "R1", "W1-R1-B1")
	admit(t, r, "R2", "W1-R2-B1")
	before := r.Snapshot()

	if err := r.MoveResident(ctx, nurse, "R1", "W1-R2-B1"); !errors.Is(err, domain.ErrOccupied) {
		t.Fatalf("expected ErrOccupied, got %v", err)
	}
	if err := r.MoveResident(ctx, nurse, "R1", "W1-R1-B1"); !errors.Is(err, domain.ErrOccupied) {
		t.Fatalf("expected moving into own bed to be ErrOccupied, got %v", err)
	}
	if err := r.MoveResident(ctx, nurse, "R9", "W1-R3-B1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for resident, got %v", err)
	}
	if err := r.MoveResident(ctx, nurse, "R1", "nowhere"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for bed, got %v", err)
	}
	if !reflect.DeepEqual(before, r.Snapshot()) {
		t.Fatalf("state changed after rejected moves")
	}
}

func TestDischargeFreesBedForReuse(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t)
	seedStaff(t, r)
	admit(t, r, "R1", "W1-R2-B1")
	if err := r.AddPrescription(ctx, doctor, "R1", domain.Prescription{Medicine: "Paracetamol", Dosage: "500mg", Time: domain.Clock(8, 0)}); err != nil {
		t.Fatalf("AddPrescription: %v", err)
	}
	if err := r.AdministerMedication(ctx, nurse, "R1", "Paracetamol", "500mg", fixedNow); err != nil {
		t.Fatalf("AdministerMedication: %v", err)
	}

	sink := &recordingSink{}
	if err := r.DischargeResident(ctx, manager, "R1", sink); err != nil {
		t.Fatalf("DischargeResident: %v", err)
	}
	if _, err := r.Resident("R1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("resident still active: %v", err)
	}
	if b, _ := r.Bed("W1-R2-B1"); b.Occupied() {
		t.Fatalf("bed not freed")
	}
	if len(sink.records) != 1 {
		t.Fatalf("expected one archive record, got %d", len(sink.records))
	}
	rec := sink.records[0]
	if rec.Resident.ID != "R1" || rec.Resident.BedID != nil || len(rec.Prescriptions) != 1 || len(rec.Administrations) != 1 {
		t.Fatalf("unexpected archive %+v", rec)
	}
	if rec.DischargedBy != "M1" || !rec.DischargedAt.Equal(fixedNow) {
		t.Fatalf("unexpected discharge stamp %+v", rec)
	}

	admit(t, r, "R2", "W1-R2-B1")
	assertOccupancySymmetric(t, r)
}

func TestDischargeSinkFailureLeavesStateUnchanged(t *testing.T) {
	r := newTestRegistry(t)
	admit(t, r, "R1", "W1-R2-B1")
	before := r.Snapshot()

	boom := errors.New("disk full")
	err := r.DischargeResident(context.Background(), manager, "R1", &recordingSink{err: boom})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped sink error, got %v", err)
	}
	if !reflect.DeepEqual(before, r.Snapshot()) {
		t.Fatalf("state changed after failed discharge")
	}
}

func TestDischargeUnknownResident(t *testing.T) {
	r := newTestRegistry(t)
	sink := &recordingSink{}
	if err := r.DischargeResident(context.Background(), manager, "R404", sink); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(sink.records) != 0 {
		t.Fatalf("sink must not be written for unknown resident")
	}
}
