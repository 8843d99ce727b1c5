package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"carehome/pkg/domain"
)

// AddResident admits resident into bedID and links both sides of the
// occupancy. Reusing an active resident id is rejected.
func (r *Registry) AddResident(ctx context.Context, actor domain.Actor, resident domain.Resident, bedID string) error {
	return r.run(ctx, OpAddResident, actor, managerOnly, func(tx *txn) error {
		if strings.TrimSpace(resident.ID) == "" {
			return &domain.InvalidArgumentError{Field: "resident id", Reason: "required"}
		}
		bed, ok := tx.state.beds[bedID]
		if !ok {
			return &domain.NotFoundError{Entity: domain.EntityBed, ID: bedID}
		}
		if bed.Occupied() {
			return &domain.OccupiedError{BedID: bedID, OccupantID: *bed.OccupantID}
		}
		if _, exists := tx.state.residents[resident.ID]; exists {
			return &domain.DuplicateIDError{Entity: domain.EntityResident, ID: resident.ID}
		}

		admitted := domain.CloneResident(resident)
		admitted.BedID = &bedID
		tx.state.residents[admitted.ID] = admitted
		tx.link(bedID, admitted.ID)
		tx.record("added resident %s to %s", admitted.Name, bedID)
		return nil
	})
}

// MoveResident relocates a resident to toBedID. Only the destination is
// checked for occupancy, so moving into the current bed fails as occupied.
func (r *Registry) MoveResident(ctx context.Context, actor domain.Actor, residentID, toBedID string) error {
	return r.run(ctx, OpMoveResident, actor, nurseOnly, func(tx *txn) error {
		res, ok := tx.state.residents[residentID]
		if !ok {
			return &domain.NotFoundError{Entity: domain.EntityResident, ID: residentID}
		}
		to, ok := tx.state.beds[toBedID]
		if !ok {
			return &domain.NotFoundError{Entity: domain.EntityBed, ID: toBedID}
		}
		if to.Occupied() {
			return &domain.OccupiedError{BedID: toBedID, OccupantID: *to.OccupantID}
		}

		if res.BedID != nil {
			tx.vacate(*res.BedID)
		}
		res.BedID = &toBedID
		tx.state.residents[residentID] = res
		tx.link(toBedID, residentID)
		tx.record("moved resident %s to %s", res.Name, toBedID)
		return nil
	})
}

// DischargeResident archives the resident's history to sink, frees the bed
// and removes the resident from the active set. A sink failure aborts the
// discharge without changing state.
func (r *Registry) DischargeResident(ctx context.Context, actor domain.Actor, residentID string, sink domain.ArchiveSink) error {
	return r.run(ctx, OpDischargeResident, actor, managerOnly, func(tx *txn) error {
		res, ok := tx.state.residents[residentID]
		if !ok {
			return &domain.NotFoundError{Entity: domain.EntityResident, ID: residentID}
		}
		if sink == nil {
			return &domain.InvalidArgumentError{Field: "archive sink", Reason: "required"}
		}

		record := archiveRecord(res, tx.now, actor)
		if err := sink.WriteArchive(ctx, record); err != nil {
			return fmt.Errorf("archive resident %s: %w", residentID, err)
		}

		if res.BedID != nil {
			tx.vacate(*res.BedID)
		}
		delete(tx.state.residents, residentID)
		tx.record("discharged %s (%s)", res.Name, residentID)
		return nil
	})
}

func archiveRecord(res domain.Resident, at time.Time, actor domain.Actor) domain.ArchiveRecord {
	return domain.ArchiveRecord{
		Resident:        domain.Resident{ID: res.ID, Name: res.Name, Gender: res.Gender, Age: res.Age},
		Prescriptions:   append([]domain.Prescription(nil), res.Prescriptions...),
		Administrations: append([]domain.AdministrationRecord(nil), res.Administrations...),
		DischargedAt:    at,
		DischargedBy:    actor.ID,
	}
}

func (tx *txn) link(bedID, residentID string) {
	bed := tx.state.beds[bedID]
	id := residentID
	bed.OccupantID = &id
	tx.state.beds[bedID] = bed
}

func (tx *txn) vacate(bedID string) {
	bed, ok := tx.state.beds[bedID]
	if !ok {
		return
	}
	bed.OccupantID = nil
	tx.state.beds[bedID] = bed
}
