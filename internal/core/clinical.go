package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"carehome/pkg/domain"
)

// AddPrescription attaches a prescription to a resident. An unknown resident
// leaves the registry untouched and returns nil. DoctorID defaults to the
// prescribing actor.
func (r *Registry) AddPrescription(ctx context.Context, actor domain.Actor, residentID string, prescription domain.Prescription) error {
	return r.run(ctx, OpAddPrescription, actor, doctorOnly, func(tx *txn) error {
		res, ok := tx.state.residents[residentID]
		if !ok {
			return nil
		}
		if strings.TrimSpace(prescription.Medicine) == "" {
			return &domain.InvalidArgumentError{Field: "medicine", Reason: "required"}
		}
		if !prescription.Time.Valid() {
			return &domain.InvalidArgumentError{Field: "time", Reason: fmt.Sprintf("%d minutes is outside 00:00-24:00", int(prescription.Time))}
		}
		if prescription.DoctorID == "" {
			prescription.DoctorID = actor.ID
		}
		res.Prescriptions = append(res.Prescriptions, prescription)
		tx.state.residents[residentID] = res
		tx.record("added prescription for %s: %s", res.Name, prescription)
		return nil
	})
}

// AdministerMedication records that the acting nurse gave medicine to a
// resident at the given instant. The timestamp is stored in UTC.
func (r *Registry) AdministerMedication(ctx context.Context, actor domain.Actor, residentID, medicine, dosage string, at time.Time) error {
	return r.run(ctx, OpAdministerMedicine, actor, nurseOnly, func(tx *txn) error {
		res, ok := tx.state.residents[residentID]
		if !ok {
			return &domain.NotFoundError{Entity: domain.EntityResident, ID: residentID}
		}
		if strings.TrimSpace(medicine) == "" {
			return &domain.InvalidArgumentError{Field: "medicine", Reason: "required"}
		}
		if at.IsZero() {
			at = tx.now
		}
		rec := domain.AdministrationRecord{
			Medicine:       medicine,
			Dosage:         dosage,
			AdministeredAt: at.UTC().Round(0),
			NurseID:        actor.ID,
		}
		res.Administrations = append(res.Administrations, rec)
		tx.state.residents[residentID] = res
		tx.record("administered %s %s to %s", medicine, dosage, res.Name)
		return nil
	})
}
