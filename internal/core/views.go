package core

import "carehome/pkg/domain"

// Beds returns every bed in topology order.
func (r *Registry) Beds() []domain.Bed {
	return r.ruleView().ListBeds()
}

// Bed returns the bed with the given id.
func (r *Registry) Bed(id string) (domain.Bed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.state.beds[id]
	if !ok {
		return domain.Bed{}, &domain.NotFoundError{Entity: domain.EntityBed, ID: id}
	}
	return domain.CloneBed(b), nil
}

// Residents returns the active residents ordered by id.
func (r *Registry) Residents() []domain.Resident {
	return r.ruleView().ListResidents()
}

// Resident returns the active resident with the given id.
func (r *Registry) Resident(id string) (domain.Resident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.state.residents[id]
	if !ok {
		return domain.Resident{}, &domain.NotFoundError{Entity: domain.EntityResident, ID: id}
	}
	return domain.CloneResident(res), nil
}

// StaffDirectory returns all staff ordered by username.
func (r *Registry) StaffDirectory() []domain.Staff {
	return r.ruleView().ListStaff()
}

// Staff returns the directory entry for username.
func (r *Registry) Staff(username string) (domain.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.state.staff[username]
	if !ok {
		return domain.Staff{}, &domain.NotFoundError{Entity: domain.EntityStaff, ID: username}
	}
	return domain.CloneStaff(s), nil
}

// AuditLog returns a copy of the audit trail in insertion order.
func (r *Registry) AuditLog() []domain.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.AuditEntry(nil), r.state.audit...)
}
