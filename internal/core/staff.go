package core

import (
	"context"
	"strings"

	"carehome/pkg/domain"
)

// AddStaff inserts or replaces the directory entry keyed by staff.Username.
// An existing entry with the same username is overwritten. Shifts carried
// on the record are validated the same way AddShiftForNurse validates them.
func (r *Registry) AddStaff(ctx context.Context, actor domain.Actor, staff domain.Staff) error {
	return r.run(ctx, OpAddStaff, actor, managerOnly, func(tx *txn) error {
		if strings.TrimSpace(staff.Username) == "" {
			return &domain.InvalidArgumentError{Field: "username", Reason: "required"}
		}
		if !staff.Role.Valid() {
			return &domain.InvalidArgumentError{Field: "role", Reason: "unknown role " + string(staff.Role)}
		}
		for _, sh := range staff.Shifts {
			if _, err := domain.NewShift(sh.Day, sh.Start, sh.End); err != nil {
				return err
			}
		}
		tx.state.staff[staff.Username] = domain.CloneStaff(staff)
		tx.record("added staff: %s [%s]", staff.Name, staff.Username)
		return nil
	})
}

// ChangeStaffPassword overwrites the stored credential of username.
func (r *Registry) ChangeStaffPassword(ctx context.Context, actor domain.Actor, username, newPassword string) error {
	return r.run(ctx, OpChangeStaffPassword, actor, managerOnly, func(tx *txn) error {
		s, ok := tx.state.staff[username]
		if !ok {
			return &domain.NotFoundError{Entity: domain.EntityStaff, ID: username}
		}
		s.Password = newPassword
		tx.state.staff[username] = s
		tx.record("changed password for %s", username)
		return nil
	})
}

// AddShiftForNurse appends shift to the schedule of the nurse named by username.
func (r *Registry) AddShiftForNurse(ctx context.Context, actor domain.Actor, username string, shift domain.Shift) error {
	return r.run(ctx, OpAddShiftForNurse, actor, managerOnly, func(tx *txn) error {
		s, ok := tx.state.staff[username]
		if !ok {
			return &domain.NotFoundError{Entity: domain.EntityStaff, ID: username}
		}
		if s.Role != domain.RoleNurse {
			return &domain.TypeMismatchError{Username: username, Want: domain.RoleNurse, Got: s.Role}
		}
		if _, err := domain.NewShift(shift.Day, shift.Start, shift.End); err != nil {
			return err
		}
		s.Shifts = append(s.Shifts, shift)
		tx.state.staff[username] = s
		tx.record("assigned shift to %s: %s", username, shift)
		return nil
	})
}
