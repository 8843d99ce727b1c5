package core

import (
	"context"

	"carehome/pkg/domain"
)

// NewDoctorPresenceRule returns a rule that blocks when the directory holds no doctor.
func NewDoctorPresenceRule() domain.Rule {
	return doctorPresenceRule{}
}

type doctorPresenceRule struct{}

func (doctorPresenceRule) Name() string { return "doctor_presence" }

func (doctorPresenceRule) Evaluate(_ context.Context, view domain.RuleView) (domain.Result, error) {
	for _, s := range view.ListStaff() {
		if s.Role == domain.RoleDoctor {
			return domain.Result{}, nil
		}
	}
	reason := "no doctor on staff"
	return domain.Result{Violations: []domain.Violation{{
		Rule:     "doctor_presence",
		Severity: domain.SeverityBlock,
		Message:  reason,
		Entity:   domain.EntityStaff,
		Err:      &domain.ShiftViolationError{Rule: "doctor_presence", Reason: reason},
	}}}, nil
}
