package core

import (
	"context"
	"fmt"
	"sort"
	"time"

	"carehome/pkg/domain"
)

// MaxNurseDailyHours is the scheduled time a nurse may work on one weekday.
const MaxNurseDailyHours = 8 * time.Hour

// NewNurseHoursRule returns the rule enforcing MaxNurseDailyHours per weekday.
func NewNurseHoursRule() domain.Rule {
	return nurseHoursRule{limit: MaxNurseDailyHours}
}

type nurseHoursRule struct {
	limit time.Duration
}

func (nurseHoursRule) Name() string { return "nurse_daily_hours" }

func (r nurseHoursRule) Evaluate(ctx context.Context, view domain.RuleView) (domain.Result, error) {
	staff := view.ListStaff()
	sort.Slice(staff, func(i, j int) bool { return staff[i].Username < staff[j].Username })

	res := domain.Result{}
	for _, s := range staff {
		if err := ctx.Err(); err != nil {
			return domain.Result{}, err
		}
		if s.Role != domain.RoleNurse {
			continue
		}
		totals := make(map[domain.Weekday]time.Duration, 7)
		for _, shift := range s.Shifts {
			totals[shift.Day] += shift.Duration()
		}
		for _, day := range domain.Weekdays() {
			total := totals[day]
			if total <= r.limit {
				continue
			}
			err := &domain.ShiftViolationError{
				Rule:      r.Name(),
				StaffID:   s.ID,
				StaffName: s.Name,
				Username:  s.Username,
				Day:       day,
				Total:     total,
				Limit:     r.limit,
			}
			res.Violations = append(res.Violations, domain.Violation{
				Rule:     r.Name(),
				Severity: domain.SeverityBlock,
				Message:  fmt.Sprintf("nurse %s scheduled %s on %s", s.Username, total, day),
				Entity:   domain.EntityStaff,
				EntityID: s.Username,
				Err:      err,
			})
		}
	}
	return res, nil
}
