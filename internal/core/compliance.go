package core

import (
	"context"
	"sort"

	"carehome/pkg/domain"

	"go.uber.org/zap"
)

// NewDefaultComplianceEngine returns an engine holding the built-in rules.
func NewDefaultComplianceEngine() *domain.RulesEngine {
	engine := domain.NewRulesEngine()
	engine.Register(NewNurseHoursRule())
	return engine
}

// CheckCompliance evaluates the compliance rules and returns the first
// blocking violation's error, or nil when the schedule is compliant.
func (r *Registry) CheckCompliance(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	view := r.ruleView()
	res, err := r.engine.EvaluateUntilBlocked(ctx, view)
	if err != nil {
		return err
	}
	v, ok := res.FirstBlocking()
	if !ok {
		return nil
	}
	r.logger.Info("compliance violation", zap.String("rule", v.Rule), zap.String("entity_id", v.EntityID))
	if v.Err != nil {
		return v.Err
	}
	return &domain.ShiftViolationError{Rule: v.Rule, Reason: v.Message}
}

// ComplianceReport evaluates every rule and returns all violations.
func (r *Registry) ComplianceReport(ctx context.Context) (domain.Result, error) {
	if err := ctx.Err(); err != nil {
		return domain.Result{}, err
	}
	return r.engine.Evaluate(ctx, r.ruleView())
}

func (r *Registry) ruleView() ruleView {
	r.mu.Lock()
	defer r.mu.Unlock()
	return ruleView{state: r.state.clone()}
}

type ruleView struct {
	state registryState
}

func (v ruleView) ListBeds() []domain.Bed {
	out := make([]domain.Bed, 0, len(v.state.bedOrder))
	for _, id := range v.state.bedOrder {
		out = append(out, domain.CloneBed(v.state.beds[id]))
	}
	return out
}

func (v ruleView) ListResidents() []domain.Resident {
	out := make([]domain.Resident, 0, len(v.state.residents))
	for _, res := range v.state.residents {
		out = append(out, domain.CloneResident(res))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (v ruleView) ListStaff() []domain.Staff {
	out := make([]domain.Staff, 0, len(v.state.staff))
	for _, s := range v.state.staff {
		out = append(out, domain.CloneStaff(s))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}
