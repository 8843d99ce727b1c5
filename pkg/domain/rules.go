package domain

import "context"

// Severity captures rule outcomes.
type Severity string

// Rule evaluation severities.
const (
	// SeverityBlock fails a compliance check.
	SeverityBlock Severity = "block"
	// SeverityWarn is reported but does not fail the check.
	SeverityWarn Severity = "warn"
)

// RuleView provides read-only access to registry state for rule evaluation.
type RuleView interface {
	ListBeds() []Bed
	ListResidents() []Resident
	ListStaff() []Staff
}

// Rule defines a compliance evaluation over a registry view.
type Rule interface {
	Name() string
	Evaluate(ctx context.Context, view RuleView) (Result, error)
}

// Violation reports a failed rule evaluation. Err carries the typed error
// surfaced to callers when the violation blocks.
type Violation struct {
	Rule     string
	Severity Severity
	Message  string
	Entity   EntityType
	EntityID string
	Err      error
}

// Result aggregates violations from the rules engine.
type Result struct {
	Violations []Violation
}

// Merge appends violations from another result.
func (r *Result) Merge(other Result) {
	if len(other.Violations) == 0 {
		return
	}
	r.Violations = append(r.Violations, other.Violations...)
}

// HasBlocking returns true if the result contains blocking violations.
func (r Result) HasBlocking() bool {
	_, ok := r.FirstBlocking()
	return ok
}

// FirstBlocking returns the earliest blocking violation in evaluation order.
func (r Result) FirstBlocking() (Violation, bool) {
	for _, v := range r.Violations {
		if v.Severity == SeverityBlock {
			return v, true
		}
	}
	return Violation{}, false
}

// RulesEngine orchestrates rule evaluation.
type RulesEngine struct {
	rules []Rule
}

// NewRulesEngine constructs an engine instance.
func NewRulesEngine() *RulesEngine {
	return &RulesEngine{}
}

// Register appends a rule to the engine.
func (e *RulesEngine) Register(rule Rule) {
	e.rules = append(e.rules, rule)
}

// Rules returns the registered rules in evaluation order.
func (e *RulesEngine) Rules() []Rule {
	return append([]Rule(nil), e.rules...)
}

// Evaluate executes all registered rules and aggregates their results.
func (e *RulesEngine) Evaluate(ctx context.Context, view RuleView) (Result, error) {
	var combined Result
	for _, rule := range e.rules {
		res, err := rule.Evaluate(ctx, view)
		if err != nil {
			return Result{}, err
		}
		combined.Merge(res)
	}
	return combined, nil
}

// EvaluateUntilBlocked stops at the first rule producing a blocking violation.
func (e *RulesEngine) EvaluateUntilBlocked(ctx context.Context, view RuleView) (Result, error) {
	var combined Result
	for _, rule := range e.rules {
		res, err := rule.Evaluate(ctx, view)
		if err != nil {
			return Result{}, err
		}
		combined.Merge(res)
		if res.HasBlocking() {
			break
		}
	}
	return combined, nil
}
