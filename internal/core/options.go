package core

import (
	"time"

	"carehome/pkg/domain"

	"go.uber.org/zap"
)

// Option customises a Registry at construction.
type Option func(*Registry)

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock overrides the time source used for audit entries and archives.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// WithMetrics installs a metrics recorder.
func WithMetrics(metrics MetricsRecorder) Option {
	return func(r *Registry) {
		if metrics != nil {
			r.metrics = metrics
		}
	}
}

// WithRulesEngine replaces the compliance rules engine.
func WithRulesEngine(engine *domain.RulesEngine) Option {
	return func(r *Registry) {
		if engine != nil {
			r.engine = engine
		}
	}
}

// WithDoctorPresenceRule adds the rule requiring at least one doctor on staff.
// The rule lands on the final engine whatever the option order.
func WithDoctorPresenceRule() Option {
	return func(r *Registry) {
		r.requireDoctor = true
	}
}
