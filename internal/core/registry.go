// Package core implements the facility registry: the single owner of bed,
// resident and staff state. Every mutation is role-gated, validated against a
// working copy of the state and committed only when it succeeds.
package core

import (
	"context"
	"fmt"
	"sync"
	"time"

	"carehome/pkg/domain"

	"go.uber.org/zap"
)

// Registry owns all facility state and exposes role-gated operations.
// It is not meant for concurrent multi-user access; the mutex only keeps
// each operation atomic with respect to readers.
type Registry struct {
	mu      sync.Mutex
	state   registryState
	engine  *domain.RulesEngine
	logger  *zap.Logger
	metrics MetricsRecorder
	now     func() time.Time

	requireDoctor bool
}

type registryState struct {
	bedOrder  []string
	beds      map[string]domain.Bed
	residents map[string]domain.Resident
	staff     map[string]domain.Staff
	audit     []domain.AuditEntry
}

func newRegistryState(topology domain.Topology) registryState {
	ids := topology.BedIDs()
	st := registryState{
		bedOrder:  ids,
		beds:      make(map[string]domain.Bed, len(ids)),
		residents: make(map[string]domain.Resident),
		staff:     make(map[string]domain.Staff),
	}
	for _, id := range ids {
		st.beds[id] = domain.Bed{ID: id}
	}
	return st
}

func (s registryState) clone() registryState {
	cloned := registryState{
		bedOrder:  s.bedOrder,
		beds:      make(map[string]domain.Bed, len(s.beds)),
		residents: make(map[string]domain.Resident, len(s.residents)),
		staff:     make(map[string]domain.Staff, len(s.staff)),
		audit:     append([]domain.AuditEntry(nil), s.audit...),
	}
	for k, v := range s.beds {
		cloned.beds[k] = domain.CloneBed(v)
	}
	for k, v := range s.residents {
		cloned.residents[k] = domain.CloneResident(v)
	}
	for k, v := range s.staff {
		cloned.staff[k] = domain.CloneStaff(v)
	}
	return cloned
}

func (s registryState) occupiedBeds() int {
	n := 0
	for _, b := range s.beds {
		if b.Occupied() {
			n++
		}
	}
	return n
}

// New constructs an empty registry over the default bed topology.
func New(opts ...Option) *Registry {
	r := &Registry{
		state:   newRegistryState(domain.DefaultTopology()),
		engine:  NewDefaultComplianceEngine(),
		logger:  zap.NewNop(),
		metrics: noopMetrics{},
		now:     func() time.Time { return time.Now().UTC().Round(0) },
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.requireDoctor {
		r.engine.Register(NewDoctorPresenceRule())
	}
	r.metrics.ObserveOccupancy(r.state.occupiedBeds(), len(r.state.bedOrder))
	return r
}

// txn is the working copy a single operation mutates.
type txn struct {
	state registryState
	actor domain.Actor
	now   time.Time
	op    string
}

func (tx *txn) record(format string, args ...any) {
	tx.state.audit = append(tx.state.audit, domain.AuditEntry{
		Timestamp: tx.now,
		ActorID:   tx.actor.ID,
		ActorName: tx.actor.Name,
		Action:    tx.op,
		Message:   fmt.Sprintf(format, args...),
	})
}

// run authorizes the actor, applies fn to a cloned state and commits on success.
func (r *Registry) run(ctx context.Context, op string, actor domain.Actor, roles []domain.Role, fn func(tx *txn) error) (err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe(ctx, op, err == nil, time.Since(started))
	}()
	if err = ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err = domain.Authorize(op, actor, roles...); err != nil {
		r.logger.Warn("operation denied",
			zap.String("operation", op),
			zap.String("actor_id", actor.ID),
			zap.String("actor_role", string(actor.Role)))
		return err
	}

	tx := &txn{state: r.state.clone(), actor: actor, now: r.now(), op: op}
	if err = fn(tx); err != nil {
		r.logger.Info("operation rejected",
			zap.String("operation", op),
			zap.String("actor_id", actor.ID),
			zap.Error(err))
		return err
	}
	r.state = tx.state
	r.metrics.ObserveOccupancy(r.state.occupiedBeds(), len(r.state.bedOrder))
	r.logger.Debug("operation committed",
		zap.String("operation", op),
		zap.String("actor_id", actor.ID))
	return nil
}

// Operation names used for authorization errors, audit actions and metrics.
const (
	OpAddStaff            = "add_staff"
	OpChangeStaffPassword = "change_staff_password"
	OpAddShiftForNurse    = "add_shift_for_nurse"
	OpAddResident         = "add_resident"
	OpMoveResident        = "move_resident"
	OpDischargeResident   = "discharge_resident"
	OpAddPrescription     = "add_prescription"
	OpAdministerMedicine  = "administer_medication"
)

var (
	managerOnly = []domain.Role{domain.RoleManager}
	doctorOnly  = []domain.Role{domain.RoleDoctor}
	nurseOnly   = []domain.Role{domain.RoleNurse}
)
