package core

import (
	"context"
	"fmt"

	"carehome/pkg/domain"

	"go.uber.org/zap"
)

// Snapshot returns the complete value form of the registry.
func (r *Registry) Snapshot() domain.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state.snapshot()
}

func (s registryState) snapshot() domain.Snapshot {
	snap := domain.Snapshot{
		Version:   domain.SnapshotVersion,
		Residents: s.residents,
		Staff:     s.staff,
		Audit:     s.audit,
	}
	for _, id := range s.bedOrder {
		snap.Beds = append(snap.Beds, s.beds[id])
	}
	return snap.Clone()
}

// Save writes the registry state to sink as one unit.
func (r *Registry) Save(ctx context.Context, sink domain.SnapshotSink) error {
	snap := r.Snapshot()
	if err := sink.SaveSnapshot(ctx, snap); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	r.logger.Debug("snapshot saved",
		zap.Int("residents", len(snap.Residents)),
		zap.Int("staff", len(snap.Staff)),
		zap.Int("audit_entries", len(snap.Audit)))
	return nil
}

// Load reads a snapshot from source and builds a new registry from it.
func Load(ctx context.Context, source domain.SnapshotSource, opts ...Option) (*Registry, error) {
	snap, err := source.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return FromSnapshot(snap, opts...)
}

// FromSnapshot validates snap and builds a registry holding its state.
func FromSnapshot(snap domain.Snapshot, opts ...Option) (*Registry, error) {
	if err := validateSnapshot(snap, domain.DefaultTopology()); err != nil {
		return nil, err
	}
	snap = snap.Clone()
	r := New(opts...)
	st := newRegistryState(domain.DefaultTopology())
	for _, b := range snap.Beds {
		st.beds[b.ID] = b
	}
	st.residents = snap.Residents
	st.staff = snap.Staff
	st.audit = snap.Audit

	r.mu.Lock()
	r.state = st
	r.mu.Unlock()
	r.metrics.ObserveOccupancy(st.occupiedBeds(), len(st.bedOrder))
	return r, nil
}

func validateSnapshot(snap domain.Snapshot, topology domain.Topology) error {
	invalid := func(format string, args ...any) error {
		return &domain.InvalidArgumentError{Field: "snapshot", Reason: fmt.Sprintf(format, args...)}
	}
	if snap.Version != domain.SnapshotVersion {
		return invalid("unsupported version %d", snap.Version)
	}
	ids := topology.BedIDs()
	if len(snap.Beds) != len(ids) {
		return invalid("expected %d beds, got %d", len(ids), len(snap.Beds))
	}
	for i, b := range snap.Beds {
		if b.ID != ids[i] {
			return invalid("bed %d is %q, want %q", i, b.ID, ids[i])
		}
		if b.OccupantID == nil {
			continue
		}
		res, ok := snap.Residents[*b.OccupantID]
		if !ok {
			return invalid("bed %s occupied by unknown resident %s", b.ID, *b.OccupantID)
		}
		if res.BedID == nil || *res.BedID != b.ID {
			return invalid("bed %s and resident %s disagree on occupancy", b.ID, res.ID)
		}
	}
	beds := make(map[string]domain.Bed, len(snap.Beds))
	for _, b := range snap.Beds {
		beds[b.ID] = b
	}
	for key, res := range snap.Residents {
		if key != res.ID {
			return invalid("resident keyed %q has id %q", key, res.ID)
		}
		if res.BedID == nil {
			return invalid("resident %s has no bed", res.ID)
		}
		b, ok := beds[*res.BedID]
		if !ok || b.OccupantID == nil || *b.OccupantID != res.ID {
			return invalid("resident %s and bed %s disagree on occupancy", res.ID, *res.BedID)
		}
	}
	for key, s := range snap.Staff {
		if key != s.Username {
			return invalid("staff keyed %q has username %q", key, s.Username)
		}
		if !s.Role.Valid() {
			return invalid("staff %s has unknown role %q", key, s.Role)
		}
	}
	return nil
}
