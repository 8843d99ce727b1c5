package domain

import (
	"context"
	"errors"
	"time"
)

// SnapshotVersion is the current snapshot layout version.
const SnapshotVersion = 1

// ErrNoSnapshot is returned by a SnapshotSource that holds no saved state.
var ErrNoSnapshot = errors.New("snapshot: no saved state")

// Snapshot is the complete value form of a registry, including occupancy
// links and the audit trail. Beds are listed in topology order.
type Snapshot struct {
	Version   int                 `json:"version" yaml:"version"`
	Beds      []Bed               `json:"beds" yaml:"beds"`
	Residents map[string]Resident `json:"residents" yaml:"residents"`
	Staff     map[string]Staff    `json:"staff" yaml:"staff"`
	Audit     []AuditEntry        `json:"audit" yaml:"audit"`
}

// SnapshotSink persists a snapshot as one atomic unit.
type SnapshotSink interface {
	SaveSnapshot(ctx context.Context, snapshot Snapshot) error
}

// SnapshotSource restores the most recently saved snapshot.
type SnapshotSource interface {
	LoadSnapshot(ctx context.Context) (Snapshot, error)
}

// SnapshotStore is a backend that can both save and load.
type SnapshotStore interface {
	SnapshotSink
	SnapshotSource
}

// ArchiveRecord is the exported clinical history of a discharged resident.
type ArchiveRecord struct {
	Resident        Resident               `json:"resident"`
	Prescriptions   []Prescription         `json:"prescriptions"`
	Administrations []AdministrationRecord `json:"administrations"`
	DischargedAt    time.Time              `json:"discharged_at"`
	DischargedBy    string                 `json:"discharged_by"`
}

// ArchiveSink receives archive records on discharge. The encoding is owned by
// the implementation.
type ArchiveSink interface {
	WriteArchive(ctx context.Context, record ArchiveRecord) error
}

// ArchiveSinkFunc adapts a function to ArchiveSink.
type ArchiveSinkFunc func(ctx context.Context, record ArchiveRecord) error

// WriteArchive calls f.
func (f ArchiveSinkFunc) WriteArchive(ctx context.Context, record ArchiveRecord) error {
	return f(ctx, record)
}
