// Package bucket splits a registry snapshot into named JSON payloads so that
// table- and key-oriented backends can store each part under its own key.
package bucket

import (
	"encoding/json"
	"fmt"

	"carehome/pkg/domain"
)

// Bucket names in write order.
const (
	Meta      = "meta"
	Beds      = "beds"
	Residents = "residents"
	Staff     = "staff"
	Audit     = "audit"
)

// Names lists every bucket a snapshot is split into.
var Names = []string{Meta, Beds, Residents, Staff, Audit}

// Payload is one encoded bucket.
type Payload struct {
	Name string
	Data []byte
}

type meta struct {
	Version int `json:"version"`
}

// Encode marshals snap into one payload per bucket, ordered as Names.
func Encode(snap domain.Snapshot) ([]Payload, error) {
	parts := map[string]any{
		Meta:      meta{Version: snap.Version},
		Beds:      snap.Beds,
		Residents: snap.Residents,
		Staff:     snap.Staff,
		Audit:     snap.Audit,
	}
	out := make([]Payload, 0, len(Names))
	for _, name := range Names {
		data, err := json.Marshal(parts[name])
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", name, err)
		}
		out = append(out, Payload{Name: name, Data: data})
	}
	return out, nil
}

// Decode rebuilds a snapshot from bucket payloads keyed by name. Unknown
// buckets are ignored. An empty map yields domain.ErrNoSnapshot.
func Decode(payloads map[string][]byte) (domain.Snapshot, error) {
	if len(payloads) == 0 {
		return domain.Snapshot{}, domain.ErrNoSnapshot
	}
	var (
		snap domain.Snapshot
		m    meta
	)
	targets := map[string]any{
		Meta:      &m,
		Beds:      &snap.Beds,
		Residents: &snap.Residents,
		Staff:     &snap.Staff,
		Audit:     &snap.Audit,
	}
	if _, ok := payloads[Meta]; !ok {
		return domain.Snapshot{}, fmt.Errorf("decode snapshot: missing %s bucket", Meta)
	}
	for name, data := range payloads {
		target, ok := targets[name]
		if !ok || len(data) == 0 {
			continue
		}
		if err := json.Unmarshal(data, target); err != nil {
			return domain.Snapshot{}, fmt.Errorf("decode %s: %w", name, err)
		}
	}
	snap.Version = m.Version
	return snap.Clone(), nil
}
