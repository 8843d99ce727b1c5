package core

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"carehome/pkg/domain"

	"pgregory.net/rapid"
)

// TestOccupancyInvariantHolds drives random admissions, moves and discharges
// and checks the bed/resident link after every step.
func TestOccupancyInvariantHolds(t *testing.T) {
	bedIDs := domain.DefaultTopology().BedIDs()
	rapid.Check(t, func(t *rapid.T) {
		ctx := context.Background()
		r := New()
		next := 0

		t.Repeat(map[string]func(*rapid.T){
			"admit": func(t *rapid.T) {
				bed := rapid.SampledFrom(bedIDs).Draw(t, "bed")
				before := r.Snapshot()
				id := fmt.Sprintf("R%d", next)
				err := r.AddResident(ctx, manager, domain.Resident{ID: id, Name: id}, bed)
				if b := bedOf(before, bed); b.Occupied() {
					if !errors.Is(err, domain.ErrOccupied) {
						t.Fatalf("expected ErrOccupied for %s, got %v", bed, err)
					}
					if !reflect.DeepEqual(before, r.Snapshot()) {
						t.Fatalf("rejected admission changed state")
					}
					return
				}
				if err != nil {
					t.Fatalf("admit into vacant %s: %v", bed, err)
				}
				next++
			},
			"move": func(t *rapid.T) {
				residents := r.Residents()
				if len(residents) == 0 {
					t.Skip("no residents")
				}
				res := rapid.SampledFrom(residents).Draw(t, "resident")
				bed := rapid.SampledFrom(bedIDs).Draw(t, "bed")
				before := r.Snapshot()
				err := r.MoveResident(ctx, nurse, res.ID, bed)
				if bedOf(before, bed).Occupied() {
					if !errors.Is(err, domain.ErrOccupied) {
						t.Fatalf("expected ErrOccupied moving into %s, got %v", bed, err)
					}
					if !reflect.DeepEqual(before, r.Snapshot()) {
						t.Fatalf("rejected move changed state")
					}
				} else if err != nil {
					t.Fatalf("move into vacant %s: %v", bed, err)
				}
			},
			"discharge": func(t *rapid.T) {
				residents := r.Residents()
				if len(residents) == 0 {
					t.Skip("no residents")
				}
				res := rapid.SampledFrom(residents).Draw(t, "resident")
				if err := r.DischargeResident(ctx, manager, res.ID, domain.ArchiveSinkFunc(func(context.Context, domain.ArchiveRecord) error { return nil })); err != nil {
					t.Fatalf("discharge %s: %v", res.ID, err)
				}
			},
			"": func(t *rapid.T) {
				checkSymmetry(t, r)
			},
		})
	})
}

func bedOf(snap domain.Snapshot, id string) domain.Bed {
	for _, b := range snap.Beds {
		if b.ID == id {
			return b
		}
	}
	return domain.Bed{}
}

func checkSymmetry(t *rapid.T, r *Registry) {
	occupied := map[string]string{}
	for _, b := range r.Beds() {
		if b.OccupantID != nil {
			occupied[b.ID] = *b.OccupantID
		}
	}
	residents := r.Residents()
	if len(occupied) != len(residents) {
		t.Fatalf("%d occupied beds for %d residents", len(occupied), len(residents))
	}
	for _, res := range residents {
		if res.BedID == nil || occupied[*res.BedID] != res.ID {
			t.Fatalf("resident %s and its bed disagree", res.ID)
		}
	}
}
