package domain

import "testing"

func TestDefaultTopology(t *testing.T) {
	topo := DefaultTopology()
	ids := topo.BedIDs()
	if len(ids) != topo.Capacity() || topo.Capacity() != 32 {
		t.Fatalf("capacity %d, ids %d", topo.Capacity(), len(ids))
	}
	if ids[0] != "W1-R1-B1" || ids[len(ids)-1] != "W2-R6-B4" {
		t.Fatalf("unexpected bounds %s .. %s", ids[0], ids[len(ids)-1])
	}
	seen := map[string]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate bed id %s", id)
		}
		seen[id] = true
	}
	if !seen["W1-R6-B4"] || seen["W1-R1-B2"] {
		t.Fatalf("room sizes not honoured")
	}
}
