package domain

import "fmt"

// Topology describes the static ward/room/bed layout of a facility.
// RoomBeds[i] is the bed count of room i+1 in every ward.
type Topology struct {
	Wards    int
	RoomBeds []int
}

// DefaultTopology is the facility layout: two wards of six rooms holding
// 1, 2, 2, 3, 4 and 4 beds.
func DefaultTopology() Topology {
	return Topology{Wards: 2, RoomBeds: []int{1, 2, 2, 3, 4, 4}}
}

// BedID formats the identifier of a bed.
func BedID(ward, room, bed int) string {
	return fmt.Sprintf("W%d-R%d-B%d", ward, room, bed)
}

// BedIDs lists every bed identifier in ward, room, bed order.
func (t Topology) BedIDs() []string {
	var ids []string
	for w := 1; w <= t.Wards; w++ {
		for r, count := range t.RoomBeds {
			for b := 1; b <= count; b++ {
				ids = append(ids, BedID(w, r+1, b))
			}
		}
	}
	return ids
}

// Capacity returns the total number of beds.
func (t Topology) Capacity() int {
	total := 0
	for _, count := range t.RoomBeds {
		total += count
	}
	return total * t.Wards
}
