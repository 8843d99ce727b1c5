package domain

// Clone helpers return deep copies. Empty slices are normalised to nil so
// that values compare equal after any serialisation round trip.

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// CloneBed returns a deep copy of b.
func CloneBed(b Bed) Bed {
	b.OccupantID = cloneString(b.OccupantID)
	return b
}

// CloneResident returns a deep copy of r.
func CloneResident(r Resident) Resident {
	r.BedID = cloneString(r.BedID)
	r.Prescriptions = append([]Prescription(nil), r.Prescriptions...)
	r.Administrations = append([]AdministrationRecord(nil), r.Administrations...)
	return r
}

// CloneStaff returns a deep copy of s.
func CloneStaff(s Staff) Staff {
	s.Shifts = append([]Shift(nil), s.Shifts...)
	return s
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Version:   s.Version,
		Residents: make(map[string]Resident, len(s.Residents)),
		Staff:     make(map[string]Staff, len(s.Staff)),
	}
	if len(s.Beds) > 0 {
		out.Beds = make([]Bed, 0, len(s.Beds))
		for _, b := range s.Beds {
			out.Beds = append(out.Beds, CloneBed(b))
		}
	}
	for k, v := range s.Residents {
		out.Residents[k] = CloneResident(v)
	}
	for k, v := range s.Staff {
		out.Staff[k] = CloneStaff(v)
	}
	out.Audit = append([]AuditEntry(nil), s.Audit...)
	return out
}
