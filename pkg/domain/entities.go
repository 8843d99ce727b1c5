// Package domain defines the care facility entities, value types, error
// taxonomy and rule evaluation primitives shared by the registry, its
// persistence backends and the presentation layer.
package domain

import (
	"fmt"
	"time"
)

// EntityType identifies the type of record tracked by the registry.
type EntityType string

// Supported entity type identifiers used in errors, violations and persistence buckets.
const (
	EntityBed      EntityType = "bed"
	EntityResident EntityType = "resident"
	EntityStaff    EntityType = "staff"
)

// Gender is the single-letter gender marker recorded for residents and staff.
type Gender string

// Recognised gender markers.
const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// Valid reports whether g is a recognised marker.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// Role determines which registry operations a staff member may invoke.
type Role string

// Staff roles. A role is fixed when the staff record is created.
const (
	RoleManager Role = "manager"
	RoleDoctor  Role = "doctor"
	RoleNurse   Role = "nurse"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleManager, RoleDoctor, RoleNurse:
		return true
	default:
		return false
	}
}

// Bed is a single bed slot in the fixed facility topology.
// OccupantID mirrors Resident.BedID; the registry keeps both sides in step.
type Bed struct {
	ID         string  `json:"id" yaml:"id"`
	OccupantID *string `json:"occupant_id,omitempty" yaml:"occupant_id,omitempty"`
}

// Occupied reports whether a resident is linked to the bed.
func (b Bed) Occupied() bool { return b.OccupantID != nil }

func (b Bed) String() string {
	if b.Occupied() {
		return b.ID + " [OCCUPIED]"
	}
	return b.ID + " [VACANT]"
}

// Resident is a person cared for by the facility.
type Resident struct {
	ID              string                 `json:"id" yaml:"id"`
	Name            string                 `json:"name" yaml:"name"`
	Gender          Gender                 `json:"gender" yaml:"gender"`
	Age             int                    `json:"age" yaml:"age"`
	BedID           *string                `json:"bed_id,omitempty" yaml:"bed_id,omitempty"`
	Prescriptions   []Prescription         `json:"prescriptions,omitempty" yaml:"prescriptions,omitempty"`
	Administrations []AdministrationRecord `json:"administrations,omitempty" yaml:"administrations,omitempty"`
}

func (r Resident) String() string {
	bed := "No bed"
	if r.BedID != nil {
		bed = *r.BedID
	}
	return fmt.Sprintf("%s (%s) - %s, %d yrs, %s", r.Name, r.Gender, r.ID, r.Age, bed)
}

// Staff is a member of the staff directory, keyed by Username.
// Password is an opaque credential and is never rendered by String.
type Staff struct {
	ID             string  `json:"id" yaml:"id"`
	Name           string  `json:"name" yaml:"name"`
	Gender         Gender  `json:"gender" yaml:"gender"`
	Username       string  `json:"username" yaml:"username"`
	Password       string  `json:"password" yaml:"password"`
	Role           Role    `json:"role" yaml:"role"`
	Specialization string  `json:"specialization,omitempty" yaml:"specialization,omitempty"`
	Shifts         []Shift `json:"shifts,omitempty" yaml:"shifts,omitempty"`
}

func (s Staff) String() string {
	if s.Role == RoleDoctor && s.Specialization != "" {
		return fmt.Sprintf("%s [%s] - %s", s.Name, s.Role, s.Specialization)
	}
	return fmt.Sprintf("%s [%s]", s.Name, s.Role)
}

// Prescription is a medicine instruction written by a doctor for one resident.
type Prescription struct {
	Medicine string    `json:"medicine" yaml:"medicine"`
	Dosage   string    `json:"dosage" yaml:"dosage"`
	Time     TimeOfDay `json:"time" yaml:"time"`
	DoctorID string    `json:"doctor_id" yaml:"doctor_id"`
}

func (p Prescription) String() string {
	return fmt.Sprintf("%s %s @ %s", p.Medicine, p.Dosage, p.Time)
}

// AdministrationRecord is one administered dose.
type AdministrationRecord struct {
	Medicine       string    `json:"medicine" yaml:"medicine"`
	Dosage         string    `json:"dosage" yaml:"dosage"`
	AdministeredAt time.Time `json:"administered_at" yaml:"administered_at"`
	NurseID        string    `json:"nurse_id" yaml:"nurse_id"`
}

func (a AdministrationRecord) String() string {
	return fmt.Sprintf("%s - %s %s (nurse %s)", a.AdministeredAt.Format(time.RFC3339), a.Medicine, a.Dosage, a.NurseID)
}

// Shift is a same-day working period on a given weekday.
type Shift struct {
	Day   Weekday   `json:"day" yaml:"day"`
	Start TimeOfDay `json:"start" yaml:"start"`
	End   TimeOfDay `json:"end" yaml:"end"`
}

// NewShift validates the day, that both times fall within the day and that
// end does not precede start.
func NewShift(day Weekday, start, end TimeOfDay) (Shift, error) {
	if !day.Valid() {
		return Shift{}, &InvalidArgumentError{Field: "day", Reason: fmt.Sprintf("unknown weekday %d", int(day))}
	}
	if !start.Valid() || !end.Valid() {
		return Shift{}, &InvalidArgumentError{Field: "time", Reason: fmt.Sprintf("shift %d-%d outside 00:00-24:00", int(start), int(end))}
	}
	if end < start {
		return Shift{}, &InvalidArgumentError{Field: "end", Reason: fmt.Sprintf("shift end %s precedes start %s", end, start)}
	}
	return Shift{Day: day, Start: start, End: end}, nil
}

// Duration returns End - Start. Shifts never span midnight.
func (s Shift) Duration() time.Duration {
	if s.End < s.Start {
		return 0
	}
	return time.Duration(s.End-s.Start) * time.Minute
}

func (s Shift) String() string {
	return fmt.Sprintf("%s %s - %s", s.Day, s.Start, s.End)
}

// AuditEntry is one line of the append-only audit trail.
type AuditEntry struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	ActorID   string    `json:"actor_id" yaml:"actor_id"`
	ActorName string    `json:"actor_name" yaml:"actor_name"`
	Action    string    `json:"action" yaml:"action"`
	Message   string    `json:"message" yaml:"message"`
}

func (e AuditEntry) String() string {
	return fmt.Sprintf("%s - %s (%s) %s", e.Timestamp.Format(time.RFC3339), e.ActorName, e.ActorID, e.Message)
}
