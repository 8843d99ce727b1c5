package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	ErrUnauthorized    = errors.New("unauthorized")
	ErrNotFound        = errors.New("not found")
	ErrOccupied        = errors.New("bed occupied")
	ErrShiftViolation  = errors.New("shift violation")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrTypeMismatch    = errors.New("type mismatch")
	ErrDuplicateID     = errors.New("duplicate id")
)

// AuthorizationError reports an actor lacking a role required by an operation.
type AuthorizationError struct {
	Operation string
	Required  []Role
	Actor     Actor
}

func (e *AuthorizationError) Error() string {
	roles := make([]string, 0, len(e.Required))
	for _, r := range e.Required {
		roles = append(roles, string(r))
	}
	who := "anonymous actor"
	if !e.Actor.IsZero() {
		who = fmt.Sprintf("%s (%s) with role %q", e.Actor.Name, e.Actor.ID, e.Actor.Role)
	}
	return fmt.Sprintf("%s requires role %s; %s is not permitted", e.Operation, strings.Join(roles, "|"), who)
}

func (e *AuthorizationError) Is(target error) bool { return target == ErrUnauthorized }

// NotFoundError reports a reference to an unknown bed, resident or staff member.
type NotFoundError struct {
	Entity EntityType
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// OccupiedError reports a placement into a bed that already has an occupant.
type OccupiedError struct {
	BedID      string
	OccupantID string
}

func (e *OccupiedError) Error() string {
	return fmt.Sprintf("bed %s already occupied by resident %s", e.BedID, e.OccupantID)
}

func (e *OccupiedError) Is(target error) bool { return target == ErrOccupied }

// ShiftViolationError reports a failed compliance rule. For the daily hours
// rule it names the nurse and the offending day.
type ShiftViolationError struct {
	Rule      string
	StaffID   string
	StaffName string
	Username  string
	Day       Weekday
	Total     time.Duration
	Limit     time.Duration
	Reason    string
}

func (e *ShiftViolationError) Error() string {
	if e.Reason != "" {
		return "compliance: " + e.Reason
	}
	return fmt.Sprintf("nurse %s (%s) exceeds %s on %s: scheduled %s",
		e.StaffName, e.Username, formatHours(e.Limit), e.Day, formatHours(e.Total))
}

func (e *ShiftViolationError) Is(target error) bool { return target == ErrShiftViolation }

// InvalidArgumentError reports malformed input rejected at a boundary.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	if e.Field == "" {
		return "invalid argument: " + e.Reason
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// TypeMismatchError reports a staff member whose role does not fit the operation.
type TypeMismatchError struct {
	Username string
	Want     Role
	Got      Role
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("staff %s is a %s, not a %s", e.Username, e.Got, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool { return target == ErrTypeMismatch }

// DuplicateIDError reports an attempt to register an id that is already active.
type DuplicateIDError struct {
	Entity EntityType
	ID     string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%s %s already exists", e.Entity, e.ID)
}

func (e *DuplicateIDError) Is(target error) bool { return target == ErrDuplicateID }

func formatHours(d time.Duration) string {
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}
