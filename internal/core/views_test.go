package core

import (
	"errors"
	"testing"

	"carehome/pkg/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewsReturnCopies(t *testing.T) {
	r := populated(t)

	beds := r.Beds()
	require.Len(t, beds, domain.DefaultTopology().Capacity())
	assert.Equal(t, "W1-R1-B1", beds[0].ID)

	res, err := r.Resident("R1")
	require.NoError(t, err)
	res.Prescriptions[0].Medicine = "changed"
	*res.BedID = "W9-R9-B9"

	again, err := r.Resident("R1")
	require.NoError(t, err)
	assert.Equal(t, "Paracetamol", again.Prescriptions[0].Medicine)
	assert.Equal(t, "W1-R2-B1", *again.BedID)

	log := r.AuditLog()
	log[0].Message = "tampered"
	assert.NotEqual(t, "tampered", r.AuditLog()[0].Message)
}

func TestViewsOrdering(t *testing.T) {
	r := populated(t)

	var ids []string
	for _, res := range r.Residents() {
		ids = append(ids, res.ID)
	}
	assert.Equal(t, []string{"R1", "R2"}, ids)

	var users []string
	for _, s := range r.StaffDirectory() {
		users = append(users, s.Username)
	}
	assert.Equal(t, []string{"dev", "mgr", "nina"}, users)
}

func TestViewsNotFound(t *testing.T) {
	r := newTestRegistry(t)
	_, err := r.Bed("W3-R1-B1")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = r.Resident("R404")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = r.Staff("ghost")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	b, err := r.Bed("W2-R6-B4")
	require.NoError(t, err)
	assert.False(t, b.Occupied())
}
