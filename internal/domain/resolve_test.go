package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingAt(id string, created time.Time) *Booking {
	return &Booking{
		ID:        id,
		Ground:    "Ground A",
		Sport:     "Football",
		TimeSlot:  "07:00 AM - 09:00 AM",
		Status:    BookingStatusPending,
		CreatedAt: created,
	}
}

func TestResolveAllotment_OldestPendingWins(t *testing.T) {
	t0 := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	b1 := pendingAt("b1", t0)
	b2 := pendingAt("b2", t0.Add(1*time.Minute))
	b3 := pendingAt("b3", t0.Add(2*time.Minute))

	// админ кликнул по самой поздней заявке
	d := ResolveAllotment(b3, []*Booking{b2, b3, b1})

	require.NotNil(t, d.Winner)
	assert.Equal(t, "b1", d.Winner.ID)
	assert.True(t, d.Promote)
	assert.True(t, d.Materialize)

	require.Len(t, d.AutoRejected, 2)
	ids := []string{d.AutoRejected[0].ID, d.AutoRejected[1].ID}
	assert.ElementsMatch(t, []string{"b2", "b3"}, ids)
}

func TestResolveAllotment_SinglePending(t *testing.T) {
	b := pendingAt("b1", time.Now())

	d := ResolveAllotment(b, []*Booking{b})

	assert.Equal(t, "b1", d.Winner.ID)
	assert.True(t, d.Promote)
	assert.True(t, d.Materialize)
	assert.Empty(t, d.AutoRejected)
}

func TestResolveAllotment_AlreadyApproved_NoPending(t *testing.T) {
	approved := pendingAt("b1", time.Now())
	approved.Status = BookingStatusApproved

	d := ResolveAllotment(approved, []*Booking{approved})

	assert.Equal(t, "b1", d.Winner.ID)
	assert.False(t, d.Promote)
	assert.True(t, d.Materialize, "approved winner refreshes the allotment record")
	assert.Empty(t, d.AutoRejected)
}

func TestResolveAllotment_AlreadyRejected_NoPending(t *testing.T) {
	rejected := pendingAt("b1", time.Now())
	rejected.Status = BookingStatusRejected

	d := ResolveAllotment(rejected, []*Booking{rejected})

	assert.Equal(t, "b1", d.Winner.ID)
	assert.False(t, d.Promote)
	assert.False(t, d.Materialize, "no allotment for a rejected booking")
	assert.Empty(t, d.AutoRejected)
}

func TestResolveAllotment_TerminalTargetWithPendingCompetitor(t *testing.T) {
	t0 := time.Now()
	rejected := pendingAt("b1", t0)
	rejected.Status = BookingStatusRejected
	waiting := pendingAt("b2", t0.Add(time.Minute))

	// клик по уже отклонённой заявке всё равно продвигает ожидающую
	d := ResolveAllotment(rejected, []*Booking{rejected, waiting})

	assert.Equal(t, "b2", d.Winner.ID)
	assert.True(t, d.Promote)
	assert.Empty(t, d.AutoRejected)
}

func TestResolveAllotment_EqualTimestampsFallBackToID(t *testing.T) {
	t0 := time.Now()
	b1 := pendingAt("aaa", t0)
	b2 := pendingAt("bbb", t0)

	d := ResolveAllotment(b2, []*Booking{b2, b1})

	assert.Equal(t, "aaa", d.Winner.ID)
	require.Len(t, d.AutoRejected, 1)
	assert.Equal(t, "bbb", d.AutoRejected[0].ID)
}
