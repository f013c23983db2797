package organizer

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"eventpass/internal/events"
)

func strptr(s string) *string { return &s }

func TestTicketsSoldMayGoNegative(t *testing.T) {
	ev := OrganizerEvent{CanonicalEvent: events.CanonicalEvent{TotalCapacity: 10, AvailableCapacity: 14}}
	assert.Equal(t, -4, ev.TicketsSold(), "inconsistent upstream data stays visible, not clamped")
}

func TestPercentageSoldZeroCapacityGuard(t *testing.T) {
	ev := OrganizerEvent{CanonicalEvent: events.CanonicalEvent{TotalCapacity: 0, AvailableCapacity: 25}}
	got := ev.PercentageSold()
	assert.Zero(t, got)
	assert.False(t, math.IsNaN(got))
	assert.False(t, math.IsInf(got, 0))
}

func TestPercentageSold(t *testing.T) {
	ev := OrganizerEvent{CanonicalEvent: events.CanonicalEvent{TotalCapacity: 80, AvailableCapacity: 20}}
	assert.InDelta(t, 75.0, ev.PercentageSold(), 1e-9)
}

func TestStatusPredicates(t *testing.T) {
	published := OrganizerEvent{Status: StatusPublished}
	assert.True(t, published.IsActive())
	assert.True(t, published.IsUpcoming())
	assert.False(t, published.IsOngoing())

	ongoing := OrganizerEvent{Status: StatusOngoing}
	assert.True(t, ongoing.IsActive())
	assert.False(t, ongoing.IsUpcoming())
	assert.True(t, ongoing.IsOngoing())

	completed := OrganizerEvent{Status: StatusCompleted}
	assert.False(t, completed.IsActive())
	assert.True(t, completed.IsCompleted())

	cancelled := OrganizerEvent{Status: StatusCancelled}
	assert.True(t, cancelled.IsCancelled())
	assert.False(t, cancelled.IsActive())
}

func TestRefundEstimatePrefersTaxInclusivePrice(t *testing.T) {
	ev := OrganizerEvent{
		CanonicalEvent: events.CanonicalEvent{TotalCapacity: 100, AvailableCapacity: 90, Price: strptr("10")},
		PriceWithTva:   strptr("11.9"),
	}
	assert.InDelta(t, 119.0, ev.RefundEstimate(), 1e-9)
}

func TestRefundEstimateFallsBackToBasePrice(t *testing.T) {
	ev := OrganizerEvent{
		CanonicalEvent: events.CanonicalEvent{TotalCapacity: 100, AvailableCapacity: 90, Price: strptr("10")},
	}
	assert.InDelta(t, 100.0, ev.RefundEstimate(), 1e-9)
}

func TestRefundEstimateUnparseablePricesYieldZero(t *testing.T) {
	ev := OrganizerEvent{
		CanonicalEvent: events.CanonicalEvent{TotalCapacity: 20, AvailableCapacity: 10, Price: strptr("free entry")},
		PriceWithTva:   strptr(""),
	}
	got := ev.RefundEstimate()
	assert.Zero(t, got, "the UI must never claim an amount the data cannot support")
	assert.False(t, math.IsNaN(got))
}

func TestRefundEstimateAbsentPricesYieldZero(t *testing.T) {
	ev := OrganizerEvent{CanonicalEvent: events.CanonicalEvent{TotalCapacity: 20, AvailableCapacity: 10}}
	assert.Zero(t, ev.RefundEstimate())
}
