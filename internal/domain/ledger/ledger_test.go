package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestDeltas_SignTable(t *testing.T) {
	amount := d("250.75")

	cases := []struct {
		kind       EventKind
		sink       SinkType
		wantSink   string
		wantParent string
	}{
		{EventExpense, SinkNone, "0", "-250.75"},
		{EventMemberTransfer, SinkMember, "250.75", "-250.75"},
		{EventTruckIncome, SinkTruck, "250.75", "250.75"},
		{EventTruckExpense, SinkTruck, "-250.75", "-250.75"},
		{EventExternalFundIn, SinkNone, "0", "250.75"},
		{EventExternalFundOut, SinkNone, "0", "-250.75"},
		{EventProjectIncome, SinkProject, "250.75", "250.75"},
		{EventProjectExpense, SinkProject, "-250.75", "-250.75"},
		{EventWorkerSalary, SinkWorker, "250.75", "-250.75"},
		{EventWorkerAdvance, SinkWorker, "250.75", "-250.75"},
		{EventWorkerDeduction, SinkWorker, "-250.75", "250.75"},
		{EventStockPurchase, SinkFactory, "-250.75", "-250.75"},
		{EventWorkshopExpense, SinkFactory, "-250.75", "-250.75"},
		{EventFactoryFundAdd, SinkFactory, "250.75", "-250.75"},
		{EventFactoryFundWithdraw, SinkFactory, "-250.75", "250.75"},
	}

	for _, c := range cases {
		t.Run(string(c.kind), func(t *testing.T) {
			sinkID := ""
			if c.sink != SinkNone {
				sinkID = "sink-1"
			}
			delta, err := Effect{Kind: c.kind, SinkID: sinkID, Amount: amount}.Deltas()
			require.NoError(t, err)
			assert.Equal(t, c.sink, delta.SinkType)
			assert.True(t, delta.Sink.Equal(d(c.wantSink)), "sink delta = %s, want %s", delta.Sink, c.wantSink)
			assert.True(t, delta.Parent.Equal(d(c.wantParent)), "parent delta = %s, want %s", delta.Parent, c.wantParent)
		})
	}
}

func TestDeltas_TruckTripSignedNetResult(t *testing.T) {
	// A losing trip propagates its negative net result to both balances.
	delta, err := Effect{Kind: EventTruckTrip, SinkID: "truck-1", Amount: d("-1200")}.Deltas()
	require.NoError(t, err)
	assert.True(t, delta.Sink.Equal(d("-1200")))
	assert.True(t, delta.Parent.Equal(d("-1200")))
}

func TestDeltas_RejectsNegativeAmount(t *testing.T) {
	_, err := Effect{Kind: EventExpense, Amount: d("-10")}.Deltas()
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestDeltas_RejectsUnknownKind(t *testing.T) {
	_, err := Effect{Kind: EventKind("bogus"), Amount: d("10")}.Deltas()
	assert.ErrorIs(t, err, ErrUnknownEventKind)
}

func TestDeltas_RejectsMissingSink(t *testing.T) {
	_, err := Effect{Kind: EventTruckExpense, Amount: d("10")}.Deltas()
	assert.ErrorIs(t, err, ErrMissingSink)
}

func TestReversed_RestoresBalancesExactly(t *testing.T) {
	kinds := []EventKind{
		EventExpense, EventMemberTransfer, EventTruckIncome, EventTruckExpense,
		EventTruckTrip, EventExternalFundIn, EventExternalFundOut,
		EventProjectIncome, EventProjectExpense, EventWorkerSalary,
		EventWorkerAdvance, EventWorkerDeduction, EventStockPurchase,
		EventWorkshopExpense, EventFactoryFundAdd, EventFactoryFundWithdraw,
	}
	for _, kind := range kinds {
		delta, err := Effect{Kind: kind, SinkID: "sink-1", Amount: d("99.99")}.Deltas()
		require.NoError(t, err)
		reversed := delta.Reversed()
		assert.True(t, delta.Sink.Add(reversed.Sink).IsZero(), "%s sink drift", kind)
		assert.True(t, delta.Parent.Add(reversed.Parent).IsZero(), "%s parent drift", kind)
	}
}

func TestDiff_AppliesOnlyTheDifference(t *testing.T) {
	// Editing a trip's net result from N1 to N2 moves balances by N2-N1.
	delta, err := Diff(EventTruckTrip, "truck-1", d("1500"), d("900"))
	require.NoError(t, err)
	assert.True(t, delta.Sink.Equal(d("-600")))
	assert.True(t, delta.Parent.Equal(d("-600")))

	// Raising a worker deduction from 100 to 250: worker -150, parent +150.
	delta, err = Diff(EventWorkerDeduction, "worker-1", d("100"), d("250"))
	require.NoError(t, err)
	assert.True(t, delta.Sink.Equal(d("-150")))
	assert.True(t, delta.Parent.Equal(d("150")))
}

func TestDiff_SameAmountIsZero(t *testing.T) {
	delta, err := Diff(EventProjectExpense, "project-1", d("400"), d("400"))
	require.NoError(t, err)
	assert.True(t, delta.IsZero())
}
