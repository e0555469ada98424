package ledger

import (
	"github.com/shopspring/decimal"
)

// SinkType identifies the sub-account a financial event touches alongside the
// parent company balance.
type SinkType string

const (
	SinkNone    SinkType = "none"
	SinkTruck   SinkType = "truck"
	SinkWorker  SinkType = "worker"
	SinkProject SinkType = "project"
	SinkFactory SinkType = "factory"
	SinkMember  SinkType = "member"
)

// EventKind enumerates every balance-moving business event.
type EventKind string

const (
	EventExpense             EventKind = "expense"
	EventMemberTransfer      EventKind = "member_transfer"
	EventTruckIncome         EventKind = "truck_income"
	EventTruckExpense        EventKind = "truck_expense"
	EventTruckTrip           EventKind = "truck_trip"
	EventExternalFundIn      EventKind = "external_fund_in"
	EventExternalFundOut     EventKind = "external_fund_out"
	EventProjectIncome       EventKind = "project_income"
	EventProjectExpense      EventKind = "project_expense"
	EventWorkerSalary        EventKind = "worker_salary"
	EventWorkerAdvance       EventKind = "worker_advance"
	EventWorkerDeduction     EventKind = "worker_deduction"
	EventStockPurchase       EventKind = "stock_purchase"
	EventWorkshopExpense     EventKind = "workshop_expense"
	EventFactoryFundAdd      EventKind = "factory_fund_add"
	EventFactoryFundWithdraw EventKind = "factory_fund_withdraw"
)

// Rule gives the sign each side of an event carries. SinkSign/ParentSign are
// -1, 0 or +1 multipliers applied to the event amount.
type Rule struct {
	Sink       SinkType
	SinkSign   int
	ParentSign int

	// Truck trips propagate a signed net result; everything else requires a
	// non-negative amount.
	AllowNegative bool
}

var rules = map[EventKind]Rule{
	EventExpense:             {Sink: SinkNone, SinkSign: 0, ParentSign: -1},
	EventMemberTransfer:      {Sink: SinkMember, SinkSign: +1, ParentSign: -1},
	EventTruckIncome:         {Sink: SinkTruck, SinkSign: +1, ParentSign: +1},
	EventTruckExpense:        {Sink: SinkTruck, SinkSign: -1, ParentSign: -1},
	EventTruckTrip:           {Sink: SinkTruck, SinkSign: +1, ParentSign: +1, AllowNegative: true},
	EventExternalFundIn:      {Sink: SinkNone, SinkSign: 0, ParentSign: +1},
	EventExternalFundOut:     {Sink: SinkNone, SinkSign: 0, ParentSign: -1},
	EventProjectIncome:       {Sink: SinkProject, SinkSign: +1, ParentSign: +1},
	EventProjectExpense:      {Sink: SinkProject, SinkSign: -1, ParentSign: -1},
	EventWorkerSalary:        {Sink: SinkWorker, SinkSign: +1, ParentSign: -1},
	EventWorkerAdvance:       {Sink: SinkWorker, SinkSign: +1, ParentSign: -1},
	EventWorkerDeduction:     {Sink: SinkWorker, SinkSign: -1, ParentSign: +1},
	EventStockPurchase:       {Sink: SinkFactory, SinkSign: -1, ParentSign: -1},
	EventWorkshopExpense:     {Sink: SinkFactory, SinkSign: -1, ParentSign: -1},
	EventFactoryFundAdd:      {Sink: SinkFactory, SinkSign: +1, ParentSign: -1},
	EventFactoryFundWithdraw: {Sink: SinkFactory, SinkSign: -1, ParentSign: +1},
}

// RuleFor returns the sign rule for kind.
func RuleFor(kind EventKind) (Rule, error) {
	r, ok := rules[kind]
	if !ok {
		return Rule{}, ErrUnknownEventKind
	}
	return r, nil
}

// Effect is one financial event expressed against the sign-rule table.
type Effect struct {
	Kind   EventKind
	SinkID string
	Amount decimal.Decimal
}

// Delta is the concrete pair of balance adjustments an Effect resolves to.
// Sink and Parent are signed amounts to be added to the respective balances.
type Delta struct {
	SinkType SinkType
	SinkID   string
	Sink     decimal.Decimal
	Parent   decimal.Decimal
}

// Deltas resolves the effect against the rule table.
func (e Effect) Deltas() (Delta, error) {
	r, err := RuleFor(e.Kind)
	if err != nil {
		return Delta{}, err
	}
	if e.Amount.IsNegative() && !r.AllowNegative {
		return Delta{}, ErrNegativeAmount
	}
	// The factory balance is a singleton, so factory events carry no sink id.
	if r.Sink != SinkNone && r.Sink != SinkFactory && e.SinkID == "" {
		return Delta{}, ErrMissingSink
	}
	return Delta{
		SinkType: r.Sink,
		SinkID:   e.SinkID,
		Sink:     e.Amount.Mul(decimal.NewFromInt(int64(r.SinkSign))),
		Parent:   e.Amount.Mul(decimal.NewFromInt(int64(r.ParentSign))),
	}, nil
}

// Reversed returns the exact inverse of d, used when deleting an event.
func (d Delta) Reversed() Delta {
	return Delta{
		SinkType: d.SinkType,
		SinkID:   d.SinkID,
		Sink:     d.Sink.Neg(),
		Parent:   d.Parent.Neg(),
	}
}

// Diff returns the adjustment needed to move balances from the effect as
// originally applied with oldAmount to the same effect with newAmount.
func Diff(kind EventKind, sinkID string, oldAmount, newAmount decimal.Decimal) (Delta, error) {
	oldDelta, err := Effect{Kind: kind, SinkID: sinkID, Amount: oldAmount}.Deltas()
	if err != nil {
		return Delta{}, err
	}
	newDelta, err := Effect{Kind: kind, SinkID: sinkID, Amount: newAmount}.Deltas()
	if err != nil {
		return Delta{}, err
	}
	return Delta{
		SinkType: newDelta.SinkType,
		SinkID:   sinkID,
		Sink:     newDelta.Sink.Sub(oldDelta.Sink),
		Parent:   newDelta.Parent.Sub(oldDelta.Parent),
	}, nil
}

// IsZero reports whether the delta moves nothing.
func (d Delta) IsZero() bool {
	return d.Sink.IsZero() && d.Parent.IsZero()
}
