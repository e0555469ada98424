// Package ledger applies resolved balance deltas to the stored sink and
// parent balances. Services compute deltas through the domain rule table and
// hand them to the Applier inside their transaction.
package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/company"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/factory"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/ledger"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/member"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/project"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/truck"
	"github.com/tadbir-app/tadbir-backend-go/internal/domain/worker"
)

type Applier struct {
	companies company.CompanyRepository
	trucks    truck.TruckRepository
	workers   worker.WorkerRepository
	projects  project.ProjectRepository
	members   member.MemberRepository
	factory   factory.SettingsRepository
}

func NewApplier(
	companies company.CompanyRepository,
	trucks truck.TruckRepository,
	workers worker.WorkerRepository,
	projects project.ProjectRepository,
	members member.MemberRepository,
	factorySettings factory.SettingsRepository,
) *Applier {
	return &Applier{
		companies: companies,
		trucks:    trucks,
		workers:   workers,
		projects:  projects,
		members:   members,
		factory:   factorySettings,
	}
}

// Apply writes the delta's sink and parent adjustments. The parent side
// always lands on the group's parent company. Callers must run Apply with a
// transaction on the context so both updates commit or roll back together.
func (a *Applier) Apply(ctx context.Context, d ledger.Delta) error {
	if d.IsZero() {
		return nil
	}

	if !d.Sink.IsZero() {
		if err := a.adjustSink(ctx, d); err != nil {
			return err
		}
	}
	if !d.Parent.IsZero() {
		parent, err := a.companies.GetParent(ctx)
		if err != nil {
			return fmt.Errorf("resolve parent company: %w", err)
		}
		if err := a.companies.AdjustBalance(ctx, parent.ID, d.Parent); err != nil {
			return fmt.Errorf("adjust parent balance: %w", err)
		}
	}
	return nil
}

func (a *Applier) adjustSink(ctx context.Context, d ledger.Delta) error {
	var err error
	switch d.SinkType {
	case ledger.SinkTruck:
		err = a.trucks.AdjustBalance(ctx, d.SinkID, d.Sink)
	case ledger.SinkWorker:
		err = a.workers.AdjustBalance(ctx, d.SinkID, d.Sink)
	case ledger.SinkProject:
		err = a.projects.AdjustBalance(ctx, d.SinkID, d.Sink)
	case ledger.SinkMember:
		err = a.members.AdjustBalance(ctx, d.SinkID, d.Sink)
	case ledger.SinkFactory:
		err = a.factory.AdjustBalance(ctx, d.Sink)
	default:
		return fmt.Errorf("no balance sink for type %q", d.SinkType)
	}
	if err != nil {
		return fmt.Errorf("adjust %s balance: %w", d.SinkType, err)
	}
	return nil
}

// ApplyEffect resolves an effect against the rule table and applies it.
func (a *Applier) ApplyEffect(ctx context.Context, e ledger.Effect) error {
	d, err := e.Deltas()
	if err != nil {
		return err
	}
	return a.Apply(ctx, d)
}

// Reverse applies the exact inverse of a previously applied effect, used
// when the event row is deleted.
func (a *Applier) Reverse(ctx context.Context, e ledger.Effect) error {
	d, err := e.Deltas()
	if err != nil {
		return err
	}
	return a.Apply(ctx, d.Reversed())
}

// ApplyDiff moves balances from an effect's old amount to its new amount,
// used when the event row is edited in place.
func (a *Applier) ApplyDiff(ctx context.Context, kind ledger.EventKind, sinkID string, oldAmount, newAmount decimal.Decimal) error {
	d, err := ledger.Diff(kind, sinkID, oldAmount, newAmount)
	if err != nil {
		return err
	}
	return a.Apply(ctx, d)
}
