package budget

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/mnurse06/finance-tracker/internal/tablestore"
)

type BudgetRepo interface {
	GetAll(ctx context.Context) ([]Budget, error)
	// Upsert replaces the budget for the category when one exists and
	// appends a new row otherwise.
	Upsert(ctx context.Context, budget Budget) error
	Delete(ctx context.Context, category string) (bool, error)
}

type BudgetRepoImpl struct {
	store tablestore.Store
}

func NewBudgetRepo(store tablestore.Store) *BudgetRepoImpl {
	return &BudgetRepoImpl{store: store}
}

func (r *BudgetRepoImpl) GetAll(ctx context.Context) ([]Budget, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		log.Errorf("Error fetching budgets: %v", err)
		return nil, fmt.Errorf("fetching budgets: %w", err)
	}
	budgets := make([]Budget, 0, len(table.Rows))
	for _, row := range table.Rows {
		budgets = append(budgets, fromRow(row))
	}
	return budgets, nil
}

func (r *BudgetRepoImpl) Upsert(ctx context.Context, budget Budget) error {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		log.Errorf("Error fetching budgets: %v", err)
		return fmt.Errorf("fetching budgets: %w", err)
	}
	replaced := false
	for i, row := range table.Rows {
		if row[0] == budget.Category {
			table.Rows[i] = toRow(budget)
			replaced = true
			break
		}
	}
	if !replaced {
		table.Append(toRow(budget))
	}
	if err := r.store.Save(ctx, Schema, table); err != nil {
		log.Errorf("Error storing budget: %v", err)
		return fmt.Errorf("storing budget: %w", err)
	}
	return nil
}

func (r *BudgetRepoImpl) Delete(ctx context.Context, category string) (bool, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		log.Errorf("Error fetching budgets: %v", err)
		return false, fmt.Errorf("fetching budgets: %w", err)
	}
	kept := table.Rows[:0]
	found := false
	for _, row := range table.Rows {
		if row[0] == category {
			found = true
			continue
		}
		kept = append(kept, row)
	}
	if !found {
		return false, nil
	}
	table.Rows = kept
	if err := r.store.Save(ctx, Schema, table); err != nil {
		log.Errorf("Error deleting budget: %v", err)
		return false, fmt.Errorf("deleting budget: %w", err)
	}
	return true, nil
}
