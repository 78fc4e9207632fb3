package goal

import (
	"context"
	"fmt"

	"github.com/mnurse06/finance-tracker/internal/tablestore"
	"github.com/mnurse06/finance-tracker/internal/utils"
)

type GoalRepo interface {
	GetAll(ctx context.Context) ([]Goal, error)
	Store(ctx context.Context, goal Goal) (int, error)
	Update(ctx context.Context, goal Goal) (bool, error)
	// Delete removes a goal; surviving ids keep their values.
	Delete(ctx context.Context, id int) (bool, error)
}

type GoalRepoImpl struct {
	store tablestore.Store
}

func NewGoalRepo(store tablestore.Store) *GoalRepoImpl {
	return &GoalRepoImpl{store: store}
}

func (r *GoalRepoImpl) GetAll(ctx context.Context) ([]Goal, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		return nil, fmt.Errorf("could not load goals: %w", err)
	}
	goals := make([]Goal, 0, len(table.Rows))
	for _, row := range table.Rows {
		goals = append(goals, fromRow(row))
	}
	return goals, nil
}

func (r *GoalRepoImpl) Store(ctx context.Context, goal Goal) (int, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		return 0, fmt.Errorf("could not load goals: %w", err)
	}

	max := 0
	for _, row := range table.Rows {
		if id := utils.ParseID(row[0]); id > max {
			max = id
		}
	}
	goal.ID = max + 1
	table.Append(toRow(goal))

	if err := r.store.Save(ctx, Schema, table); err != nil {
		return 0, fmt.Errorf("could not save goals: %w", err)
	}
	return goal.ID, nil
}

func (r *GoalRepoImpl) Update(ctx context.Context, goal Goal) (bool, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		return false, fmt.Errorf("could not load goals: %w", err)
	}

	updated := false
	for i, row := range table.Rows {
		if utils.ParseID(row[0]) == goal.ID {
			table.Rows[i] = toRow(goal)
			updated = true
			break
		}
	}
	if !updated {
		return false, nil
	}

	if err := r.store.Save(ctx, Schema, table); err != nil {
		return false, fmt.Errorf("could not save goals: %w", err)
	}
	return true, nil
}

func (r *GoalRepoImpl) Delete(ctx context.Context, id int) (bool, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		return false, fmt.Errorf("could not load goals: %w", err)
	}

	kept := table.Rows[:0]
	deleted := false
	for _, row := range table.Rows {
		if utils.ParseID(row[0]) == id {
			deleted = true
			continue
		}
		kept = append(kept, row)
	}
	if !deleted {
		return false, nil
	}
	table.Rows = kept

	if err := r.store.Save(ctx, Schema, table); err != nil {
		return false, fmt.Errorf("could not save goals: %w", err)
	}
	return true, nil
}
