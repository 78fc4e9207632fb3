package subscription

import (
	"context"
	"fmt"

	"github.com/mnurse06/finance-tracker/internal/tablestore"
	"github.com/mnurse06/finance-tracker/internal/utils"
)

type SubscriptionRepo interface {
	GetAll(ctx context.Context) ([]Subscription, error)
	Store(ctx context.Context, subscription Subscription) (int, error)
	Update(ctx context.Context, subscription Subscription) (bool, error)
	// Delete removes a subscription. Unlike transactions and cards, the
	// surviving ids keep their values.
	Delete(ctx context.Context, id int) (bool, error)
}

type SubscriptionRepoImpl struct {
	store tablestore.Store
}

func NewSubscriptionRepo(store tablestore.Store) *SubscriptionRepoImpl {
	return &SubscriptionRepoImpl{store: store}
}

func (r *SubscriptionRepoImpl) GetAll(ctx context.Context) ([]Subscription, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		return nil, fmt.Errorf("could not load subscriptions: %w", err)
	}
	subscriptions := make([]Subscription, 0, len(table.Rows))
	for _, row := range table.Rows {
		subscriptions = append(subscriptions, fromRow(row))
	}
	return subscriptions, nil
}

func (r *SubscriptionRepoImpl) Store(ctx context.Context, subscription Subscription) (int, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		return 0, fmt.Errorf("could not load subscriptions: %w", err)
	}

	max := 0
	for _, row := range table.Rows {
		if id := utils.ParseID(row[0]); id > max {
			max = id
		}
	}
	subscription.ID = max + 1
	table.Append(toRow(subscription))

	if err := r.store.Save(ctx, Schema, table); err != nil {
		return 0, fmt.Errorf("could not save subscriptions: %w", err)
	}
	return subscription.ID, nil
}

func (r *SubscriptionRepoImpl) Update(ctx context.Context, subscription Subscription) (bool, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		return false, fmt.Errorf("could not load subscriptions: %w", err)
	}

	updated := false
	for i, row := range table.Rows {
		if utils.ParseID(row[0]) == subscription.ID {
			table.Rows[i] = toRow(subscription)
			updated = true
			break
		}
	}
	if !updated {
		return false, nil
	}

	if err := r.store.Save(ctx, Schema, table); err != nil {
		return false, fmt.Errorf("could not save subscriptions: %w", err)
	}
	return true, nil
}

func (r *SubscriptionRepoImpl) Delete(ctx context.Context, id int) (bool, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		return false, fmt.Errorf("could not load subscriptions: %w", err)
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
		return false, fmt.Errorf("could not save subscriptions: %w", err)
	}
	return true, nil
}
