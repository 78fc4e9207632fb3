package card

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mnurse06/finance-tracker/internal/tablestore"
	"github.com/mnurse06/finance-tracker/internal/utils"
)

type CardRepo interface {
	GetAll(ctx context.Context) ([]Card, error)
	Store(ctx context.Context, card Card) (int, error)
	Update(ctx context.Context, card Card) (bool, error)
	// Delete removes a card and renumbers the survivors to 1..N.
	Delete(ctx context.Context, id int) (bool, error)
}

type CardRepoImpl struct {
	store tablestore.Store
}

func NewCardRepo(store tablestore.Store) *CardRepoImpl {
	return &CardRepoImpl{store: store}
}

func (r *CardRepoImpl) GetAll(ctx context.Context) ([]Card, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		return nil, fmt.Errorf("could not load cards: %w", err)
	}
	cards := make([]Card, 0, len(table.Rows))
	for _, row := range table.Rows {
		cards = append(cards, fromRow(row))
	}
	return cards, nil
}

func (r *CardRepoImpl) Store(ctx context.Context, card Card) (int, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		return 0, fmt.Errorf("could not load cards: %w", err)
	}

	max := 0
	for _, row := range table.Rows {
		if id := utils.ParseID(row[0]); id > max {
			max = id
		}
	}
	card.ID = max + 1
	table.Append(toRow(card))

	if err := r.store.Save(ctx, Schema, table); err != nil {
		return 0, fmt.Errorf("could not save cards: %w", err)
	}
	return card.ID, nil
}

func (r *CardRepoImpl) Update(ctx context.Context, card Card) (bool, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		return false, fmt.Errorf("could not load cards: %w", err)
	}

	updated := false
	for i, row := range table.Rows {
		if utils.ParseID(row[0]) == card.ID {
			table.Rows[i] = toRow(card)
			updated = true
			break
		}
	}
	if !updated {
		return false, nil
	}

	if err := r.store.Save(ctx, Schema, table); err != nil {
		return false, fmt.Errorf("could not save cards: %w", err)
	}
	return true, nil
}

func (r *CardRepoImpl) Delete(ctx context.Context, id int) (bool, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		return false, fmt.Errorf("could not load cards: %w", err)
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

	// Dense renumbering, same contract as transactions.
	for i, row := range table.Rows {
		row[0] = strconv.Itoa(i + 1)
	}

	if err := r.store.Save(ctx, Schema, table); err != nil {
		return false, fmt.Errorf("could not save cards: %w", err)
	}
	return true, nil
}
