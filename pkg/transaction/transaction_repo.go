package transaction

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mnurse06/finance-tracker/internal/tablestore"
	"github.com/mnurse06/finance-tracker/internal/utils"
)

type TransactionRepo interface {
	GetAll(ctx context.Context) ([]Transaction, error)
	// Store appends one transaction and returns its assigned id.
	Store(ctx context.Context, transaction Transaction) (int, error)
	// StoreAll appends a batch of transactions with a single table save.
	StoreAll(ctx context.Context, transactions []Transaction) error
	Update(ctx context.Context, transaction Transaction) (bool, error)
	// Delete removes a transaction and renumbers the survivors to 1..N.
	Delete(ctx context.Context, id int) (bool, error)
}

// TransactionRepoImpl stores transactions through the table store. Every
// mutation loads the table, changes rows in place, and saves the whole
// table back once. Untouched rows are carried over verbatim, so cells that
// do not parse are preserved rather than rewritten.
type TransactionRepoImpl struct {
	store tablestore.Store
}

func NewTransactionRepo(store tablestore.Store) *TransactionRepoImpl {
	return &TransactionRepoImpl{store: store}
}

func (r *TransactionRepoImpl) GetAll(ctx context.Context) ([]Transaction, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		return nil, fmt.Errorf("could not load transactions: %w", err)
	}
	transactions := make([]Transaction, 0, len(table.Rows))
	for _, row := range table.Rows {
		transactions = append(transactions, fromRow(row))
	}
	return transactions, nil
}

func (r *TransactionRepoImpl) Store(ctx context.Context, transaction Transaction) (int, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		return 0, fmt.Errorf("could not load transactions: %w", err)
	}

	transaction.ID = nextId(table)
	table.Append(toRow(transaction))

	if err := r.store.Save(ctx, Schema, table); err != nil {
		return 0, fmt.Errorf("could not save transactions: %w", err)
	}
	return transaction.ID, nil
}

func (r *TransactionRepoImpl) StoreAll(ctx context.Context, transactions []Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		return fmt.Errorf("could not load transactions: %w", err)
	}

	id := nextId(table)
	for _, transaction := range transactions {
		transaction.ID = id
		table.Append(toRow(transaction))
		id++
	}

	if err := r.store.Save(ctx, Schema, table); err != nil {
		return fmt.Errorf("could not save transactions: %w", err)
	}
	return nil
}

func (r *TransactionRepoImpl) Update(ctx context.Context, transaction Transaction) (bool, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		return false, fmt.Errorf("could not load transactions: %w", err)
	}

	updated := false
	for i, row := range table.Rows {
		if utils.ParseID(row[0]) == transaction.ID {
			table.Rows[i] = toRow(transaction)
			updated = true
			break
		}
	}
	if !updated {
		return false, nil
	}

	if err := r.store.Save(ctx, Schema, table); err != nil {
		return false, fmt.Errorf("could not save transactions: %w", err)
	}
	return true, nil
}

func (r *TransactionRepoImpl) Delete(ctx context.Context, id int) (bool, error) {
	table, err := r.store.Load(ctx, Schema)
	if err != nil {
		return false, fmt.Errorf("could not load transactions: %w", err)
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

	// Surviving rows are renumbered to a dense 1..N sequence. Ids are
	// positional handles here, not stable references.
	for i, row := range table.Rows {
		row[0] = strconv.Itoa(i + 1)
	}

	if err := r.store.Save(ctx, Schema, table); err != nil {
		return false, fmt.Errorf("could not save transactions: %w", err)
	}
	return true, nil
}

// nextId assigns max(id)+1, or 1 for an empty table. Rows with malformed
// ids count as 0.
func nextId(table *tablestore.Table) int {
	max := 0
	for _, row := range table.Rows {
		if id := utils.ParseID(row[0]); id > max {
			max = id
		}
	}
	return max + 1
}
