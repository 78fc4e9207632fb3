package transaction

import (
	"context"
	"testing"

	"github.com/mnurse06/finance-tracker/internal/tablestore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func newRepo() (*TransactionRepoImpl, *tablestore.MemoryStore) {
	store := tablestore.NewMemoryStore()
	return NewTransactionRepo(store), store
}

func TestTransactionRepo_Store(t *testing.T) {
	t.Run("should assign id 1 to the first transaction", func(t *testing.T) {
		// given
		repo, _ := newRepo()

		// when
		id, err := repo.Store(ctx, Transaction{Date: "2025-07-01", Amount: decimal.NewFromInt(-10), Category: "Food"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, id)
	})

	t.Run("should assign max id plus one", func(t *testing.T) {
		// given
		repo, _ := newRepo()
		_, err := repo.Store(ctx, Transaction{Date: "2025-07-01", Amount: decimal.NewFromInt(-10), Category: "Food"})
		require.NoError(t, err)
		_, err = repo.Store(ctx, Transaction{Date: "2025-07-02", Amount: decimal.NewFromInt(-20), Category: "Food"})
		require.NoError(t, err)

		// when
		id, err := repo.Store(ctx, Transaction{Date: "2025-07-03", Amount: decimal.NewFromInt(-30), Category: "Food"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 3, id)
	})

	t.Run("should fill gaps only above the maximum", func(t *testing.T) {
		// given
		repo, _ := newRepo()
		for i := 0; i < 3; i++ {
			_, err := repo.Store(ctx, Transaction{Date: "2025-07-01", Amount: decimal.NewFromInt(-1), Category: "Food"})
			require.NoError(t, err)
		}
		_, err := repo.Delete(ctx, 3)
		require.NoError(t, err)

		// when: survivors were renumbered 1..2, so the next id is 3 again
		id, err := repo.Store(ctx, Transaction{Date: "2025-07-04", Amount: decimal.NewFromInt(-4), Category: "Food"})

		// then
		require.NoError(t, err)
		assert.Equal(t, 3, id)
	})
}

func TestTransactionRepo_StoreAll(t *testing.T) {
	t.Run("should append a batch with sequential ids", func(t *testing.T) {
		// given
		repo, _ := newRepo()
		_, err := repo.Store(ctx, Transaction{Date: "2025-07-01", Amount: decimal.NewFromInt(100), Category: "Income"})
		require.NoError(t, err)

		// when
		err = repo.StoreAll(ctx, []Transaction{
			{Date: "2025-07-02", Amount: decimal.NewFromInt(-5), Category: "Bills"},
			{Date: "2025-07-03", Amount: decimal.NewFromInt(-6), Category: "Bills"},
		})

		// then
		require.NoError(t, err)
		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, 2, all[1].ID)
		assert.Equal(t, 3, all[2].ID)
	})

	t.Run("should do nothing for an empty batch", func(t *testing.T) {
		// given
		repo, _ := newRepo()

		// when
		err := repo.StoreAll(ctx, nil)

		// then
		require.NoError(t, err)
		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}

func TestTransactionRepo_Update(t *testing.T) {
	t.Run("should replace the matching row", func(t *testing.T) {
		// given
		repo, _ := newRepo()
		id, err := repo.Store(ctx, Transaction{Date: "2025-07-01", Amount: decimal.NewFromInt(-10), Category: "Food", Note: "old"})
		require.NoError(t, err)

		// when
		ok, err := repo.Update(ctx, Transaction{ID: id, Date: "2025-07-05", Amount: decimal.NewFromInt(-15), Category: "Shopping", Note: "new"})

		// then
		require.NoError(t, err)
		assert.True(t, ok)
		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "2025-07-05", all[0].Date)
		assert.Equal(t, "Shopping", all[0].Category)
		assert.Equal(t, "new", all[0].Note)
		assert.Equal(t, "-15", all[0].Amount.String())
	})

	t.Run("should report a missing transaction", func(t *testing.T) {
		// given
		repo, _ := newRepo()

		// when
		ok, err := repo.Update(ctx, Transaction{ID: 42, Date: "2025-07-05", Amount: decimal.Zero, Category: "Food"})

		// then
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestTransactionRepo_Delete(t *testing.T) {
	t.Run("should renumber survivors to a dense sequence", func(t *testing.T) {
		// given
		repo, _ := newRepo()
		notes := []string{"first", "second", "third"}
		for _, note := range notes {
			_, err := repo.Store(ctx, Transaction{Date: "2025-07-01", Amount: decimal.NewFromInt(-1), Category: "Food", Note: note})
			require.NoError(t, err)
		}

		// when
		ok, err := repo.Delete(ctx, 2)

		// then
		require.NoError(t, err)
		assert.True(t, ok)
		all, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, 1, all[0].ID)
		assert.Equal(t, "first", all[0].Note)
		assert.Equal(t, 2, all[1].ID)
		assert.Equal(t, "third", all[1].Note)
	})

	t.Run("should report a missing transaction", func(t *testing.T) {
		// given
		repo, _ := newRepo()

		// when
		ok, err := repo.Delete(ctx, 9)

		// then
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestTransactionRepo_GetAll(t *testing.T) {
	t.Run("should treat malformed amount cells as zero", func(t *testing.T) {
		// given
		store := tablestore.NewMemoryStore()
		table := tablestore.NewTable(Schema)
		table.Append([]string{"1", "2025-07-01", "not-a-number", "Food", ""})
		require.NoError(t, store.Save(ctx, Schema, table))
		repo := NewTransactionRepo(store)

		// when
		all, err := repo.GetAll(ctx)

		// then
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.True(t, all[0].Amount.IsZero())
	})

	t.Run("should keep raw cells of untouched rows across a mutation", func(t *testing.T) {
		// given: a legacy row with a malformed amount
		store := tablestore.NewMemoryStore()
		table := tablestore.NewTable(Schema)
		table.Append([]string{"1", "2025-07-01", "oops", "Food", "legacy"})
		require.NoError(t, store.Save(ctx, Schema, table))
		repo := NewTransactionRepo(store)

		// when: appending a new transaction rewrites the whole table
		_, err := repo.Store(ctx, Transaction{Date: "2025-07-02", Amount: decimal.NewFromInt(-5), Category: "Bills"})
		require.NoError(t, err)

		// then: the legacy cell is carried over verbatim, not coerced to "0"
		saved, err := store.Load(ctx, Schema)
		require.NoError(t, err)
		assert.Equal(t, "oops", saved.Rows[0][2])
	})
}
