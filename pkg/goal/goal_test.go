package goal

import (
	"context"
	"testing"

	"github.com/mnurse06/finance-tracker/internal/tablestore"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		name   string
		target string
		saved  string
		want   string
	}{
		{name: "partial progress", target: "1000", saved: "250", want: "0.25"},
		{name: "complete goal", target: "1000", saved: "1000", want: "1"},
		{name: "oversaved clamps to one", target: "1000", saved: "1500", want: "1"},
		{name: "negative saved clamps to zero", target: "1000", saved: "-50", want: "0"},
		{name: "zero target reports zero", target: "0", saved: "500", want: "0"},
		{name: "negative target reports zero", target: "-10", saved: "500", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			goal := Goal{
				TargetAmount: decimal.RequireFromString(tt.target),
				CurrentSaved: decimal.RequireFromString(tt.saved),
			}
			assert.True(t, goal.Progress().Equal(decimal.RequireFromString(tt.want)),
				"got %s", goal.Progress())
		})
	}
}

func TestGoalService(t *testing.T) {
	ctx := context.Background()

	t.Run("should create, update, and delete a goal", func(t *testing.T) {
		// given
		service := NewGoalService(NewGoalRepo(tablestore.NewMemoryStore()))

		// when
		created, err := service.Create(ctx, Goal{
			Name:         "Vacation",
			TargetAmount: decimal.NewFromInt(2000),
			TargetDate:   "2025-12-01",
			CurrentSaved: decimal.NewFromInt(300),
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, 1, created.ID)

		// when
		created.CurrentSaved = decimal.NewFromInt(800)
		ok, err := service.Update(ctx, created)

		// then
		require.NoError(t, err)
		assert.True(t, ok)
		goals, err := service.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, "800", goals[0].CurrentSaved.String())

		// when
		ok, err = service.Delete(ctx, created.ID)

		// then
		require.NoError(t, err)
		assert.True(t, ok)
		goals, err = service.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, goals)
	})

	t.Run("should load a goal with empty numeric cells as zeros", func(t *testing.T) {
		// given
		store := tablestore.NewMemoryStore()
		table := tablestore.NewTable(Schema)
		table.Append([]string{"1", "Bare", "", "", ""})
		require.NoError(t, store.Save(ctx, Schema, table))
		service := NewGoalService(NewGoalRepo(store))

		// when
		goals, err := service.GetAll(ctx)

		// then
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.True(t, goals[0].TargetAmount.IsZero())
		assert.True(t, goals[0].Progress().IsZero())
	})
}
