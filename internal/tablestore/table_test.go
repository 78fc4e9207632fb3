package tablestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var itemsSchema = Schema{
	Name:    "items",
	Columns: []string{"id", "name", "price"},
}

func TestNormalize(t *testing.T) {
	t.Run("should keep rows already in canonical shape", func(t *testing.T) {
		// given
		table := &Table{
			Columns: []string{"id", "name", "price"},
			Rows:    [][]string{{"1", "Coffee", "3.50"}},
		}

		// when
		normalized := Normalize(itemsSchema, table)

		// then
		assert.Equal(t, itemsSchema.Columns, normalized.Columns)
		assert.Equal(t, [][]string{{"1", "Coffee", "3.50"}}, normalized.Rows)
	})

	t.Run("should backfill missing columns with empty cells", func(t *testing.T) {
		// given
		table := &Table{
			Columns: []string{"id", "name"},
			Rows:    [][]string{{"1", "Coffee"}},
		}

		// when
		normalized := Normalize(itemsSchema, table)

		// then
		assert.Equal(t, [][]string{{"1", "Coffee", ""}}, normalized.Rows)
	})

	t.Run("should drop columns the schema does not know", func(t *testing.T) {
		// given
		table := &Table{
			Columns: []string{"id", "name", "price", "color"},
			Rows:    [][]string{{"1", "Coffee", "3.50", "black"}},
		}

		// when
		normalized := Normalize(itemsSchema, table)

		// then
		assert.Equal(t, itemsSchema.Columns, normalized.Columns)
		assert.Equal(t, [][]string{{"1", "Coffee", "3.50"}}, normalized.Rows)
	})

	t.Run("should reorder shuffled columns", func(t *testing.T) {
		// given
		table := &Table{
			Columns: []string{"price", "id", "name"},
			Rows:    [][]string{{"3.50", "1", "Coffee"}},
		}

		// when
		normalized := Normalize(itemsSchema, table)

		// then
		assert.Equal(t, [][]string{{"1", "Coffee", "3.50"}}, normalized.Rows)
	})

	t.Run("should pad rows shorter than their header", func(t *testing.T) {
		// given
		table := &Table{
			Columns: []string{"id", "name", "price"},
			Rows:    [][]string{{"1"}},
		}

		// when
		normalized := Normalize(itemsSchema, table)

		// then
		assert.Equal(t, [][]string{{"1", "", ""}}, normalized.Rows)
	})

	t.Run("should turn a nil table into an empty one", func(t *testing.T) {
		// when
		normalized := Normalize(itemsSchema, nil)

		// then
		assert.Equal(t, itemsSchema.Columns, normalized.Columns)
		assert.Empty(t, normalized.Rows)
	})

	t.Run("should not modify the input table", func(t *testing.T) {
		// given
		table := &Table{
			Columns: []string{"name", "id"},
			Rows:    [][]string{{"Coffee", "1"}},
		}

		// when
		_ = Normalize(itemsSchema, table)

		// then
		assert.Equal(t, []string{"name", "id"}, table.Columns)
		assert.Equal(t, [][]string{{"Coffee", "1"}}, table.Rows)
	})
}

func TestTableClone(t *testing.T) {
	// given
	table := NewTable(itemsSchema)
	table.Append([]string{"1", "Coffee", "3.50"})

	// when
	clone := table.Clone()
	clone.Rows[0][1] = "Tea"
	clone.Append([]string{"2", "Cake", "4.00"})

	// then
	assert.Equal(t, "Coffee", table.Rows[0][1])
	assert.Len(t, table.Rows, 1)
}
