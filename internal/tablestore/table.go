package tablestore

// Schema names a logical table and fixes its canonical column order.
type Schema struct {
	Name    string
	Columns []string
}

// Table is an ordered set of records. Rows hold raw string cells in the
// order of Columns; typing is the concern of the entity packages.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewTable returns an empty table with the schema's canonical columns.
func NewTable(schema Schema) *Table {
	columns := make([]string, len(schema.Columns))
	copy(columns, schema.Columns)
	return &Table{Columns: columns, Rows: [][]string{}}
}

// Append adds a row at the end of the table.
func (t *Table) Append(row []string) {
	t.Rows = append(t.Rows, row)
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	columns := make([]string, len(t.Columns))
	copy(columns, t.Columns)
	rows := make([][]string, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = make([]string, len(row))
		copy(rows[i], row)
	}
	return &Table{Columns: columns, Rows: rows}
}

// Normalize reshapes a table to the schema's canonical column order.
// Cells of columns the table does not carry are backfilled empty, columns
// the schema does not know are dropped, and short rows are padded. The
// input table is not modified.
func Normalize(schema Schema, t *Table) *Table {
	if t == nil {
		return NewTable(schema)
	}

	index := make(map[string]int, len(t.Columns))
	for i, column := range t.Columns {
		index[column] = i
	}

	normalized := NewTable(schema)
	for _, row := range t.Rows {
		cells := make([]string, len(schema.Columns))
		for i, column := range schema.Columns {
			src, ok := index[column]
			if ok && src < len(row) {
				cells[i] = row[src]
			}
		}
		normalized.Append(cells)
	}
	return normalized
}
