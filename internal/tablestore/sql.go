package tablestore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// SQLStore persists tables in a relational database, one SQL table per
// logical table. Cells stay TEXT and a hidden seq column keeps row order,
// so the stored shape mirrors the CSV layout. Save replaces all rows of a
// table inside one transaction.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
}

func NewSQLStore(db *sql.DB, dialect Dialect) *SQLStore {
	return &SQLStore{db: db, dialect: dialect}
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) Load(ctx context.Context, schema Schema) (*Table, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY seq",
		quotedList(schema.Columns), quoteIdent(schema.Name))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query table %s: %w", schema.Name, err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	table := NewTable(schema)
	for rows.Next() {
		cells := make([]string, len(schema.Columns))
		ptrs := make([]any, len(cells))
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			err := fmt.Errorf("could not scan row of table %s: %w", schema.Name, err)
			log.Error(err)
			return nil, err
		}
		table.Append(cells)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read table %s: %w", schema.Name, err)
	}
	return table, nil
}

func (s *SQLStore) Save(ctx context.Context, schema Schema, table *Table) error {
	normalized := Normalize(schema, table)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+quoteIdent(schema.Name)); err != nil {
		err := fmt.Errorf("could not clear table %s: %w", schema.Name, err)
		log.Error(err)
		return err
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(schema.Name), quotedList(schema.Columns), s.placeholders(len(schema.Columns)))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		err := fmt.Errorf("could not prepare insert for table %s: %w", schema.Name, err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	for _, row := range normalized.Rows {
		args := make([]any, len(row))
		for i, cell := range row {
			args[i] = cell
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			err := fmt.Errorf("could not insert row into table %s: %w", schema.Name, err)
			log.Error(err)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit table %s: %w", schema.Name, err)
	}
	return nil
}

func (s *SQLStore) placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		if s.dialect == DialectPostgres {
			parts[i] = fmt.Sprintf("$%d", i+1)
		} else {
			parts[i] = "?"
		}
	}
	return strings.Join(parts, ", ")
}

// quoteIdent double-quotes an identifier; column names like "limit" and
// "date" collide with SQL keywords otherwise.
func quoteIdent(name string) string {
	return `"` + name + `"`
}

func quotedList(names []string) string {
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = quoteIdent(name)
	}
	return strings.Join(quoted, ", ")
}
