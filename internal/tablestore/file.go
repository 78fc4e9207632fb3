package tablestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// FileStore keeps one CSV file per table under a data directory. Every save
// rewrites the whole file; the write goes through a temp file and a rename
// so a crash never leaves a half-written table behind.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(schema Schema) string {
	return filepath.Join(s.dir, schema.Name+".csv")
}

func (s *FileStore) Load(ctx context.Context, schema Schema) (*Table, error) {
	data, err := os.ReadFile(s.path(schema))
	if os.IsNotExist(err) {
		log.Debugf("table file %s does not exist, starting empty", s.path(schema))
		return NewTable(schema), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read table %s: %w", schema.Name, err)
	}
	table, err := DecodeCSV(schema, data)
	if err != nil {
		return nil, fmt.Errorf("could not decode table %s: %w", schema.Name, err)
	}
	return table, nil
}

func (s *FileStore) Save(ctx context.Context, schema Schema, table *Table) error {
	data, err := EncodeCSV(Normalize(schema, table))
	if err != nil {
		return fmt.Errorf("could not encode table %s: %w", schema.Name, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("could not create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, schema.Name+"-*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temp file for table %s: %w", schema.Name, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("could not write table %s: %w", schema.Name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not close temp file for table %s: %w", schema.Name, err)
	}
	if err := os.Rename(tmp.Name(), s.path(schema)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("could not replace table %s: %w", schema.Name, err)
	}
	return nil
}
