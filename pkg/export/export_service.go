package export

import (
	"context"
	"errors"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/mnurse06/finance-tracker/internal/tablestore"
	"github.com/mnurse06/finance-tracker/pkg/budget"
	"github.com/mnurse06/finance-tracker/pkg/card"
	"github.com/mnurse06/finance-tracker/pkg/goal"
	"github.com/mnurse06/finance-tracker/pkg/subscription"
	"github.com/mnurse06/finance-tracker/pkg/transaction"
)

var ErrUnknownTable = errors.New("unknown table")

// ExportService serializes stored tables for download. The output uses the
// same encoding as file persistence, so an export of a file-backed table is
// byte-identical to the file on disk.
type ExportService interface {
	Tables() []string
	Render(ctx context.Context, table string) ([]byte, error)
}

type ExportServiceImpl struct {
	store   tablestore.Store
	schemas map[string]tablestore.Schema
}

func NewExportService(store tablestore.Store) *ExportServiceImpl {
	schemas := make(map[string]tablestore.Schema)
	for _, schema := range []tablestore.Schema{
		transaction.Schema,
		subscription.Schema,
		card.Schema,
		goal.Schema,
		budget.Schema,
	} {
		schemas[schema.Name] = schema
	}
	return &ExportServiceImpl{store: store, schemas: schemas}
}

// Tables lists the exportable table names in alphabetical order.
func (s *ExportServiceImpl) Tables() []string {
	names := make([]string, 0, len(s.schemas))
	for name := range s.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *ExportServiceImpl) Render(ctx context.Context, table string) ([]byte, error) {
	schema, ok := s.schemas[table]
	if !ok {
		return nil, ErrUnknownTable
	}
	loaded, err := s.store.Load(ctx, schema)
	if err != nil {
		log.Errorf("Error loading table %s for export: %v", table, err)
		return nil, fmt.Errorf("loading table %s: %w", table, err)
	}
	return tablestore.EncodeCSV(loaded)
}
