package tablestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/mnurse06/finance-tracker/internal/config"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsStore keeps each table on its own worksheet of one Google
// spreadsheet. Load reads the whole worksheet; Save clears it and writes
// header plus rows back in one update.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetId string

	mu     sync.Mutex
	sheets map[string]bool
}

func NewSheetsStore(ctx context.Context, cfg config.Sheets) (*SheetsStore, error) {
	if cfg.SpreadsheetId == "" {
		return nil, fmt.Errorf("sheets backend requires storage.sheets.spreadsheetid")
	}

	opts, err := sheetsClientOptions(ctx, cfg)
	if err != nil {
		return nil, err
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not create sheets service: %w", err)
	}
	return &SheetsStore{svc: svc, spreadsheetId: cfg.SpreadsheetId}, nil
}

func sheetsClientOptions(ctx context.Context, cfg config.Sheets) ([]option.ClientOption, error) {
	scope := option.WithScopes(sheets.SpreadsheetsScope)

	switch {
	case cfg.CredentialsFile != "":
		return []option.ClientOption{option.WithCredentialsFile(cfg.CredentialsFile), scope}, nil
	case cfg.CredentialsJSON != "":
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)), scope}, nil
	case cfg.ClientId != "" && cfg.TokenFile != "":
		conf := &oauth2.Config{
			ClientID:     cfg.ClientId,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsScope},
		}
		token, err := readToken(cfg.TokenFile)
		if err != nil {
			return nil, err
		}
		return []option.ClientOption{option.WithTokenSource(conf.TokenSource(ctx, token)), scope}, nil
	default:
		return nil, fmt.Errorf("sheets backend requires service account credentials or an oauth client with a stored token")
	}
}

func readToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read oauth token file: %w", err)
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("could not parse oauth token file: %w", err)
	}
	return &token, nil
}

func (s *SheetsStore) Load(ctx context.Context, schema Schema) (*Table, error) {
	if err := s.ensureSheet(ctx, schema.Name); err != nil {
		return nil, err
	}

	readRange := fmt.Sprintf("'%s'!A:Z", schema.Name)
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetId, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", schema.Name, err)
	}
	if len(resp.Values) == 0 {
		return NewTable(schema), nil
	}

	table := &Table{Columns: cellsToStrings(resp.Values[0])}
	for _, row := range resp.Values[1:] {
		table.Append(cellsToStrings(row))
	}
	return Normalize(schema, table), nil
}

func (s *SheetsStore) Save(ctx context.Context, schema Schema, table *Table) error {
	if err := s.ensureSheet(ctx, schema.Name); err != nil {
		return err
	}
	normalized := Normalize(schema, table)

	clearRange := fmt.Sprintf("'%s'", schema.Name)
	_, err := s.svc.Spreadsheets.Values.Clear(s.spreadsheetId, clearRange, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("could not clear sheet %s: %w", schema.Name, err)
	}

	values := make([][]interface{}, 0, len(normalized.Rows)+1)
	values = append(values, stringsToCells(normalized.Columns))
	for _, row := range normalized.Rows {
		values = append(values, stringsToCells(row))
	}

	writeRange := fmt.Sprintf("'%s'!A1", schema.Name)
	_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetId, writeRange, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("could not write sheet %s: %w", schema.Name, err)
	}
	return nil
}

// ensureSheet creates the worksheet for a table on first use.
func (s *SheetsStore) ensureSheet(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sheets == nil {
		spreadsheet, err := s.svc.Spreadsheets.Get(s.spreadsheetId).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("could not read spreadsheet metadata: %w", err)
		}
		s.sheets = make(map[string]bool, len(spreadsheet.Sheets))
		for _, sheet := range spreadsheet.Sheets {
			if sheet.Properties != nil {
				s.sheets[sheet.Properties.Title] = true
			}
		}
	}
	if s.sheets[name] {
		return nil
	}

	log.Infof("Creating missing worksheet %s", name)
	request := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: name},
			},
		}},
	}
	if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetId, request).Context(ctx).Do(); err != nil {
		return fmt.Errorf("could not create worksheet %s: %w", name, err)
	}
	s.sheets[name] = true
	return nil
}

func cellsToStrings(cells []interface{}) []string {
	row := make([]string, len(cells))
	for i, cell := range cells {
		row[i] = fmt.Sprint(cell)
	}
	return row
}

func stringsToCells(row []string) []interface{} {
	cells := make([]interface{}, len(row))
	for i, cell := range row {
		cells[i] = cell
	}
	return cells
}
