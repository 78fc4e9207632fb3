package tablestore

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
)

// EncodeCSV renders a table as CSV with a header row. The same encoding is
// used for persistence and for exports, so exported files match the stored
// layout exactly.
func EncodeCSV(t *Table) ([]byte, error) {
	var b bytes.Buffer
	writer := csv.NewWriter(&b)

	if err := writer.Write(t.Columns); err != nil {
		return nil, fmt.Errorf("could not write csv header: %w", err)
	}
	for _, row := range t.Rows {
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("could not write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("could not flush csv: %w", err)
	}
	return b.Bytes(), nil
}

// DecodeCSV parses CSV data into a table normalized to the schema. The
// first record is the header; files with unknown, missing, or reordered
// columns are accepted. Empty data decodes as an empty table.
func DecodeCSV(schema Schema, data []byte) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return NewTable(schema), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read csv header: %w", err)
	}

	table := &Table{Columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read csv row: %w", err)
		}
		table.Append(record)
	}

	return Normalize(schema, table), nil
}
