package importer

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Field is one raw header/value pair of a source row.
type Field struct {
	Key   string
	Value string
}

// Row is one parsed source row in source column order. Order matters
// downstream: when two raw columns map to the same canonical field, the
// first one in the row wins.
type Row []Field

// RowReader is a lazy, finite, non-restartable sequence of raw rows: one
// pass over the source, [io.EOF] after the last row. Any other error means
// the source is malformed and the whole import must abort.
type RowReader interface {
	Next() (Row, error)
	Close() error
}

// NewRowReader returns a RowReader for the raw bytes of a supported
// container format, selected by the declared file extension (with or
// without a leading dot, any case): "csv", "xlsx", "xlsm", or "xml".
//
// Returns [ErrUnsupportedFormat] for any other extension and
// [ErrMalformedInput] when the container cannot be opened at all.
func NewRowReader(data []byte, extension string) (RowReader, error) {
	switch normalizeExtension(extension) {
	case "csv":
		return newCSVRowReader(data), nil
	case "xlsx", "xlsm":
		return newSheetRowReader(data)
	case "xml":
		return newXMLRowReader(data), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, extension)
	}
}

func normalizeExtension(extension string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(extension), "."))
}

// csvRowReader reads a delimited table: the first record is the header row,
// every following record becomes one Row. Records may have a variable number
// of fields; short rows are padded with empty values and long rows truncated
// to the header width.
type csvRowReader struct {
	reader  *csv.Reader
	headers []string
	started bool
}

func newCSVRowReader(data []byte) *csvRowReader {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	return &csvRowReader{reader: r}
}

func (c *csvRowReader) Next() (Row, error) {
	if !c.started {
		c.started = true

		headers, err := c.reader.Read()
		if errors.Is(err, io.EOF) {
			return nil, io.EOF // empty file: empty sequence, not an error
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading csv header: %w", ErrMalformedInput, err)
		}
		c.headers = headers
	}

	record, err := c.reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading csv record: %w", ErrMalformedInput, err)
	}

	row := make(Row, len(c.headers))
	for i, header := range c.headers {
		value := ""
		if i < len(record) {
			value = record[i]
		}
		row[i] = Field{Key: header, Value: value}
	}

	return row, nil
}

func (c *csvRowReader) Close() error { return nil }
