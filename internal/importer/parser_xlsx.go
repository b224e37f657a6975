package importer

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// sheetRowReader reads the first worksheet of an Excel workbook (xlsx or
// xlsm). The first populated row is the header row; empty cells become empty
// strings so every Row carries the full header width.
type sheetRowReader struct {
	file    *excelize.File
	rows    *excelize.Rows
	headers []string
	started bool
}

func newSheetRowReader(data []byte) (*sheetRowReader, error) {
	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: opening workbook: %w", ErrMalformedInput, err)
	}

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		_ = file.Close()
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrMalformedInput)
	}

	rows, err := file.Rows(sheets[0])
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: reading sheet %q: %w", ErrMalformedInput, sheets[0], err)
	}

	return &sheetRowReader{file: file, rows: rows}, nil
}

func (s *sheetRowReader) Next() (Row, error) {
	if !s.started {
		s.started = true

		if !s.rows.Next() {
			if err := s.rows.Error(); err != nil {
				return nil, fmt.Errorf("%w: reading sheet header: %w", ErrMalformedInput, err)
			}
			return nil, io.EOF // empty sheet: empty sequence
		}

		headers, err := s.rows.Columns()
		if err != nil {
			return nil, fmt.Errorf("%w: reading sheet header: %w", ErrMalformedInput, err)
		}
		s.headers = headers
	}

	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return nil, fmt.Errorf("%w: reading sheet row: %w", ErrMalformedInput, err)
		}
		return nil, io.EOF
	}

	cells, err := s.rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: reading sheet row: %w", ErrMalformedInput, err)
	}

	row := make(Row, len(s.headers))
	for i, header := range s.headers {
		value := ""
		if i < len(cells) {
			value = cells[i]
		}
		row[i] = Field{Key: header, Value: value}
	}

	return row, nil
}

func (s *sheetRowReader) Close() error {
	_ = s.rows.Close()
	return s.file.Close()
}
