package importer

import (
	"bytes"
	"encoding/csv"
	"encoding/xml"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/safepass/safepass/models"
)

// exportColumns fixes the column order of every export format.
var exportColumns = []string{"title", "email", "username", "encrypted_password", "url", "notes"}

// Exporter renders stored credentials to a downloadable file. Secrets are
// exported exactly as stored: wire-format encrypted strings stay encrypted.
type Exporter struct{}

// NewExporter constructs an Exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export renders credentials in the requested format ("csv", "xlsx", "xlsm",
// or "xml"). Returns [ErrUnsupportedFormat] for any other format.
func (e *Exporter) Export(credentials []models.Credential, format string) ([]byte, error) {
	switch normalizeExtension(format) {
	case "csv":
		return e.exportCSV(credentials)
	case "xlsx", "xlsm":
		return e.exportWorkbook(credentials)
	case "xml":
		return e.exportXML(credentials)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

func (e *Exporter) exportCSV(credentials []models.Credential) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportColumns); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}

	for _, c := range credentials {
		if err := w.Write(exportRow(c)); err != nil {
			return nil, fmt.Errorf("writing csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flushing csv: %w", err)
	}

	return buf.Bytes(), nil
}

func (e *Exporter) exportWorkbook(credentials []models.Credential) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	const sheet = "Passwords"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("naming sheet: %w", err)
	}

	for col, header := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("addressing header cell: %w", err)
		}
		if err := file.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("writing header cell: %w", err)
		}
	}

	for i, c := range credentials {
		for col, value := range exportRow(c) {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("addressing cell: %w", err)
			}
			if err := file.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("writing cell: %w", err)
			}
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}

	return buf.Bytes(), nil
}

type xmlExportEntry struct {
	Title             string `xml:"title"`
	Email             string `xml:"email"`
	Username          string `xml:"username"`
	EncryptedPassword string `xml:"encrypted_password"`
	URL               string `xml:"url"`
	Notes             string `xml:"notes"`
}

type xmlExport struct {
	XMLName xml.Name         `xml:"passwords"`
	Entries []xmlExportEntry `xml:"entry"`
}

func (e *Exporter) exportXML(credentials []models.Credential) ([]byte, error) {
	export := xmlExport{Entries: make([]xmlExportEntry, 0, len(credentials))}
	for _, c := range credentials {
		export.Entries = append(export.Entries, xmlExportEntry{
			Title:             c.Title,
			Email:             c.Email,
			Username:          c.Username,
			EncryptedPassword: c.EncryptedPassword,
			URL:               c.URL,
			Notes:             c.Notes,
		})
	}

	body, err := xml.MarshalIndent(export, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling xml export: %w", err)
	}

	return append([]byte(xml.Header), body...), nil
}

func exportRow(c models.Credential) []string {
	return []string{c.Title, c.Email, c.Username, c.EncryptedPassword, c.URL, c.Notes}
}
