package importer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/safepass/safepass/internal/crypto"
	"github.com/safepass/safepass/internal/logger"
)

// Pipeline orchestrates one import invocation: parse → normalize → detect
// plaintext → optionally encrypt → persist. Rows are processed strictly
// sequentially so that warnings preserve source order and a persistence
// failure stops the pipeline deterministically at the offending row.
//
// The pipeline holds no per-import state and is safe for concurrent use by
// imports of different subjects.
type Pipeline struct {
	cipher     crypto.CredentialCipher
	normalizer *Normalizer

	logger *logger.Logger
}

// NewPipeline constructs a Pipeline over the shared column mapper and the
// given cipher.
func NewPipeline(cipher crypto.CredentialCipher, logger *logger.Logger) *Pipeline {
	return &Pipeline{
		cipher:     cipher,
		normalizer: NewNormalizer(NewColumnMapper()),
		logger:     logger,
	}
}

// Import parses data according to the declared file extension and feeds the
// normalized records to writer, one call per accepted record, in source
// order. ImportedCount counts only successful Persist calls.
//
// When a row's secret looks like plaintext:
//   - with a non-empty passphrase the secret is encrypted with a key derived
//     once per call (never per row) and the row gets a
//     [PlaintextSecretAutoEncrypted] warning;
//   - with an empty passphrase the secret is imported unchanged and the row
//     gets a [PlaintextSecretDetected] warning.
//
// Failure modes: [ErrUnsupportedFormat] and [ErrMalformedInput] abort before
// any record is persisted; a Persist error aborts the remainder of the
// import wrapped in [ErrPersistenceFailure], with already-persisted rows
// retained and the partial Result returned alongside the error. Degenerate
// rows (no title, username, or URL) are skipped silently.
func (p *Pipeline) Import(ctx context.Context, data []byte, extension, subjectID, passphrase string, writer CredentialWriter) (Result, error) {
	log := logger.FromContext(ctx)

	reader, err := NewRowReader(data, extension)
	if err != nil {
		return Result{}, err
	}
	defer reader.Close()

	// Drain the parser before touching the store: a malformed container
	// must abort with no partial ingestion, and the parsers are lazy.
	rows, err := readAllRows(reader)
	if err != nil {
		return Result{}, err
	}

	var result Result
	var key []byte // derived lazily, at most once per import

	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		record := p.normalizer.Normalize(row)
		if record == nil {
			continue
		}

		if crypto.LooksPlaintext(record.Secret) {
			if passphrase != "" {
				if key == nil {
					key = p.cipher.DeriveKey(passphrase, subjectID)
				}

				encrypted, err := p.cipher.Encrypt(record.Secret, key)
				if err != nil {
					return result, fmt.Errorf("encrypting secret for %q: %w", record.Title, err)
				}
				record.Secret = encrypted

				result.Warnings = append(result.Warnings, Warning{
					SubjectLabel: record.Title,
					Reason:       PlaintextSecretAutoEncrypted,
				})
			} else {
				result.Warnings = append(result.Warnings, Warning{
					SubjectLabel: record.Title,
					Reason:       PlaintextSecretDetected,
				})
			}
		}

		if err := writer.Persist(ctx, *record); err != nil {
			log.Err(err).
				Str("func", "*Pipeline.Import").
				Int("row", i).
				Str("title", record.Title).
				Msg("persisting imported record failed, aborting remainder")
			return result, fmt.Errorf("%w: row %d (%s): %w", ErrPersistenceFailure, i, record.Title, err)
		}
		result.ImportedCount++
	}

	return result, nil
}

func readAllRows(reader RowReader) ([]Row, error) {
	var rows []Row
	for {
		row, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
