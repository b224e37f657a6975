package importer

import "errors"

// Sentinel errors returned by the import pipeline and the format parsers.
// Callers should use [errors.Is] to match against these values.
var (
	// ErrUnsupportedFormat is returned when the declared file extension is
	// not one of the supported container formats (csv, xlsx, xlsm, xml).
	// Fatal: the import aborts before any row is processed.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrMalformedInput is returned when the container content cannot be
	// parsed (broken CSV quoting, corrupt workbook, invalid XML).
	// Fatal: the import aborts with no partial ingestion.
	ErrMalformedInput = errors.New("malformed input")

	// ErrPersistenceFailure wraps an error from the credential writer.
	// The import stops at the failing row; rows persisted before it are
	// retained — there is no compensating rollback.
	ErrPersistenceFailure = errors.New("persistence failure")
)
