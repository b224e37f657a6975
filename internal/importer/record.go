// Package importer implements the credential import and export pipeline:
// parsing heterogeneous export files (CSV, Excel workbooks, XML) into raw
// rows, reconciling arbitrary column headers to the canonical six-field
// schema, detecting plaintext secrets, optionally encrypting them, and
// handing accepted records to a persistence collaborator.
package importer

// Record is one normalized credential produced from a raw source row.
// It is a transient value: created per import call, handed to the
// persistence collaborator, and never cached or mutated afterwards.
type Record struct {
	// Title is never empty after normalization: when the source row has no
	// title the username is substituted, and "Untitled" when both are absent.
	Title    string
	Email    string
	Username string

	// Secret is either a plaintext value pending encryption or an
	// already-encrypted wire-format string. Empty means absent.
	Secret string

	URL   string
	Notes string
}

// WarningReason classifies an advisory import warning.
type WarningReason string

const (
	// PlaintextSecretDetected marks a row whose secret looked like
	// plaintext and was imported as-is (no passphrase supplied).
	PlaintextSecretDetected WarningReason = "plaintext_secret_detected"

	// PlaintextSecretAutoEncrypted marks a row whose secret looked like
	// plaintext and was encrypted before persistence.
	PlaintextSecretAutoEncrypted WarningReason = "plaintext_secret_auto_encrypted"
)

// Warning is a per-row advisory note. Warnings never abort an import.
type Warning struct {
	// SubjectLabel identifies the affected row for the user: the record's
	// title, falling back to its username, then the literal "Untitled".
	SubjectLabel string `json:"subject_label"`

	Reason WarningReason `json:"reason"`
}

// String renders the warning as a user-facing message.
func (w Warning) String() string {
	switch w.Reason {
	case PlaintextSecretAutoEncrypted:
		return "Plaintext password encrypted for: " + w.SubjectLabel
	default:
		return "Plaintext password detected for: " + w.SubjectLabel
	}
}

// Result is the outcome of one import invocation.
type Result struct {
	// ImportedCount is the number of records successfully persisted.
	ImportedCount int `json:"imported_count"`

	// Warnings holds per-row advisory warnings in source row order.
	Warnings []Warning `json:"warnings,omitempty"`
}
