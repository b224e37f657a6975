package importer

import "context"

// CredentialWriter is the persistence collaborator of the import pipeline.
// The pipeline calls Persist once per accepted record, in source row order,
// and never issues a call before the previous one has returned.
type CredentialWriter interface {
	Persist(ctx context.Context, record Record) error
}

// CredentialWriterFunc adapts a plain function to the [CredentialWriter]
// interface, the way [net/http.HandlerFunc] does for handlers.
type CredentialWriterFunc func(ctx context.Context, record Record) error

// Persist implements [CredentialWriter].
func (f CredentialWriterFunc) Persist(ctx context.Context, record Record) error {
	return f(ctx, record)
}
