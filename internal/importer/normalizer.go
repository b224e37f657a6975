package importer

import "strings"

// Normalizer turns one raw source row into a [Record] using a [ColumnMapper].
// Stateless apart from the shared mapper; safe for concurrent use.
type Normalizer struct {
	mapper *ColumnMapper
}

// NewNormalizer constructs a Normalizer over the given mapper.
func NewNormalizer(mapper *ColumnMapper) *Normalizer {
	return &Normalizer{mapper: mapper}
}

// Normalize maps every raw column of row to its canonical field and cleans
// the values. A value is discarded when it is empty after trimming or equals
// the literal strings "null" or "undefined" (artifacts of sloppy exporters).
// When several raw columns map to the same canonical field, the first one in
// source column order wins; later duplicates are ignored.
//
// Returns nil when the row is degenerate: title, username and URL all empty.
// Degenerate rows are skipped silently — not counted, not warned about.
// Otherwise the title fallback is applied: username when the title is empty,
// the literal "Untitled" when both are.
func (n *Normalizer) Normalize(row Row) *Record {
	assigned := make(map[CanonicalField]string, 6)

	for _, f := range row {
		field, ok := n.mapper.MapColumn(f.Key)
		if !ok {
			continue
		}

		value := strings.TrimSpace(f.Value)
		if value == "" || value == "null" || value == "undefined" {
			continue
		}

		if _, taken := assigned[field]; taken {
			continue // first assignment wins
		}
		assigned[field] = value
	}

	record := &Record{
		Title:    assigned[FieldTitle],
		Email:    assigned[FieldEmail],
		Username: assigned[FieldUsername],
		Secret:   assigned[FieldSecret],
		URL:      assigned[FieldURL],
		Notes:    assigned[FieldNotes],
	}

	if record.Title == "" && record.Username == "" && record.URL == "" {
		return nil
	}

	if record.Title == "" {
		if record.Username != "" {
			record.Title = record.Username
		} else {
			record.Title = "Untitled"
		}
	}

	return record
}
