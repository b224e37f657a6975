package importer

import (
	"regexp"
	"strings"
)

// CanonicalField names one of the six normalized record attributes.
type CanonicalField string

const (
	FieldTitle    CanonicalField = "title"
	FieldEmail    CanonicalField = "email"
	FieldUsername CanonicalField = "username"
	FieldSecret   CanonicalField = "secret"
	FieldURL      CanonicalField = "url"
	FieldNotes    CanonicalField = "notes"
)

// canonicalFieldOrder fixes the field iteration order for all matching
// phases. The order is part of the mapper's contract: when a header could
// match aliases of several fields, the first field in this sequence wins,
// making tie-breaks reproducible.
var canonicalFieldOrder = [...]CanonicalField{
	FieldTitle,
	FieldEmail,
	FieldUsername,
	FieldSecret,
	FieldURL,
	FieldNotes,
}

// columnAliases maps each canonical field to the ordered header variants
// recognized for it. Aliases are compared after normalization, so case and
// separator variants ("User_Name", "user-name") need no separate entries.
// If two fields ever declare aliases that normalize identically, the field
// declared first in [canonicalFieldOrder] wins.
var columnAliases = map[CanonicalField][]string{
	FieldTitle:    {"site name", "website name", "title", "name", "site", "website", "service", "account", "app", "application"},
	FieldEmail:    {"email address", "e-mail address", "email", "e-mail", "mail"},
	FieldUsername: {"username", "user name", "login name", "account name", "user id", "userid", "login", "user"},
	FieldSecret:   {"encrypted password", "encrypted_password", "password", "pwd", "pass", "secret", "credential"},
	FieldURL:      {"site url", "web address", "site address", "url", "website", "link", "address", "domain"},
	FieldNotes:    {"additional info", "extra", "comments", "comment", "description", "details", "notes", "note", "memo", "info"},
}

var (
	separatorRuns = regexp.MustCompile(`[_\s-]+`)
	nonAlnumSpace = regexp.MustCompile(`[^a-z0-9 ]`)
)

// normalizeHeader canonicalizes a raw header (or alias) for comparison:
// lowercase, runs of underscore/space/hyphen collapsed to a single space,
// all characters outside [a-z0-9 ] stripped, surrounding space trimmed.
func normalizeHeader(s string) string {
	s = strings.ToLower(s)
	s = separatorRuns.ReplaceAllString(s, " ")
	s = nonAlnumSpace.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ColumnMapper reconciles arbitrary raw column headers to canonical fields.
// It is immutable after construction and safe for concurrent use; one
// process-wide instance is shared across imports.
type ColumnMapper struct {
	// aliases holds the normalized alias lists, in declaration order.
	aliases map[CanonicalField][]string
}

// NewColumnMapper builds a ColumnMapper with the alias table pre-normalized.
func NewColumnMapper() *ColumnMapper {
	normalized := make(map[CanonicalField][]string, len(columnAliases))
	for field, aliases := range columnAliases {
		list := make([]string, 0, len(aliases))
		for _, alias := range aliases {
			list = append(list, normalizeHeader(alias))
		}
		normalized[field] = list
	}

	return &ColumnMapper{aliases: normalized}
}

// MapColumn maps a raw header string to a canonical field. It is a pure
// function of the normalized header: two headers that normalize identically
// always map identically.
//
// Matching proceeds in three ordered phases; the first match wins, and
// fields are tried in [canonicalFieldOrder] within each phase:
//
//  1. exact: normalized header equals a normalized alias;
//  2. header contains alias: multi-word aliases match as a literal
//     substring, single-word aliases must equal a whole space-split token
//     of the header (so a header token "user" is not claimed by the alias
//     "username" here — that is phase 3's job);
//  3. alias contains header: only for headers of length >= 3, and only when
//     the alias is at most 4 characters longer than the header, which
//     bounds false positives like matching "id" inside "userid".
//
// Returns false when no phase matches; the caller drops the column's value.
func (m *ColumnMapper) MapColumn(rawHeader string) (CanonicalField, bool) {
	header := normalizeHeader(rawHeader)
	if header == "" {
		return "", false
	}

	// Phase 1: exact match.
	for _, field := range canonicalFieldOrder {
		for _, alias := range m.aliases[field] {
			if header == alias {
				return field, true
			}
		}
	}

	// Phase 2: header contains alias.
	tokens := strings.Fields(header)
	for _, field := range canonicalFieldOrder {
		for _, alias := range m.aliases[field] {
			if strings.Contains(alias, " ") {
				if strings.Contains(header, alias) {
					return field, true
				}
				continue
			}

			for _, token := range tokens {
				if token == alias {
					return field, true
				}
			}
		}
	}

	// Phase 3: alias contains header.
	if len(header) >= 3 {
		for _, field := range canonicalFieldOrder {
			for _, alias := range m.aliases[field] {
				if strings.Contains(alias, header) && len(alias)-len(header) <= 4 {
					return field, true
				}
			}
		}
	}

	return "", false
}
