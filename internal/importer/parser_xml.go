package importer

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// xmlRowReader reads a tagged-markup export: a root <passwords> container
// holding repeated <entry> elements. Each entry's immediate child element
// names become the raw keys of one Row; when a child element repeats, the
// first value wins. Entries outside a <passwords> root are ignored, matching
// the permissive behavior of common password-manager exports.
type xmlRowReader struct {
	decoder *xml.Decoder
	inRoot  bool
}

func newXMLRowReader(data []byte) *xmlRowReader {
	return &xmlRowReader{decoder: xml.NewDecoder(bytes.NewReader(data))}
}

func (x *xmlRowReader) Next() (Row, error) {
	for {
		token, err := x.decoder.Token()
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		if err != nil {
			return nil, fmt.Errorf("%w: reading xml: %w", ErrMalformedInput, err)
		}

		switch element := token.(type) {
		case xml.StartElement:
			switch {
			case element.Name.Local == "passwords" && !x.inRoot:
				x.inRoot = true
			case element.Name.Local == "entry" && x.inRoot:
				return x.readEntry()
			default:
				// Unknown element: skip its whole subtree.
				if err := x.decoder.Skip(); err != nil {
					return nil, fmt.Errorf("%w: reading xml: %w", ErrMalformedInput, err)
				}
			}
		case xml.EndElement:
			if element.Name.Local == "passwords" {
				x.inRoot = false
			}
		}
	}
}

// readEntry consumes tokens until the matching </entry>, collecting the
// character data of each immediate child element.
func (x *xmlRowReader) readEntry() (Row, error) {
	var row Row
	seen := make(map[string]bool)

	for {
		token, err := x.decoder.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: reading xml entry: %w", ErrMalformedInput, err)
		}

		switch element := token.(type) {
		case xml.StartElement:
			value, err := x.readElementText(element)
			if err != nil {
				return nil, err
			}

			if seen[element.Name.Local] {
				continue // multi-valued child: first value wins
			}
			seen[element.Name.Local] = true
			row = append(row, Field{Key: element.Name.Local, Value: value})
		case xml.EndElement:
			if element.Name.Local == "entry" {
				return row, nil
			}
		}
	}
}

// readElementText collects the concatenated character data of an element,
// ignoring any nested markup, until its end tag.
func (x *xmlRowReader) readElementText(start xml.StartElement) (string, error) {
	var text strings.Builder
	depth := 1

	for depth > 0 {
		token, err := x.decoder.Token()
		if err != nil {
			return "", fmt.Errorf("%w: reading xml element %q: %w", ErrMalformedInput, start.Name.Local, err)
		}

		switch element := token.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 1 {
				text.Write(element)
			}
		}
	}

	return text.String(), nil
}

func (x *xmlRowReader) Close() error { return nil }
