// Package codec reads and writes currency tables in their serialized form:
//
//	{
//	  "Version": "36",
//	  "Names": {
//	    "EUR": ["€", "euro"]
//	  }
//	}
//
// Index 0 of each entry is the symbol, index 1 the display name. Consumers index positionally,
// so the order is part of the format.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/robotomize/cldrcy/label"
)

const (
	symbolIdx = iota
	displayNameIdx
	entryLen
)

var ErrMalformed = errors.New("malformed currency table")

type document struct {
	Version string              `json:"Version,omitempty"`
	Names   map[string][]string `json:"Names"`
}

// Decode parses a serialized table. Unknown fields, entries that are not two strings,
// invalid codes and empty values are rejected
func Decode(b []byte) (*label.Table, error) {
	var doc document

	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformed)
	}

	if doc.Names == nil {
		return nil, fmt.Errorf("%w: Names is missing", ErrMalformed)
	}

	entries := make(map[label.Code]label.Entry, len(doc.Names))
	for code, pair := range doc.Names {
		if len(pair) != entryLen {
			return nil, fmt.Errorf("%w: %s has %d elements, want %d", ErrMalformed, code, len(pair), entryLen)
		}

		entries[label.Code(code)] = label.Entry{
			Symbol:      pair[symbolIdx],
			DisplayName: pair[displayNameIdx],
		}
	}

	t, err := label.NewTable(doc.Version, entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return t, nil
}

// Encode serializes a table. The output is deterministic: codes are sorted, HTML characters are not escaped
func Encode(t *label.Table) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("%w: nil table", ErrMalformed)
	}

	doc := document{Names: make(map[string][]string, t.Len())}
	doc.Version, _ = t.Version()

	for _, code := range t.Codes() {
		e, _ := t.Lookup(code)
		pair := make([]string, entryLen)
		pair[symbolIdx] = e.Symbol
		pair[displayNameIdx] = e.DisplayName
		doc.Names[string(code)] = pair
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(doc); err != nil {
		return nil, fmt.Errorf("json encode: %w", err)
	}

	return buf.Bytes(), nil
}
