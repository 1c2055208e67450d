package label

import (
	"errors"
	"fmt"
	"sort"

	"github.com/robotomize/cldrcy/internal/strutil"
)

var (
	ErrInvalidCode  = errors.New("currency code is not valid")
	ErrInvalidEntry = errors.New("currency entry is not valid")
)

// Code is a three-letter ISO 4217 currency code, historical codes included
type Code string

func (c Code) String() string {
	return string(c)
}

// Valid reports whether the code is exactly three ASCII upper-case letters
func (c Code) Valid() bool {
	if len(c) != 3 {
		return false
	}

	for i := 0; i < len(c); i++ {
		if c[i] < 'A' || c[i] > 'Z' {
			return false
		}
	}

	return true
}

// ParseCode validates s as a currency code. Codes are case-sensitive, "eur" is rejected
func ParseCode(s string) (Code, error) {
	c := Code(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidCode, s)
	}

	return c, nil
}

// Entry is the localized display data of one currency
type Entry struct {
	// Symbol is the short form, it equals the code when a locale has no own sign
	Symbol string
	// DisplayName is the full localized name, historical currencies carry a validity range, e.g. "(1993–2006)"
	DisplayName string
}

// ValidityRange returns the parenthesized year range at the end of the display name, e.g. "1993–2006"
func (e Entry) ValidityRange() (string, bool) {
	return strutil.ValidityRange(e.DisplayName)
}

// Historical reports whether the display name is annotated with a validity range
func (e Entry) Historical() bool {
	_, ok := e.ValidityRange()
	return ok
}

type Currency struct {
	Code Code
	Entry
}

// Table is an immutable mapping of currency codes to entries for a single locale
type Table struct {
	version string
	entries map[Code]Entry
	codes   []Code
}

// NewTable copies entries into a new table. An empty version means the table declares none
func NewTable(version string, entries map[Code]Entry) (*Table, error) {
	t := &Table{
		version: version,
		entries: make(map[Code]Entry, len(entries)),
		codes:   make([]Code, 0, len(entries)),
	}

	for code, entry := range entries {
		if !code.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidCode, string(code))
		}

		if entry.Symbol == "" || entry.DisplayName == "" {
			return nil, fmt.Errorf("%w: %s has an empty field", ErrInvalidEntry, code)
		}

		t.entries[code] = entry
		t.codes = append(t.codes, code)
	}

	sort.Slice(t.codes, func(i, j int) bool {
		return t.codes[i] < t.codes[j]
	})

	return t, nil
}

func (t *Table) Lookup(code Code) (Entry, bool) {
	e, ok := t.entries[code]
	return e, ok
}

// Codes returns the sorted codes of the table. The slice is a copy
func (t *Table) Codes() []Code {
	out := make([]Code, len(t.codes))
	copy(out, t.codes)
	return out
}

func (t *Table) Len() int {
	return len(t.codes)
}

// Version returns the data version marker, if the table declares one
func (t *Table) Version() (string, bool) {
	return t.version, t.version != ""
}

// Equal reports whether both tables hold the same version and entries
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}

	if t.version != o.version || len(t.entries) != len(o.entries) {
		return false
	}

	for code, e := range t.entries {
		if oe, ok := o.entries[code]; !ok || oe != e {
			return false
		}
	}

	return true
}
