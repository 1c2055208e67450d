package label

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseCode(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		code string
		err  error
	}{
		{name: "test_valid", code: "EUR"},
		{name: "test_historical", code: "ZRZ"},
		{name: "test_lower_case", code: "eur", err: ErrInvalidCode},
		{name: "test_mixed_case", code: "Eur", err: ErrInvalidCode},
		{name: "test_too_short", code: "EU", err: ErrInvalidCode},
		{name: "test_too_long", code: "EURO", err: ErrInvalidCode},
		{name: "test_digits", code: "978", err: ErrInvalidCode},
		{name: "test_empty", code: "", err: ErrInvalidCode},
		{name: "test_non_ascii", code: "ÉUR", err: ErrInvalidCode},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCode(tc.code)
			if diff := cmp.Diff(tc.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("mismatch (-want, +got):\n%s", diff)
			}

			if err == nil && string(got) != tc.code {
				t.Errorf("want %s, got %s", tc.code, got)
			}
		})
	}
}

func TestNewTable(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		entries map[Code]Entry
		err     error
	}{
		{
			name: "test_valid",
			entries: map[Code]Entry{
				"EUR": {Symbol: "€", DisplayName: "euro"},
				"ADP": {Symbol: "ADP", DisplayName: "peseta andorrane"},
			},
		},
		{
			name:    "test_empty",
			entries: map[Code]Entry{},
		},
		{
			name: "test_invalid_code",
			entries: map[Code]Entry{
				"eur": {Symbol: "€", DisplayName: "euro"},
			},
			err: ErrInvalidCode,
		},
		{
			name: "test_empty_symbol",
			entries: map[Code]Entry{
				"EUR": {DisplayName: "euro"},
			},
			err: ErrInvalidEntry,
		},
		{
			name: "test_empty_display_name",
			entries: map[Code]Entry{
				"EUR": {Symbol: "€"},
			},
			err: ErrInvalidEntry,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			table, err := NewTable("", tc.entries)
			if !errors.Is(err, tc.err) {
				diff := cmp.Diff(tc.err, err, cmpopts.EquateErrors())
				t.Fatalf("mismatch (-want, +got):\n%s", diff)
			}

			if err != nil {
				return
			}

			if diff := cmp.Diff(len(tc.entries), table.Len()); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}

			for code, want := range tc.entries {
				got, ok := table.Lookup(code)
				if !ok {
					t.Errorf("%s not found", code)
				}

				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("mismatch (-want, +got):\n%s", diff)
				}
			}
		})
	}
}

func TestTableIsImmutable(t *testing.T) {
	t.Parallel()

	entries := map[Code]Entry{
		"DKK": {Symbol: "kr.", DisplayName: "dansk krone"},
		"EUR": {Symbol: "€", DisplayName: "euro"},
	}

	table, err := NewTable("36", entries)
	if err != nil {
		t.Fatalf("new table: %v", err)
	}

	entries["DKK"] = Entry{Symbol: "DKK", DisplayName: "changed"}
	delete(entries, "EUR")

	codes := table.Codes()
	codes[0] = "XXX"

	if diff := cmp.Diff([]Code{"DKK", "EUR"}, table.Codes()); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}

	got, _ := table.Lookup("DKK")
	if diff := cmp.Diff(Entry{Symbol: "kr.", DisplayName: "dansk krone"}, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestTableVersion(t *testing.T) {
	t.Parallel()

	withVersion, _ := NewTable("36", nil)
	if v, ok := withVersion.Version(); !ok || v != "36" {
		t.Errorf("want version 36, got %q (%v)", v, ok)
	}

	withoutVersion, _ := NewTable("", nil)
	if v, ok := withoutVersion.Version(); ok {
		t.Errorf("want no version, got %q", v)
	}
}

func TestTableEqual(t *testing.T) {
	t.Parallel()

	a, _ := NewTable("36", map[Code]Entry{"EUR": {Symbol: "€", DisplayName: "euro"}})
	b, _ := NewTable("36", map[Code]Entry{"EUR": {Symbol: "€", DisplayName: "euro"}})
	c, _ := NewTable("", map[Code]Entry{"EUR": {Symbol: "€", DisplayName: "euro"}})
	d, _ := NewTable("36", map[Code]Entry{"EUR": {Symbol: "EUR", DisplayName: "euro"}})

	if !a.Equal(b) {
		t.Errorf("equal tables reported different")
	}

	if a.Equal(c) {
		t.Errorf("tables with different versions reported equal")
	}

	if a.Equal(d) {
		t.Errorf("tables with different symbols reported equal")
	}

	var nilTable *Table
	if a.Equal(nilTable) || !nilTable.Equal(nil) {
		t.Errorf("nil handling is wrong")
	}
}

func TestEntryHistorical(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		entry      Entry
		historical bool
	}{
		{entry: Entry{Symbol: "ZRZ", DisplayName: "Zairean Zaire (1971–1993)"}, historical: true},
		{entry: Entry{Symbol: "ZWL", DisplayName: "Zimbabwean Dollar (2009)"}, historical: true},
		{entry: Entry{Symbol: "ZAL", DisplayName: "South African Rand (financial)"}},
		{entry: Entry{Symbol: "€", DisplayName: "euro"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.entry.DisplayName, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tc.historical, tc.entry.Historical()); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}
