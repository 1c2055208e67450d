package provider

import (
	"github.com/robotomize/cldrcy/label"
)

// Source is an interface for obtaining currency tables. Source knows which locales it can serve
// and loads the table of one locale at a time
//
//go:generate mockgen -source source.go -destination mock_source.go -package provider
type Source interface {
	// Locales lists the locale identifiers available in the source, e.g. "fr", "sr_Latn"
	Locales() ([]string, error)

	// Load reads and decodes the table of a single locale
	Load(locale string) (*label.Table, error)
}
