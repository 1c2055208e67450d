package cldrcy

import (
	"context"
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/cldrcy/internal/strutil"
	"github.com/robotomize/cldrcy/label"
	"github.com/robotomize/cldrcy/provider"
	"github.com/robotomize/cldrcy/provider/fsys"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	ErrLocaleNotFound   = errors.New("locale is not supported")
	ErrCurrencyNotFound = errors.New("currency is not found in locale")
	ErrDataLoad         = errors.New("currency data can not be loaded")
)

// SourceNameEmbedded the name of the source with the tables bundled into the binary
const SourceNameEmbedded = "embedded"

type Option func(*Repository)

type Prior int32

type Provider struct {
	name  string
	prior Prior
	provider.Source
}

// WithSource registers a source of currency tables. For every locale the source with the highest
// priority that lists it serves the whole table; tables of different sources are never merged
func WithSource(name string, source provider.Source, prior Prior) Option {
	return func(r *Repository) {
		r.providers = append(r.providers, &Provider{
			name:   name,
			prior:  prior,
			Source: source,
		})
	}
}

// WithoutSource removes sources by name, e.g. WithoutSource(SourceNameEmbedded) to serve fixtures only
func WithoutSource(names ...string) Option {
	return func(r *Repository) {
		for _, name := range names {
			for idx, p := range r.providers {
				if p.name == name {
					r.providers = append(r.providers[:idx], r.providers[idx+1:]...)
					break
				}
			}
		}
	}
}

// WithLogger set the logger for reporting table loads
func WithLogger(logger *log.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New returns a repository serving the embedded tables plus any sources registered with options.
// Tables are loaded lazily on first access, use Preload to load everything upfront
func New(opts ...Option) *Repository {
	r := &Repository{
		logger: log.New(ioutil.Discard, "", 0),
		providers: []*Provider{
			{
				name:   SourceNameEmbedded,
				prior:  0,
				Source: fsys.Embedded(),
			},
		},
	}

	for _, opt := range opts {
		opt(r)
	}

	sort.SliceStable(r.providers, func(i, j int) bool {
		return r.providers[i].prior > r.providers[j].prior
	})

	return r
}

// Repository gives read-only access to per-locale currency tables. It is safe for concurrent use
type Repository struct {
	logger    *log.Logger
	providers []*Provider

	indexOnce sync.Once
	indexErr  error
	locales   []string
	tables    map[string]*lazyTable
}

type lazyTable struct {
	once   sync.Once
	source *Provider
	table  *label.Table
	err    error
}

// Entry returns the symbol and display name of the currency in the locale
func (r *Repository) Entry(locale string, code label.Code) (label.Entry, error) {
	t, err := r.Table(locale)
	if err != nil {
		return label.Entry{}, err
	}

	e, ok := t.Lookup(code)
	if !ok {
		return label.Entry{}, fmt.Errorf("%w: %s in %s", ErrCurrencyNotFound, code, locale)
	}

	return e, nil
}

// Symbol returns the short display form of the currency in the locale
func (r *Repository) Symbol(locale string, code label.Code) (string, error) {
	e, err := r.Entry(locale, code)
	if err != nil {
		return "", err
	}

	return e.Symbol, nil
}

// Name returns the full display name of the currency in the locale
func (r *Repository) Name(locale string, code label.Code) (string, error) {
	e, err := r.Entry(locale, code)
	if err != nil {
		return "", err
	}

	return e.DisplayName, nil
}

// Exists reports whether the locale has an entry for the currency
func (r *Repository) Exists(locale string, code label.Code) bool {
	_, err := r.Entry(locale, code)
	return err == nil
}

// Codes returns all currency codes of the locale, sorted
func (r *Repository) Codes(locale string) ([]label.Code, error) {
	t, err := r.Table(locale)
	if err != nil {
		return nil, err
	}

	return t.Codes(), nil
}

// Version returns the data version marker of the locale table, if the table declares one
func (r *Repository) Version(locale string) (string, bool, error) {
	t, err := r.Table(locale)
	if err != nil {
		return "", false, err
	}

	v, ok := t.Version()

	return v, ok, nil
}

// Names returns every currency of the locale ordered by display name with the collation rules of the
// locale language. Equal names are ordered by code
func (r *Repository) Names(locale string) ([]label.Currency, error) {
	t, err := r.Table(locale)
	if err != nil {
		return nil, err
	}

	list := make([]label.Currency, 0, t.Len())
	for _, code := range t.Codes() {
		e, _ := t.Lookup(code)
		list = append(list, label.Currency{Code: code, Entry: e})
	}

	// Collator keeps internal buffers, so every call gets its own
	c := collate.New(collationTag(locale))
	sort.SliceStable(list, func(i, j int) bool {
		if n := c.CompareString(list[i].DisplayName, list[j].DisplayName); n != 0 {
			return n < 0
		}

		return list[i].Code < list[j].Code
	})

	return list, nil
}

// Locales returns the identifiers of all locales served by the repository, sorted
func (r *Repository) Locales() ([]string, error) {
	if err := r.verifyIndex(); err != nil {
		return nil, err
	}

	out := make([]string, len(r.locales))
	copy(out, r.locales)

	return out, nil
}

// Table returns the immutable table of the locale, loading it on first access
func (r *Repository) Table(locale string) (*label.Table, error) {
	if err := r.verifyIndex(); err != nil {
		return nil, err
	}

	lt, ok := r.tables[locale]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrLocaleNotFound, locale)
	}

	lt.once.Do(func() {
		t, err := lt.source.Load(locale)
		if err != nil {
			lt.err = fmt.Errorf("%w: locale %s from source %s: %v", ErrDataLoad, locale, lt.source.name, err)
			r.logger.Printf("error: %v", lt.err)
			return
		}

		if t == nil {
			lt.err = fmt.Errorf("%w: locale %s from source %s: empty result", ErrDataLoad, locale, lt.source.name)
			r.logger.Printf("error: %v", lt.err)
			return
		}

		lt.table = t
		r.logger.Printf("loaded locale %s from source %s: %d currencies", locale, lt.source.name, t.Len())
	})

	if lt.err != nil {
		return nil, lt.err
	}

	return lt.table, nil
}

// Preload loads the table of every locale and returns all load failures at once.
// Call it at startup to turn missing or corrupt data into a startup error
func (r *Repository) Preload(ctx context.Context) error {
	if err := r.verifyIndex(); err != nil {
		return err
	}

	var result *multierror.Error

	for _, locale := range r.locales {
		select {
		case <-ctx.Done():
			return fmt.Errorf("preload: %w", ctx.Err())
		default:
		}

		if _, err := r.Table(locale); err != nil {
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

func (r *Repository) verifyIndex() error {
	r.indexOnce.Do(func() {
		r.indexErr = r.buildIndex()
		if r.indexErr != nil {
			r.logger.Printf("error: %v", r.indexErr)
		}
	})

	return r.indexErr
}

// buildIndex assigns every locale to the source with the highest priority that lists it.
// Providers are already sorted by priority
func (r *Repository) buildIndex() error {
	var result *multierror.Error

	tables := make(map[string]*lazyTable)

	for _, p := range r.providers {
		locales, err := p.Locales()
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("source %s: %w", p.name, err))
			continue
		}

		for _, locale := range locales {
			if _, ok := tables[locale]; !ok {
				tables[locale] = &lazyTable{source: p}
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: list locales: %v", ErrDataLoad, err)
	}

	r.tables = tables
	r.locales = make([]string, 0, len(tables))
	for locale := range tables {
		r.locales = append(r.locales, locale)
	}

	sort.Strings(r.locales)

	return nil
}

// collationTag maps a table key to a language tag, unknown keys collate with the root order
func collationTag(locale string) language.Tag {
	tag, err := language.Parse(strutil.LanguageTag(locale))
	if err != nil {
		return language.Und
	}

	return tag
}
