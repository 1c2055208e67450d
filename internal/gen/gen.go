package gen

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/cldrcy/internal/codec"
	"github.com/robotomize/cldrcy/internal/hashio"
	"github.com/robotomize/cldrcy/internal/strutil"
	"github.com/robotomize/cldrcy/label"
	"golang.org/x/text/unicode/norm"
)

// SourceFileName is the name of the CLDR document inside every <locale> directory of the source
const SourceFileName = "currencies.json"

const SuffixGenFileName = ".json"

var (
	ErrHashingContentEqual = errors.New("hash of the generated file is equivalent to the previous version")
	ErrNoDocument          = errors.New("cldr document has no locale data")
)

var defaultHashTypeFunc = hashio.MD5()

type DocumentFunc func(b []byte, locale string) error

// ReadSource returns an iterator over the <locale>/currencies.json documents of the source
func ReadSource(source fs.FS) func(DocumentFunc) error {
	return func(docFunc DocumentFunc) error {
		entries, err := fs.ReadDir(source, ".")
		if err != nil {
			return fmt.Errorf("read dir: %w", err)
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}

			b, err := fs.ReadFile(source, path.Join(entry.Name(), SourceFileName))
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}

				return fmt.Errorf("read file: %w", err)
			}

			if err := docFunc(b, strutil.LocaleID(entry.Name())); err != nil {
				return fmt.Errorf("call docFunc: %w", err)
			}
		}

		return nil
	}
}

// Generate converts every CLDR document of source into <pathTo>/<locale>.json. Files whose content
// would not change are left untouched and reported with ErrHashingContentEqual
func Generate(source fs.FS, pathTo string, hasherFunc func() hash.Hash) error {
	var multiErr multierror.Group

	if hasherFunc == nil {
		hasherFunc = defaultHashTypeFunc
	}

	target := os.DirFS(pathTo)
	iterFunc := ReadSource(source)

	if err := iterFunc(func(b []byte, locale string) error {
		multiErr.Go(func() error {
			fileName := locale + SuffixGenFileName

			table, err := Convert(b)
			if err != nil {
				return fmt.Errorf("convert %s: %w", locale, err)
			}

			content, err := codec.Encode(table)
			if err != nil {
				return fmt.Errorf("encode %s: %w", locale, err)
			}

			same, err := hashio.SameContent(target, fileName, content, hasherFunc)
			if err != nil {
				return fmt.Errorf("hashing file: %w", err)
			}

			if same {
				return fmt.Errorf("warning: %w, file: %s", ErrHashingContentEqual, fileName)
			}

			if err := os.WriteFile(filepath.Join(pathTo, fileName), content, 0o644); err != nil {
				return fmt.Errorf("save the generated table to a file: %w", err)
			}

			return nil
		})

		return nil
	}); err != nil {
		return fmt.Errorf("iterate func: %w", err)
	}

	if err := multiErr.Wait(); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	return nil
}

// Convert builds a table from a CLDR currencies.json document. A currency without a symbol
// gets its code as symbol, display names are NFC-normalized
func Convert(b []byte) (*label.Table, error) {
	var names CurrencyNames
	if err := json.Unmarshal(b, &names); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	if len(names.Main) != 1 {
		return nil, fmt.Errorf("%w: want one locale, got %d", ErrNoDocument, len(names.Main))
	}

	var doc LocaleDocument
	for _, d := range names.Main {
		doc = d
	}

	entries := make(map[label.Code]label.Entry, len(doc.Numbers.Currencies))
	for code, data := range doc.Numbers.Currencies {
		ccy, err := label.ParseCode(code)
		if err != nil {
			continue
		}

		name := strutil.RemoveExtraSpaces(norm.NFC.String(data.DisplayName))
		if name == "" {
			continue
		}

		symbol := strings.TrimSpace(norm.NFC.String(data.Symbol))
		if symbol == "" {
			symbol = code
		}

		entries[ccy] = label.Entry{Symbol: symbol, DisplayName: name}
	}

	table, err := label.NewTable(majorVersion(doc.Identity.Version.ClDRVersion), entries)
	if err != nil {
		return nil, fmt.Errorf("new table: %w", err)
	}

	return table, nil
}

// majorVersion "36.0.0" -> "36"
func majorVersion(v string) string {
	return strings.SplitN(strings.TrimSpace(v), ".", 2)[0]
}
