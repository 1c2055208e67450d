package fsys

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/robotomize/cldrcy/internal/codec"
	"github.com/robotomize/cldrcy/label"
	"github.com/robotomize/cldrcy/provider"
	"github.com/robotomize/cldrcy/resources"
)

const fileExt = ".json"

var _ provider.Source = (*source)(nil)

// Embedded returns the source of the tables bundled into the binary
func Embedded() *source {
	return NewSource(resources.FS, resources.Dir)
}

// NewSource returns a source reading <dir>/<locale>.json files from fsys.
// Use os.DirFS to serve tables from disk
func NewSource(fsys fs.FS, dir string) *source {
	if dir == "" {
		dir = "."
	}

	return &source{fsys: fsys, dir: dir}
}

type source struct {
	fsys fs.FS
	dir  string
}

func (s *source) Locales() ([]string, error) {
	entries, err := fs.ReadDir(s.fsys, s.dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", s.dir, err)
	}

	locales := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, fileExt) {
			continue
		}

		locales = append(locales, strings.TrimSuffix(name, fileExt))
	}

	sort.Strings(locales)

	return locales, nil
}

func (s *source) Load(locale string) (*label.Table, error) {
	if locale == "" || strings.ContainsAny(locale, `/\`) {
		return nil, fmt.Errorf("locale %q: %w", locale, fs.ErrInvalid)
	}

	fileName := path.Join(s.dir, locale+fileExt)

	b, err := fs.ReadFile(s.fsys, fileName)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	t, err := codec.Decode(b)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", fileName, err)
	}

	return t, nil
}
