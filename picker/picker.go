// Package picker builds the options of a currency picker from the localized names of a locale.
package picker

import (
	"fmt"
	"html/template"
	"io"

	"github.com/robotomize/cldrcy/label"
)

// Lister returns the currencies of a locale in display order, *cldrcy.Repository implements it
type Lister interface {
	Names(locale string) ([]label.Currency, error)
}

// Option is a single entry of the picker
type Option struct {
	Value    string
	Label    string
	Symbol   string
	Selected bool
}

type Opt func(*options)

type options struct {
	selected       label.Code
	skipHistorical bool
	codes          map[label.Code]struct{}
}

// WithSelected marks the option with the code as selected
func WithSelected(code label.Code) Opt {
	return func(o *options) {
		o.selected = code
	}
}

// WithoutHistorical skips currencies whose display name carries a validity range
func WithoutHistorical() Opt {
	return func(o *options) {
		o.skipHistorical = true
	}
}

// WithCodes limits the picker to the given codes, the display order is kept
func WithCodes(codes ...label.Code) Opt {
	return func(o *options) {
		if o.codes == nil {
			o.codes = make(map[label.Code]struct{}, len(codes))
		}

		for _, c := range codes {
			o.codes[c] = struct{}{}
		}
	}
}

// Options returns the picker options of the locale. Errors of the lister are returned as is
func Options(l Lister, locale string, opts ...Opt) ([]Option, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	list, err := l.Names(locale)
	if err != nil {
		return nil, err
	}

	out := make([]Option, 0, len(list))
	for _, c := range list {
		if o.codes != nil {
			if _, ok := o.codes[c.Code]; !ok {
				continue
			}
		}

		if o.skipHistorical && c.Historical() {
			continue
		}

		out = append(out, Option{
			Value:    c.Code.String(),
			Label:    c.DisplayName,
			Symbol:   c.Symbol,
			Selected: c.Code == o.selected,
		})
	}

	return out, nil
}

var selectTmpl = template.Must(template.New("select").Parse(
	`<select name="{{.Name}}">{{range .Options}}
  <option value="{{.Value}}" data-symbol="{{.Symbol}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}
</select>
`))

// Render writes the options as a html select element
func Render(w io.Writer, name string, options []Option) error {
	if err := selectTmpl.Execute(w, struct {
		Name    string
		Options []Option
	}{
		Name:    name,
		Options: options,
	}); err != nil {
		return fmt.Errorf("execute select template: %w", err)
	}

	return nil
}
