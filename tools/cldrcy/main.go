package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/robotomize/cldrcy"
	"github.com/robotomize/cldrcy/internal/logging"
	"github.com/robotomize/cldrcy/label"
	"github.com/robotomize/cldrcy/picker"
	"github.com/robotomize/cldrcy/provider/fsys"
)

const sourceNameDir = "dir"

var ErrNoCommand = errors.New("nothing to do")

var flagCy = flag.NewFlagSet("flagcy", flag.ContinueOnError)

var (
	locale    = flagCy.String("locale", "", "locale identifier, e.g. fr, bs_Cyrl, sr_Latn")
	code      = flagCy.String("code", "", "ISO 4217 currency code, e.g. EUR")
	listFl    = flagCy.Bool("list", false, "print the currency codes of the locale")
	namesFl   = flagCy.Bool("names", false, "print the currencies of the locale sorted by display name")
	versionFl = flagCy.Bool("version", false, "print the data version of the locale")
	localesFl = flagCy.Bool("locales", false, "print all locales")
	selectFl  = flagCy.String("select", "", "render a html select with the given name for the locale")
	dir       = flagCy.String("dir", "", "folder with <locale>.json tables served on top of the bundled ones")
	onlyDirFl = flagCy.Bool("only-dir", false, "serve the tables of -dir only")
	verboseFl = flagCy.Bool("v", false, "log table loads")
	noHistFl  = flagCy.Bool("no-historical", false, "skip historical currencies in -select")
)

type config struct {
	locale       string
	code         string
	list         bool
	names        bool
	version      bool
	locales      bool
	selectName   string
	noHistorical bool
}

func main() {
	ctx := logging.WithLogger(context.Background(), logging.NewLogger("Cldrcy: ", log.Lmsgprefix))
	logger := logging.FromContext(ctx)

	if err := flagCy.Parse(os.Args[1:]); err != nil {
		logger.Fatalf("flag parse: %v", err)
	}

	var opts []cldrcy.Option
	if *verboseFl {
		opts = append(opts, cldrcy.WithLogger(logger))
	}

	if *dir != "" {
		opts = append(opts, cldrcy.WithSource(sourceNameDir, fsys.NewSource(os.DirFS(*dir), "."), 1))
		if *onlyDirFl {
			opts = append(opts, cldrcy.WithoutSource(cldrcy.SourceNameEmbedded))
		}
	}

	cfg := config{
		locale:       *locale,
		code:         *code,
		list:         *listFl,
		names:        *namesFl,
		version:      *versionFl,
		locales:      *localesFl,
		selectName:   *selectFl,
		noHistorical: *noHistFl,
	}

	if err := realMain(ctx, os.Stdout, cldrcy.New(opts...), cfg); err != nil {
		if errors.Is(err, ErrNoCommand) {
			flagCy.Usage()
			os.Exit(2)
		}

		logger.Fatal(err)
	}
}

func realMain(ctx context.Context, w io.Writer, r *cldrcy.Repository, cfg config) error {
	logger := logging.FromContext(ctx)

	switch {
	case cfg.locales:
		list, err := r.Locales()
		if err != nil {
			return fmt.Errorf("locales: %w", err)
		}

		for _, l := range list {
			fmt.Fprintln(w, l)
		}
	case cfg.locale == "":
		return ErrNoCommand
	case cfg.code != "":
		c, err := label.ParseCode(cfg.code)
		if err != nil {
			return err
		}

		e, err := r.Entry(cfg.locale, c)
		if err != nil {
			return fmt.Errorf("entry: %w", err)
		}

		fmt.Fprintf(w, "%s\t%s\n", e.Symbol, e.DisplayName)
	case cfg.version:
		v, ok, err := r.Version(cfg.locale)
		if err != nil {
			return fmt.Errorf("version: %w", err)
		}

		if !ok {
			logger.Printf("locale %s declares no version", cfg.locale)
			return nil
		}

		fmt.Fprintln(w, v)
	case cfg.list:
		codes, err := r.Codes(cfg.locale)
		if err != nil {
			return fmt.Errorf("codes: %w", err)
		}

		for _, c := range codes {
			fmt.Fprintln(w, c)
		}
	case cfg.names:
		list, err := r.Names(cfg.locale)
		if err != nil {
			return fmt.Errorf("names: %w", err)
		}

		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, c := range list {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Code, c.Symbol, c.DisplayName)
		}

		if err := tw.Flush(); err != nil {
			return fmt.Errorf("flush: %w", err)
		}
	case cfg.selectName != "":
		var opts []picker.Opt
		if cfg.noHistorical {
			opts = append(opts, picker.WithoutHistorical())
		}

		options, err := picker.Options(r, cfg.locale, opts...)
		if err != nil {
			return fmt.Errorf("picker: %w", err)
		}

		if err := picker.Render(w, cfg.selectName, options); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	default:
		return ErrNoCommand
	}

	return nil
}
