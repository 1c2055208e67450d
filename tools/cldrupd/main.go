package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"hash"
	"log"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/cldrcy"
	"github.com/robotomize/cldrcy/internal/gen"
	"github.com/robotomize/cldrcy/internal/hashio"
	"github.com/robotomize/cldrcy/internal/httputil"
	"github.com/robotomize/cldrcy/internal/logging"
	"github.com/robotomize/cldrcy/internal/strutil"
	"github.com/sethvargo/go-retry"
)

const (
	defaultRequestTimeout = 30 * time.Second
	defaultRetryDuration  = 2 * time.Second
)

const cldrJSONBaseURL = "https://raw.githubusercontent.com/unicode-org/cldr-json"

var ErrHashingContentEqual = errors.New("hash of the fetching file is equivalent to the previous version")

// legacyLocales maps bundled identifiers that CLDR no longer publishes to the tag it uses today
var legacyLocales = map[string]string{
	"in": "id",
	"mo": "ro-MD",
	"no": "nb",
}

var flagUpd = flag.NewFlagSet("flagupd", flag.ContinueOnError)

var (
	target    = flagUpd.String("target", "", "path to the folder with the downloaded CLDR documents")
	locales   = flagUpd.String("locales", "", "comma separated locales, the bundled locales by default")
	ref       = flagUpd.String("ref", "main", "cldr-json git ref, a branch or a release tag, e.g. 36.0.0")
	retryNum  = flagUpd.Uint64("retry", 3, "number of repeated requests for failed downloads")
	hashFunc  = flagUpd.String("hash", "", "hash alg for compare files, variants: md5, sha1, sha256")
	timeoutFl = flagUpd.Duration("timeout", defaultRequestTimeout, "timeout of a single download")
)

type config struct {
	baseURL       string
	ref           string
	target        string
	locales       []string
	retryNum      uint64
	retryDuration time.Duration
	timeout       time.Duration
	hasherFunc    func() hash.Hash
}

func main() {
	ctx := logging.WithLogger(context.Background(), logging.NewLogger("Cldrupd: ", log.Lmsgprefix))
	logger := logging.FromContext(ctx)

	if err := flagUpd.Parse(os.Args[1:]); err != nil {
		logger.Fatalf("flag parse: %v", err)
	}

	if *target == "" {
		logger.Fatal("use -target <path> path to the folder with the CLDR documents")
	}

	hasherFunc, err := hashio.Alg(*hashFunc)
	if err != nil {
		logger.Fatal(err)
	}

	list, err := localeList(*locales)
	if err != nil {
		logger.Fatal(err)
	}

	cfg := config{
		baseURL:       cldrJSONBaseURL,
		ref:           *ref,
		target:        *target,
		locales:       list,
		retryNum:      *retryNum,
		retryDuration: defaultRetryDuration,
		timeout:       *timeoutFl,
		hasherFunc:    hasherFunc,
	}

	if err := realMain(ctx, httputil.DefaultSourceHTTPClient(), cfg); err != nil {
		var multiErr *multierror.Error
		if !errors.As(err, &multiErr) {
			logger.Fatal(err)
		}

		for _, wrErr := range multiErr.WrappedErrors() {
			if !errors.Is(wrErr, ErrHashingContentEqual) {
				logger.Fatal(multiErr)
			}
		}

		logger.Printf("warning: %d documents unchanged", len(multiErr.WrappedErrors()))
	}

	logger.Printf("documents were downloaded into %s", *target)
}

// localeList returns the locales from the flag value, or the bundled ones when it is empty
func localeList(flagValue string) ([]string, error) {
	if strings.TrimSpace(flagValue) == "" {
		list, err := cldrcy.New().Locales()
		if err != nil {
			return nil, fmt.Errorf("bundled locales: %w", err)
		}

		return list, nil
	}

	var list []string
	for _, l := range strings.Split(flagValue, ",") {
		if l = strutil.LocaleID(l); l != "" {
			list = append(list, l)
		}
	}

	return list, nil
}

// cldrTag returns the cldr-json directory name of a locale identifier
func cldrTag(locale string) string {
	if tag, ok := legacyLocales[locale]; ok {
		return tag
	}

	return strutil.LanguageTag(locale)
}

func documentURL(baseURL, ref, locale string) (*url.URL, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("url parse: %w", err)
	}

	u.Path = path.Join(u.Path, ref, "cldr-json", "cldr-numbers-full", "main", cldrTag(locale), gen.SourceFileName)

	return u, nil
}

func realMain(ctx context.Context, client httputil.SourceHTTPClient, cfg config) error {
	var multiErr multierror.Group
	logger := logging.FromContext(ctx)

	for _, locale := range cfg.locales {
		locale := locale
		multiErr.Go(func() error {
			u, err := documentURL(cfg.baseURL, cfg.ref, locale)
			if err != nil {
				return fmt.Errorf("%s: %w", locale, err)
			}

			dir := filepath.Join(cfg.target, locale)
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("mkdir: %w", err)
			}

			if err := sync(ctx, client, *u, filepath.Join(dir, gen.SourceFileName), cfg); err != nil {
				return fmt.Errorf("sync %s: %w", locale, err)
			}

			logger.Printf("%s: downloaded %s", locale, u.String())

			return nil
		})
	}

	if err := multiErr.Wait(); err != nil {
		return fmt.Errorf("syncing error: %w", err)
	}

	return nil
}

func sync(ctx context.Context, client httputil.SourceHTTPClient, u url.URL, fileName string, cfg config) error {
	var body []byte

	b, err := retry.NewConstant(cfg.retryDuration)
	if err != nil {
		return fmt.Errorf("retry backoff: %w", err)
	}

	b = retry.WithMaxRetries(cfg.retryNum, b)

	if err := retry.Do(ctx, b, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
		defer cancel()

		resp, err := client.Get(ctx, u)
		if err != nil {
			if errors.Is(err, httputil.ErrNotFound) {
				return err
			}

			return retry.RetryableError(fmt.Errorf("http client get: %w", err))
		}

		body = resp

		return nil
	}); err != nil {
		return err
	}

	same, err := hashio.SameContent(os.DirFS(filepath.Dir(fileName)), filepath.Base(fileName), body, cfg.hasherFunc)
	if err != nil {
		return fmt.Errorf("hashing file content: %w", err)
	}

	if same {
		return ErrHashingContentEqual
	}

	if err := os.WriteFile(fileName, body, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}
