package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/robotomize/cldrcy/internal/gen"
	"github.com/robotomize/cldrcy/internal/hashio"
	"github.com/robotomize/cldrcy/internal/logging"
)

var flagGen = flag.NewFlagSet("flaggen", flag.ContinueOnError)

var (
	source   = flagGen.String("source", "", "path to the folder with downloaded CLDR documents, <locale>/currencies.json")
	path     = flagGen.String("target", "", "path to the folder with the generated tables, e.g. resources/currencies")
	hashFunc = flagGen.String("hash", "", "hash alg for compare files, variants: md5, sha1, sha256")
)

func main() {
	ctx := logging.WithLogger(context.Background(), logging.NewLogger("Cldrgen: ", log.Lmsgprefix))
	logger := logging.FromContext(ctx)

	if err := flagGen.Parse(os.Args[1:]); err != nil {
		logger.Fatalf("flag parse: %v", err)
	}

	if *source == "" || *path == "" {
		logger.Fatal("use -source <path> -target <path> - folders with CLDR documents and generated tables")
	}

	hasherFunc, err := hashio.Alg(*hashFunc)
	if err != nil {
		logger.Fatal(err)
	}

	if err := gen.Generate(os.DirFS(*source), *path, hasherFunc); err != nil {
		var multiErr *multierror.Error
		if !errors.As(err, &multiErr) {
			logger.Fatal(err)
		}

		for _, wrErr := range multiErr.WrappedErrors() {
			if !errors.Is(wrErr, gen.ErrHashingContentEqual) {
				logger.Fatal(multiErr)
			}
		}

		logger.Printf("warning: %d tables unchanged", len(multiErr.WrappedErrors()))
	}

	logger.Printf("files were completed successfully, generated files are placed in %s", *path)
}
