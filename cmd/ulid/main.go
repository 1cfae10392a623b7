package main

import (
	"context"
	"fmt"
	"os"

	"github.com/weiawesome/wes-io-live/ulid-udf/internal/cli"
	"github.com/weiawesome/wes-io-live/ulid-udf/internal/config"
	"github.com/weiawesome/wes-io-live/ulid-udf/internal/generator"
	"github.com/weiawesome/wes-io-live/ulid-udf/internal/resolver"
	"github.com/weiawesome/wes-io-live/ulid-udf/internal/udf"
	pkglog "github.com/weiawesome/wes-io-live/ulid-udf/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load config")
	}

	pkglog.Init(pkglog.Config{
		Level:       cfg.Log.Level,
		Pretty:      cfg.Log.Pretty,
		ServiceName: "ulid-udf",
	})
	logger := pkglog.L()

	parser, err := cfg.DateParse.DateParser()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build date parser")
	}
	logger.Debug().
		Str("location", cfg.DateParse.Location).
		Bool("prefer_month_first", parser.PreferMonthFirst).
		Bool("retry_ambiguous", parser.RetryAmbiguous).
		Msg("date parser initialized")

	fn := udf.New(resolver.New(parser), generator.NewGenerator())

	ctx := pkglog.WithLogger(context.Background(), logger)
	if err := cli.NewRootCommand(cfg, fn).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
