package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs"

	"github.com/chronos-tachyon/grin/internal/config"
	"github.com/chronos-tachyon/grin/internal/driver"
	"github.com/chronos-tachyon/grin/internal/logging"
	"github.com/chronos-tachyon/grin/internal/metrics"
	fxzerolog "github.com/efectn/fx-zerolog"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

const usage = "Usage: grin [-config FILE] <encode|decode> <infile> <outfile>\n"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("grin", flag.ContinueOnError)
	configPath := fs.String("config", "", "optional YAML config file")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return 2
	}

	command, inPath, outPath := fs.Arg(0), fs.Arg(1), fs.Arg(2)
	var op func(d *driver.Driver, ctx context.Context, in, out string) error
	switch command {
	case driver.OpEncode:
		op = (*driver.Driver).Encode
	case driver.OpDecode:
		op = (*driver.Driver).Decode
	default:
		fmt.Fprintf(fs.Output(), "Invalid command %q. Enter either encode or decode.\n", command)
		fs.Usage()
		return 2
	}

	var (
		d      *driver.Driver
		m      *metrics.Metrics
		logger zerolog.Logger
	)
	app := fx.New(
		fx.Supply(config.Path(*configPath)),
		fx.Provide(config.New),
		fx.Provide(logging.New),
		fx.Provide(metrics.New),
		fx.Provide(driver.New),

		fx.WithLogger(fxzerolog.Init()),
		fx.Populate(&d, &m, &logger),
	)
	if err := app.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "grin: %v\n", err)
		return 1
	}

	status := 0
	if err := op(d, context.Background(), inPath, outPath); err != nil {
		logger.Error().Err(err).Str("op", command).Msg("operation failed")
		status = 1
	}
	if err := m.WriteTextfile(); err != nil {
		logger.Warn().Err(err).Msg("could not write metrics textfile")
	}
	return status
}
