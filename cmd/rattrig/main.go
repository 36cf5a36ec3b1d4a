// Command rattrig evaluates triangles read from JSON Lines files.
//
// Each input line holds either three points or three quadrances:
//
//	{"id":"a","points":[["0","0"],["3","0"],["0","4"]]}
//	{"id":"b","quadrances":["5","25","20"]}
//
// Usage:
//
//	rattrig -in triangles.jsonl.zst -out results.jsonl [-type rat] [-workers 8]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hupe1980/rattrig"
	"github.com/hupe1980/rattrig/batch"
	"github.com/hupe1980/rattrig/codec"
	"github.com/hupe1980/rattrig/numeric"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type config struct {
	in          string
	out         string
	typ         string
	compress    string
	codec       string
	workers     int
	rate        float64
	metricsAddr string
	verbose     bool
	veryVerbose bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("rattrig", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.in, "in", "-", "Input file (- for stdin)")
	fs.StringVar(&cfg.out, "out", "-", "Output file (- for stdout)")
	fs.StringVar(&cfg.typ, "type", "rat", "Number type: rat, int, float or decimal")
	fs.StringVar(&cfg.compress, "compress", "none", "Compression of stdin/stdout streams: none, lz4 or zstd")
	fs.StringVar(&cfg.codec, "codec", codec.Default.Name(), "Codec: "+strings.Join(codec.Names(), ", "))
	fs.IntVar(&cfg.workers, "workers", 0, "Concurrent evaluations (0 uses GOMAXPROCS)")
	fs.Float64Var(&cfg.rate, "rate", 0, "Maximum triangles per second (0 disables)")
	fs.StringVar(&cfg.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :2112")
	fs.BoolVar(&cfg.verbose, "v", false, "Set loglevel to INFO")
	fs.BoolVar(&cfg.veryVerbose, "V", false, "Set loglevel to DEBUG")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := rattrig.NewTextLogger(rattrig.VerbosityLevel(cfg.verbose, cfg.veryVerbose))

	var mc rattrig.MetricsCollector = rattrig.NoopMetricsCollector{}
	if cfg.metricsAddr != "" {
		mc = NewPrometheusCollector(prometheus.DefaultRegisterer)
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			logger.Info("serving metrics", "addr", cfg.metricsAddr)
			if err := http.ListenAndServe(cfg.metricsAddr, mux); err != nil {
				logger.Error("metrics server error", "error", err)
			}
		}()
	}

	report, err := execute(ctx, cfg, os.Stdin, os.Stdout, logger, mc)
	if err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "triangles=%d degenerate=%d failed=%d duration=%s\n",
		report.Count, report.DegenerateCount(), report.FailedCount(), report.Duration)
}

func execute(ctx context.Context, cfg config, stdin io.Reader, stdout io.Writer, logger *rattrig.Logger, mc rattrig.MetricsCollector) (*batch.Report, error) {
	c, ok := codec.ByName(cfg.codec)
	if !ok {
		return nil, fmt.Errorf("unknown codec %q", cfg.codec)
	}

	opts := []batch.Option{
		batch.WithCodec(c),
		batch.WithLogger(logger.WithSource(cfg.in)),
		batch.WithMetricsCollector(mc),
		batch.WithRateLimit(cfg.rate),
	}
	if cfg.workers > 0 {
		opts = append(opts, batch.WithWorkers(cfg.workers))
	}

	switch cfg.typ {
	case "rat":
		return runWith(ctx, cfg, numeric.ParseRat, opts, stdin, stdout)
	case "int":
		return runWith(ctx, cfg, numeric.ParseInt, opts, stdin, stdout)
	case "float":
		return runWith(ctx, cfg, numeric.ParseFloat, opts, stdin, stdout)
	case "decimal":
		return runWith(ctx, cfg, numeric.ParseDecimal, opts, stdin, stdout)
	default:
		return nil, fmt.Errorf("unknown number type %q", cfg.typ)
	}
}

func runWith[T numeric.Scalar[T]](ctx context.Context, cfg config, parse func(string) (T, error), opts []batch.Option, stdin io.Reader, stdout io.Writer) (report *batch.Report, err error) {
	ev := batch.New(parse, opts...)

	if cfg.in != "-" && cfg.out != "-" {
		return ev.RunFile(ctx, cfg.in, cfg.out)
	}

	comp, err := batch.ParseCompression(cfg.compress)
	if err != nil {
		return nil, err
	}

	var in io.ReadCloser
	if cfg.in == "-" {
		in, err = batch.NewReader(stdin, comp)
	} else {
		in, err = batch.OpenFile(cfg.in)
	}
	if err != nil {
		return nil, err
	}
	defer in.Close()

	var out io.WriteCloser
	if cfg.out == "-" {
		out, err = batch.NewWriter(stdout, comp)
	} else {
		out, err = batch.CreateFile(cfg.out)
	}
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			report, err = nil, cerr
		}
	}()

	return ev.Run(ctx, in, out)
}
