//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

// Command rouge scores prediction files against target files and writes the
// scores, or their bootstrap confidence intervals, as CSV.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap/zapcore"

	"trpc.group/trpc-go/trpc-rouge-go/batch"
	"trpc.group/trpc-go/trpc-rouge-go/config"
	"trpc.group/trpc-go/trpc-rouge-go/corpus"
	"trpc.group/trpc-go/trpc-rouge-go/errs"
	"trpc.group/trpc-go/trpc-rouge-go/log"
	"trpc.group/trpc-go/trpc-rouge-go/report"
	"trpc.group/trpc-go/trpc-rouge-go/rouge"
	"trpc.group/trpc-go/trpc-rouge-go/scoring"
	"trpc.group/trpc-go/trpc-rouge-go/telemetry/metric"
	"trpc.group/trpc-go/trpc-rouge-go/telemetry/trace"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stderr))
}

// run executes the command and returns the process exit code.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "rouge: %v\n", err)
		if errors.Is(err, errs.ErrInvalidConfig) {
			fmt.Fprintln(stderr, "run 'rouge -h' for usage")
		}
		return 1
	}
	log.SetLevel(cfg.LogLevel)
	log.Default = log.New(zapcore.AddSync(stderr))

	if err := score(ctx, cfg); err != nil {
		log.Errorf("scoring failed: %v", err)
		fmt.Fprintf(stderr, "rouge: %v\n", err)
		return 1
	}
	return 0
}

// parseConfig builds the configuration from defaults, the -config file, the
// environment and finally the flags that were set explicitly.
func parseConfig(args []string, stderr io.Writer) (*config.Config, error) {
	def := config.Default()
	fs := flag.NewFlagSet("rouge", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath     = fs.String("config", "", "Path to a YAML configuration file")
		targetPattern  = fs.String("target_filepattern", "", "Files containing target text, supports **")
		predPattern    = fs.String("prediction_filepattern", "", "Files containing prediction text, supports **")
		output         = fs.String("output_filename", "", "File to write the CSV results to")
		delimiter      = fs.String("delimiter", `\n`, `Record delimiter, escapes \n and \t are understood`)
		rougeTypes     = fs.String("rouge_types", strings.Join(def.RougeTypes, ","), "Comma separated ROUGE types, e.g. rouge1,rouge2,rougeL,rougeLsum")
		useStemmer     = fs.Bool("use_stemmer", def.UseStemmer, "Stem tokens with the Porter stemmer")
		splitSummaries = fs.Bool("split_summaries", def.SplitSummaries, "Split summaries into sentences for rougeLsum")
		aggregate      = fs.Bool("aggregate", def.Aggregate, "Write bootstrap confidence intervals instead of per-record scores")
		samples        = fs.Int("samples", def.Samples, "Number of bootstrap resamples")
		confidence     = fs.Float64("confidence", def.Confidence, "Confidence level of the intervals")
		seed           = fs.Uint64("seed", 0, "Seed of the bootstrap generator, random when unset")
		parallelism    = fs.Int("parallelism", def.Parallelism, "Number of scoring workers, 0 for one per CPU")
		foldAccents    = fs.Bool("fold_accents", def.FoldAccents, "Remove diacritics before tokenization")
		stripMarkdown  = fs.Bool("strip_markdown", def.StripMarkdown, "Render records from Markdown to plain text")
		logLevel       = fs.String("log_level", def.LogLevel, "Log level: debug, info, warn, error or fatal")
		metricsFile    = fs.String("metrics_file", "", "Write run metrics in Prometheus text format to this file")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, errs.InvalidConfigf("%v", err)
	}
	if fs.NArg() > 0 {
		return nil, errs.InvalidConfigf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "target_filepattern":
			cfg.TargetPattern = *targetPattern
		case "prediction_filepattern":
			cfg.PredictionPattern = *predPattern
		case "output_filename":
			cfg.Output = *output
		case "delimiter":
			cfg.Delimiter = config.Unescape(*delimiter)
		case "rouge_types":
			cfg.RougeTypes = config.SplitList(*rougeTypes)
		case "use_stemmer":
			cfg.UseStemmer = *useStemmer
		case "split_summaries":
			cfg.SplitSummaries = *splitSummaries
		case "aggregate":
			cfg.Aggregate = *aggregate
		case "samples":
			cfg.Samples = *samples
		case "confidence":
			cfg.Confidence = *confidence
		case "seed":
			cfg.Seed = seed
		case "parallelism":
			cfg.Parallelism = *parallelism
		case "fold_accents":
			cfg.FoldAccents = *foldAccents
		case "strip_markdown":
			cfg.StripMarkdown = *stripMarkdown
		case "log_level":
			cfg.LogLevel = *logLevel
		case "metrics_file":
			cfg.MetricsFile = *metricsFile
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// score runs one scoring job. The output file is only written when every
// step before it succeeded.
func score(ctx context.Context, cfg *config.Config) error {
	types, err := rouge.ParseTypes(cfg.RougeTypes)
	if err != nil {
		return err
	}
	scorer, err := rouge.New(types,
		rouge.WithStemmer(cfg.UseStemmer),
		rouge.WithAccentFolding(cfg.FoldAccents),
		rouge.WithSplitSummaries(cfg.SplitSummaries),
	)
	if err != nil {
		return err
	}

	_, span := trace.Start(ctx, trace.SpanLoad)
	loader := corpus.NewLoader(
		corpus.WithDelimiter(cfg.Delimiter),
		corpus.WithMarkdownStripping(cfg.StripMarkdown),
	)
	pairs, err := loader.Load(cfg.TargetPattern, cfg.PredictionPattern)
	trace.End(span, err)
	if err != nil {
		return err
	}
	log.Infof("loaded %d record pairs", pairs.Len())

	metrics := metric.New()
	opts := []batch.Option{batch.WithMetrics(metrics)}
	if cfg.Parallelism > 0 {
		opts = append(opts, batch.WithParallelism(cfg.Parallelism))
	}
	if cfg.Aggregate {
		opts = append(opts, batch.WithAggregator(newAggregator(cfg)))
	}
	driver, err := batch.New(scorer, opts...)
	if err != nil {
		return err
	}
	defer driver.Close()

	res, err := driver.Run(ctx, pairs.Targets, pairs.Predictions)
	if err != nil {
		return err
	}

	if cfg.Aggregate {
		aggregates, err := driver.Aggregate(ctx, cfg.Samples, cfg.Confidence)
		if err != nil {
			return err
		}
		err = writeReport(ctx, cfg.Output, func() error {
			return report.WriteAggregatesFile(cfg.Output, aggregates)
		})
		if err != nil {
			return err
		}
	} else {
		err = writeReport(ctx, cfg.Output, func() error {
			return report.WriteScoresFile(cfg.Output, types, res.Scores)
		})
		if err != nil {
			return err
		}
	}
	log.Infof("wrote results of run %s to %s", res.RunID, cfg.Output)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			return errs.NewIOError(cfg.MetricsFile, err)
		}
	}
	return nil
}

func newAggregator(cfg *config.Config) *scoring.BootstrapAggregator {
	every := cfg.Samples / 10
	opts := []scoring.Option{
		scoring.WithProgress(func(metric string, done, total int) {
			log.Debugf("bootstrap %s: %d/%d resamples", metric, done, total)
		}, every),
	}
	if cfg.Seed != nil {
		opts = append(opts, scoring.WithSeed(*cfg.Seed))
	}
	return scoring.NewBootstrapAggregator(opts...)
}

func writeReport(ctx context.Context, path string, write func() error) error {
	_, span := trace.Start(ctx, trace.SpanWrite, trace.KeyOutput.String(path))
	err := write()
	trace.End(span, err)
	return err
}
