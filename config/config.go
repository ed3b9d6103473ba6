//
// Tencent is pleased to support the open source community by making trpc-rouge-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-rouge-go is licensed under the Apache License Version 2.0.
//
//

// Package config loads the settings of a scoring run from defaults, a YAML
// file and ROUGE_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"trpc.group/trpc-go/trpc-rouge-go/errs"
	"trpc.group/trpc-go/trpc-rouge-go/log"
	"trpc.group/trpc-go/trpc-rouge-go/rouge"
	"trpc.group/trpc-go/trpc-rouge-go/scoring"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "ROUGE_"

// Config holds the settings of a scoring run.
type Config struct {
	TargetPattern     string   `yaml:"targetPattern"`
	PredictionPattern string   `yaml:"predictionPattern"`
	Output            string   `yaml:"output"`
	Delimiter         string   `yaml:"delimiter"`
	RougeTypes        []string `yaml:"rougeTypes"`
	UseStemmer        bool     `yaml:"useStemmer"`
	SplitSummaries    bool     `yaml:"splitSummaries"`
	FoldAccents       bool     `yaml:"foldAccents"`
	StripMarkdown     bool     `yaml:"stripMarkdown"`
	Aggregate         bool     `yaml:"aggregate"`
	Samples           int      `yaml:"samples"`
	Confidence        float64  `yaml:"confidence"`
	// Seed fixes the bootstrap generator. Nil picks a seed per run.
	Seed *uint64 `yaml:"seed"`
	// Parallelism is the number of scoring workers, 0 means one per CPU.
	Parallelism int    `yaml:"parallelism"`
	LogLevel    string `yaml:"logLevel"`
	MetricsFile string `yaml:"metricsFile"`
}

// Default returns the default configuration. Patterns and output have no
// default and must be set before Validate passes.
func Default() *Config {
	return &Config{
		Delimiter:  "\n",
		RougeTypes: []string{"rouge1", "rouge2", "rougeL"},
		Aggregate:  true,
		Samples:    scoring.DefaultSamples,
		Confidence: scoring.DefaultConfidence,
		LogLevel:   log.LevelInfo,
	}
}

// Load returns the defaults overlaid with the YAML file at path, when path
// is not empty, and with the environment. Unknown keys in the file are
// rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errs.NewIOError(path, err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, errs.InvalidConfigf("parsing config file %s: %v", path, err)
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overlays the ROUGE_* environment variables that are set, for
// example ROUGE_SAMPLES=500 or ROUGE_ROUGE_TYPES=rouge1,rougeLsum.
func (c *Config) ApplyEnv() error {
	var result *multierror.Error
	str := func(name string, dst *string) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				result = multierror.Append(result, errs.InvalidConfigf("%s%s: %v", EnvPrefix, name, err))
				return
			}
			*dst = b
		}
	}
	integer := func(name string, dst *int) {
		if v, ok := os.LookupEnv(EnvPrefix + name); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				result = multierror.Append(result, errs.InvalidConfigf("%s%s: %v", EnvPrefix, name, err))
				return
			}
			*dst = n
		}
	}

	str("TARGET_PATTERN", &c.TargetPattern)
	str("PREDICTION_PATTERN", &c.PredictionPattern)
	str("OUTPUT", &c.Output)
	str("DELIMITER", &c.Delimiter)
	if v, ok := os.LookupEnv(EnvPrefix + "ROUGE_TYPES"); ok {
		c.RougeTypes = SplitList(v)
	}
	boolean("USE_STEMMER", &c.UseStemmer)
	boolean("SPLIT_SUMMARIES", &c.SplitSummaries)
	boolean("FOLD_ACCENTS", &c.FoldAccents)
	boolean("STRIP_MARKDOWN", &c.StripMarkdown)
	boolean("AGGREGATE", &c.Aggregate)
	integer("SAMPLES", &c.Samples)
	if v, ok := os.LookupEnv(EnvPrefix + "CONFIDENCE"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			result = multierror.Append(result, errs.InvalidConfigf("%sCONFIDENCE: %v", EnvPrefix, err))
		} else {
			c.Confidence = f
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			result = multierror.Append(result, errs.InvalidConfigf("%sSEED: %v", EnvPrefix, err))
		} else {
			c.Seed = &seed
		}
	}
	integer("PARALLELISM", &c.Parallelism)
	str("LOG_LEVEL", &c.LogLevel)
	str("METRICS_FILE", &c.MetricsFile)
	return result.ErrorOrNil()
}

// Validate reports every problem of c at once. The returned error matches
// errs.ErrInvalidConfig.
func (c *Config) Validate() error {
	var result *multierror.Error
	add := func(format string, args ...any) {
		result = multierror.Append(result, errs.InvalidConfigf(format, args...))
	}
	if c.TargetPattern == "" {
		add("target file pattern is required")
	}
	if c.PredictionPattern == "" {
		add("prediction file pattern is required")
	}
	if c.Output == "" {
		add("output file name is required")
	}
	if c.Delimiter == "" {
		add("delimiter must not be empty")
	}
	if _, err := rouge.ParseTypes(c.RougeTypes); err != nil {
		result = multierror.Append(result, err)
	}
	if c.Aggregate {
		if c.Samples <= 0 {
			add("samples must be positive, got %d", c.Samples)
		}
		if c.Confidence <= 0 || c.Confidence >= 1 {
			add("confidence must be in (0, 1), got %v", c.Confidence)
		}
	}
	if c.Parallelism < 0 {
		add("parallelism must not be negative, got %d", c.Parallelism)
	}
	if !log.ValidLevel(c.LogLevel) {
		add("unknown log level %q", c.LogLevel)
	}
	if result == nil {
		return nil
	}
	result.ErrorFormat = formatErrors
	return result
}

// SplitList splits a comma separated list, dropping empty items.
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// Unescape turns the escape sequences \n, \t, \r and \\ typed on a command
// line into the characters they name.
func Unescape(s string) string {
	return unescaper.Replace(s)
}

var unescaper = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\t`, "\t", `\r`, "\r")

func formatErrors(list []error) string {
	msgs := make([]string, len(list))
	for i, err := range list {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d configuration problem(s): %s", len(list), strings.Join(msgs, "; "))
}
