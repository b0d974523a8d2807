// trendsift-analytics runs the pipeline over one JSONL article batch:
// normalize, collocations, dedupe, salient terms, role relevance, and
// optionally the trend word cloud.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/cognicore/trendsift/internal/batch"
	"github.com/cognicore/trendsift/pkg/trendsift"
	"github.com/cognicore/trendsift/pkg/trendsift/config"
	"github.com/cognicore/trendsift/pkg/trendsift/lingua"
	"github.com/cognicore/trendsift/pkg/trendsift/semantic"
	"github.com/cognicore/trendsift/pkg/trendsift/semantic/gemini"
)

func main() {
	var (
		input      = flag.String("input", "", "Path to JSONL article batch (required)")
		configPath = flag.String("config", "", "Settings YAML (optional, defaults apply)")
		role       = flag.String("role", "", "Role name from settings to evaluate the batch for")
		trends     = flag.Bool("trends", false, "Detect trends and render the word cloud")
		debug      = flag.Bool("debug", false, "Verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if *input == "" {
		log.Fatal("--input required")
	}
	if *role == "" && !*trends {
		log.Fatal("nothing to do: pass --role and/or --trends")
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load settings: %v", err)
		}
		cfg = loaded
	}

	analyzer, err := loadAnalyzer(cfg)
	if err != nil {
		log.Fatalf("load analyzer: %v", err)
	}

	ctx := context.Background()
	model, closeModel, err := loadModel(ctx, cfg)
	if err != nil {
		log.Fatalf("load similarity model: %v", err)
	}
	defer closeModel()

	engine := trendsift.New(trendsift.Options{
		Analyzer: analyzer,
		Semantic: model,
		Settings: cfg,
	})

	articles, err := batch.LoadJSONL(*input)
	if err != nil {
		log.Fatalf("load batch: %v", err)
	}
	slog.Info("batch loaded", "articles", len(articles))

	out := json.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")

	if *role != "" {
		keywords, err := cfg.Keywords(*role)
		if err != nil {
			log.Fatalf("role keywords: %v", err)
		}
		report, err := engine.EvaluateRole(ctx, articles, *role, keywords)
		if err != nil {
			log.Fatalf("evaluate role: %v", err)
		}
		slog.Info("role evaluated", "role", *role, "scored", len(report.Scores))
		if err := out.Encode(report); err != nil {
			log.Fatalf("encode report: %v", err)
		}
	}

	if *trends {
		prepared := engine.Prepare(articles)
		trending, err := engine.DetectTrends(prepared)
		if err != nil {
			log.Fatalf("detect trends: %v", err)
		}
		slog.Info("trends detected", "terms", len(trending))

		path, err := engine.RenderTrendCloud(trending, time.Now())
		if err != nil {
			log.Fatalf("render trend cloud: %v", err)
		}
		slog.Info("trend cloud written", "path", path)
	}
}

// loadAnalyzer builds the offline dictionary analyzer; without a lemma
// table every surface form passes through as its own lemma.
func loadAnalyzer(cfg config.Settings) (lingua.Analyzer, error) {
	if cfg.LemmaDictPath == "" {
		return lingua.NewDictionary(nil), nil
	}
	return lingua.LoadDictionary(cfg.LemmaDictPath)
}

// loadModel prefers the Gemini embedding backend when an API key is in the
// environment, otherwise falls back to the offline vector table.
func loadModel(ctx context.Context, cfg config.Settings) (semantic.Model, func(), error) {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		client, err := gemini.NewClient(ctx, key)
		if err != nil {
			return nil, nil, err
		}
		slog.Debug("using gemini embeddings")
		return client, client.Close, nil
	}

	if cfg.VectorTablePath != "" {
		model, err := semantic.LoadVectorModel(cfg.VectorTablePath)
		if err != nil {
			return nil, nil, err
		}
		return model, func() {}, nil
	}

	slog.Warn("no similarity backend configured, all similarities will be zero")
	return semantic.NewVectorModel(nil), func() {}, nil
}
