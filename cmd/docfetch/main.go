package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/angelmondragon/inventory-insights/api/validators"
	"github.com/angelmondragon/inventory-insights/pkg/config"
	"github.com/angelmondragon/inventory-insights/pkg/docstore"
	"github.com/angelmondragon/inventory-insights/pkg/logger"
)

type options struct {
	Collections []string      `json:"collections" validate:"required,min=1,dive,required"`
	PageSize    int           `json:"page_size" validate:"min=1,max=300"`
	Timeout     time.Duration `json:"timeout" validate:"gt=0"`
	ProjectID   string        `json:"project_id" validate:"required"`
}

type documentLister interface {
	ListDocuments(ctx context.Context, collection string) ([]docstore.Document, error)
}

func main() {
	logg := logger.New(logger.Options{ServiceName: "docfetch", Output: os.Stderr})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}
	logg = logger.New(logger.Options{
		ServiceName: "docfetch",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Output:      os.Stderr,
	})

	opts, err := parseOptions(os.Args[1:], cfg.Docstore)
	if err != nil {
		logg.Error(context.Background(), "invalid options", err)
		os.Exit(2)
	}

	client, err := docstore.NewClient(opts.ProjectID, cfg.Docstore.APIKey,
		docstore.WithBaseURL(cfg.Docstore.BaseURL),
		docstore.WithPageSize(opts.PageSize),
		docstore.WithHTTPClient(&http.Client{Timeout: opts.Timeout}),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create document store client", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()
	ctx = logg.WithFields(ctx, map[string]any{
		"project":     opts.ProjectID,
		"collections": strings.Join(opts.Collections, ","),
	})

	if err := run(ctx, logg, client, opts.Collections, os.Stdout); err != nil {
		logg.Error(ctx, "fetch failed", err)
		os.Exit(1)
	}
}

func parseOptions(args []string, defaults config.DocstoreConfig) (options, error) {
	fs := flag.NewFlagSet("docfetch", flag.ContinueOnError)
	collections := fs.String("collections", "products,quotes", "comma separated collections to fetch")
	pageSize := fs.Int("page-size", defaultInt(defaults.PageSize, 100), "documents per page")
	timeout := fs.Duration("timeout", defaultDuration(defaults.Timeout, 30*time.Second), "overall fetch deadline")
	project := fs.String("project", defaults.ProjectID, "project id, defaults to PROJECT_ID")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{
		Collections: splitList(*collections),
		PageSize:    *pageSize,
		Timeout:     *timeout,
		ProjectID:   strings.TrimSpace(*project),
	}
	if err := validators.Struct(opts); err != nil {
		return options{}, err
	}
	return opts, nil
}

// run fetches every collection concurrently and writes {collection: [records]} as indented JSON.
func run(ctx context.Context, logg *logger.Logger, client documentLister, collections []string, out io.Writer) error {
	results := make([][]map[string]any, len(collections))

	g, gctx := errgroup.WithContext(ctx)
	for i, collection := range collections {
		g.Go(func() error {
			start := time.Now()
			docs, err := client.ListDocuments(gctx, collection)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", collection, err)
			}
			records := make([]map[string]any, 0, len(docs))
			for _, doc := range docs {
				record := docstore.Flatten(doc)
				if _, ok := record["id"]; !ok {
					record["id"] = doc.ID()
				}
				records = append(records, record)
			}
			results[i] = records
			logg.Info(logg.WithFields(gctx, map[string]any{
				"collection":  collection,
				"documents":   len(records),
				"duration_ms": time.Since(start).Milliseconds(),
			}), "collection fetched")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	payload := make(map[string][]map[string]any, len(collections))
	for i, collection := range collections {
		payload[collection] = results[i]
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func defaultInt(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}

func defaultDuration(v, fallback time.Duration) time.Duration {
	if v > 0 {
		return v
	}
	return fallback
}
