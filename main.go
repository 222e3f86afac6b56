package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"catalog/cmd"
	"catalog/config"
	"catalog/domain/category"
	"catalog/pkg/logger"

	"github.com/google/uuid"
)

type options struct {
	configPath string
	seed       int
	page       string
	perPage    string
	sort       string
	sortDir    string
	filter     string
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "catalog: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() options {
	var o options
	flag.StringVar(&o.configPath, "config", "", "Path to config file")
	flag.IntVar(&o.seed, "seed", 0, "Insert this many generated categories before searching")
	flag.StringVar(&o.page, "page", "", "Page number")
	flag.StringVar(&o.perPage, "per-page", "", "Items per page")
	flag.StringVar(&o.sort, "sort", "", "Sort field (name, created_at)")
	flag.StringVar(&o.sortDir, "sort-dir", "", "Sort direction (asc, desc)")
	flag.StringVar(&o.filter, "filter", "", "Name filter")
	flag.Parse()
	return o
}

func run(o options) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app, err := cmd.NewBuilder(cfg).Build()
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx = logger.ContextWithRequestID(ctx, uuid.NewString())

	if err := app.Seed(ctx, o.seed); err != nil {
		return fmt.Errorf("failed to seed: %w", err)
	}

	in := category.SearchInput{Page: o.page, PerPage: o.perPage, Sort: o.sort, SortDir: o.sortDir}
	if o.filter != "" {
		in.Filter = &o.filter
	}
	res, err := app.Search(ctx, in)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
