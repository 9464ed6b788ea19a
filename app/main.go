package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/findora-hu/findora/app/api"
	appcfg "github.com/findora-hu/findora/app/cfg"
	"github.com/findora-hu/findora/app/catalog"
	"github.com/findora-hu/findora/app/category"
	"github.com/findora-hu/findora/app/database"
	"github.com/findora-hu/findora/app/feed"
	"github.com/findora-hu/findora/app/partner"
	"github.com/findora-hu/findora/app/search"
	"github.com/findora-hu/findora/app/store"
	"github.com/findora-hu/findora/app/tasks"
)

func main() {
	// feed URLs live in the environment; a local .env is optional
	_ = godotenv.Load()

	cfg, err := appcfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg == nil {
		// help was shown
		return
	}

	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Findora Catalog", "version", cfg.Version)

	db, err := database.Connect(cfg.DBFile)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	migrationVersion, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "migration_version", migrationVersion, "dirty", dirty)

	configCache := partner.NewConfigCache(cfg.PartnersDir)
	if err := configCache.Run(); err != nil {
		slog.Error("Failed to load partner configurations", "dir", cfg.PartnersDir, "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded partner configurations", "count", configCache.GetConfigCount())

	rules, err := category.LoadRuleMap(cfg.CategoryMapFile)
	if err != nil {
		slog.Error("Failed to load category rule map", "file", cfg.CategoryMapFile, "error", err)
		os.Exit(1)
	}

	indexer, err := search.NewIndexer(cfg.SearchAddr, cfg.SearchAPIKey, cfg.SearchIndex, cfg.SearchBatchSize)
	if err != nil {
		slog.Error("Failed to create search indexer", "error", err)
		os.Exit(1)
	}
	if indexer == nil {
		slog.Info("Search push disabled (SEARCH_ADDR not set)")
	}

	catalogStore := store.NewStore(store.NewFileFetcher(cfg.OutDir))

	b := &builder{
		cfg:         cfg,
		configCache: configCache,
		httpClient:  &http.Client{},
		resolver:    feed.NewResolver(),
		classifier:  category.NewClassifier(rules),
		deduper:     catalog.NewDeduper(),
		writer:      catalog.NewWriter(cfg.OutDir),
		runRepo:     database.NewRunRepository(db),
		collector:   tasks.NewCollector(),
		indexer:     indexer,
		store:       catalogStore,
	}

	scheduler := tasks.NewScheduler()
	scheduler.Start()
	defer scheduler.Stop()

	if !cfg.Serve {
		if err := b.runRebuild(context.Background(), scheduler); err != nil {
			slog.Error("Catalog build failed", "error", err)
			os.Exit(1)
		}
		return
	}

	runServer(cfg, b, scheduler, configCache, catalogStore)
}

// builder bundles the pipeline components a catalog rebuild needs.
type builder struct {
	cfg         *appcfg.Cfg
	configCache *partner.ConfigCache
	httpClient  *http.Client
	resolver    *feed.Resolver
	classifier  *category.Classifier
	deduper     *catalog.Deduper
	writer      *catalog.Writer
	runRepo     database.RunRepository
	collector   *tasks.Collector
	indexer     *search.Indexer
	store       *store.Store
}

// runRebuild processes every enabled partner through the worker pool, then
// publishes partners.json and pushes the combined catalog to the search
// index. An all-partner total of zero items is an error.
func (b *builder) runRebuild(ctx context.Context, scheduler tasks.TaskSchedulerInterface) error {
	started := time.Now()
	b.collector.Reset()

	configs := b.configCache.GetEnabledConfigs()
	if len(configs) == 0 {
		return fmt.Errorf("no enabled partner configurations in %s", b.cfg.PartnersDir)
	}

	for _, config := range configs {
		task := tasks.NewBuildPartnerTask(config, b.httpClient, b.resolver, b.classifier,
			b.deduper, b.writer, b.runRepo, b.collector, b.cfg.UserAgent,
			b.cfg.PageSize, b.cfg.CategoryPageSize, b.cfg.DealsPageSize, b.cfg.DealsMinDiscount)
		if err := scheduler.EnqueueTask(task); err != nil {
			slog.Warn("Failed to enqueue BuildPartnerTask", "partner", config.ID, "error", err)
		}
	}

	scheduler.Wait()

	if err := partner.WritePartnersList(b.cfg.OutDir, b.configCache.GetConfigs()); err != nil {
		return fmt.Errorf("failed to write partners.json: %w", err)
	}

	results := b.collector.Results()
	total := 0
	for _, items := range results {
		total += len(items)
	}
	if total == 0 {
		return fmt.Errorf("no items produced by any partner")
	}

	if err := b.pushSearchIndex(ctx, results); err != nil {
		return err
	}

	// invalidate any hydrated data from the previous catalog
	b.store.ActivateView()

	slog.Info("Catalog rebuild completed", "partners", len(results), "items", total, "duration", time.Since(started))
	return nil
}

func (b *builder) pushSearchIndex(ctx context.Context, results map[string][]feed.Item) error {
	if b.indexer == nil {
		return nil
	}

	var docs []search.Document
	for partnerID, items := range results {
		partnerName := partnerID
		if config, err := b.configCache.GetConfig(partnerID); err == nil {
			partnerName = config.Name
		}
		for _, item := range items {
			docs = append(docs, search.FromItem(item, partnerName))
		}
	}

	if err := b.indexer.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear search index: %w", err)
	}
	if err := b.indexer.Push(ctx, docs); err != nil {
		return fmt.Errorf("failed to push search index: %w", err)
	}

	slog.Info("Search index updated", "documents", len(docs))
	return nil
}

// runServer starts the HTTP server and rebuilds the catalog on a ticker
// until interrupted.
func runServer(cfg *appcfg.Cfg, b *builder, scheduler tasks.TaskSchedulerInterface,
	configCache *partner.ConfigCache, catalogStore *store.Store) {

	rebuildCtx, cancelRebuild := context.WithCancel(context.Background())
	defer cancelRebuild()

	go func() {
		if err := b.runRebuild(rebuildCtx, scheduler); err != nil {
			slog.Error("Catalog build failed", "error", err)
		}

		ticker := time.NewTicker(time.Duration(cfg.RebuildInterval) * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-rebuildCtx.Done():
				return
			case <-ticker.C:
				if err := b.runRebuild(rebuildCtx, scheduler); err != nil {
					slog.Error("Catalog rebuild failed", "error", err)
				}
			}
		}
	}()

	handler := api.NewHandler(configCache, b.runRepo, catalogStore)
	server := api.NewServer(handler, cfg.OutDir)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")
	cancelRebuild()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
