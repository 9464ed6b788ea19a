package tasks

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/findora-hu/findora/app/catalog"
	"github.com/findora-hu/findora/app/category"
	"github.com/findora-hu/findora/app/database"
	"github.com/findora-hu/findora/app/feed"
	"github.com/findora-hu/findora/app/partner"
)

// BuildPartnerTask runs the full pipeline for one partner: fetch its feed
// URLs, resolve and classify every record, deduplicate variants and publish
// the paginated JSON scopes. The result also lands in the batch collector
// for the combined search push.
type BuildPartnerTask struct {
	Task
	PartnerConfig   *partner.Config
	httpClient      *http.Client
	resolver        *feed.Resolver
	classifier      *category.Classifier
	deduper         *catalog.Deduper
	writer          *catalog.Writer
	runRepo         database.RunRepository
	collector       *Collector
	userAgent       string
	pageSize        int
	catPageSize     int
	dealsPageSize   int
	dealsMinPercent int
}

func NewBuildPartnerTask(partnerConfig *partner.Config, httpClient *http.Client,
	resolver *feed.Resolver, classifier *category.Classifier, deduper *catalog.Deduper,
	writer *catalog.Writer, runRepo database.RunRepository, collector *Collector,
	userAgent string, pageSize, catPageSize, dealsPageSize, dealsMinPercent int) *BuildPartnerTask {

	if partnerConfig.Settings.PageSize > 0 {
		pageSize = partnerConfig.Settings.PageSize
	}

	return &BuildPartnerTask{
		Task:            NewTask(TaskTypeBuildPartner, partnerConfig.ID),
		PartnerConfig:   partnerConfig,
		httpClient:      httpClient,
		resolver:        resolver,
		classifier:      classifier,
		deduper:         deduper,
		writer:          writer,
		runRepo:         runRepo,
		collector:       collector,
		userAgent:       userAgent,
		pageSize:        pageSize,
		catPageSize:     catPageSize,
		dealsPageSize:   dealsPageSize,
		dealsMinPercent: dealsMinPercent,
	}
}

func (t *BuildPartnerTask) Execute(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	urls := t.PartnerConfig.FeedURLs()
	if len(urls) == 0 {
		slog.Warn("No feed URLs configured, skipping partner", "partner", t.PartnerID, "env", t.PartnerConfig.Settings.FeedEnv)
		return nil
	}

	items, dropped, err := t.collectItems(ctx, urls)
	if err != nil {
		t.recordRun("failed", 0, 0, err)
		return err
	}

	before := len(items)
	items = t.deduper.Run(items)

	// variant grouping keys on the raw product URL, so deeplink wrapping
	// must happen after dedup
	for i := range items {
		items[i].URL = t.PartnerConfig.DeeplinkURL(items[i].URL)
	}

	catalog.Sort(items)

	pageCount, err := t.publish(items)
	if err != nil {
		t.recordRun("failed", len(items), 0, err)
		return fmt.Errorf("failed to publish catalog: %w", err)
	}

	t.recordRun("success", len(items), pageCount, nil)
	t.collector.Add(t.PartnerID, items)

	slog.Info("Task completed",
		"type", "BuildPartner",
		"partner", t.PartnerID,
		"duration", t.GetDuration(),
		"urls", len(urls),
		"items", len(items),
		"dropped", dropped,
		"merged", before-len(items),
		"pages", pageCount)

	return nil
}

// collectItems fetches and decodes every feed URL, then resolves and
// classifies the records. Malformed records are dropped and a failed URL
// only logs a warning; the partner fails when every URL failed.
func (t *BuildPartnerTask) collectItems(ctx context.Context, urls []string) ([]feed.Item, int, error) {
	var items []feed.Item
	dropped := 0
	failed := 0

	for _, url := range urls {
		raws, err := t.loadFeed(ctx, url)
		if err != nil {
			slog.Warn("Feed URL failed", "partner", t.PartnerID, "url", url, "error", err)
			failed++
			continue
		}

		for _, raw := range raws {
			item, ok := t.resolver.Run(t.PartnerID, raw)
			if !ok {
				dropped++
				continue
			}

			item.Category = t.classifier.Run(t.PartnerID, category.Input{
				BackendLabel:    raw.BackendCategory(),
				CategoryPath:    item.CategoryPath,
				Title:           item.Title,
				Description:     item.Description,
				DefaultCategory: t.PartnerConfig.Category.Default,
				Group:           t.PartnerConfig.Group,
			})

			items = append(items, item)
		}
	}

	if failed == len(urls) {
		return nil, 0, fmt.Errorf("all %d feed URLs failed", len(urls))
	}
	return items, dropped, nil
}

// loadFeed fetches and decodes one feed URL.
func (t *BuildPartnerTask) loadFeed(ctx context.Context, url string) ([]feed.RawItem, error) {
	data, err := t.fetchFeed(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	raws, err := feed.Decode(data, t.PartnerConfig.Settings.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to decode feed: %w", err)
	}
	return raws, nil
}

// publish writes the partner's global scope, a sub-feed for every taxonomy
// category and the deals scope. Returns the global page count.
func (t *BuildPartnerTask) publish(items []feed.Item) (int, error) {
	pageCount, err := t.writer.WriteScope(t.PartnerID, t.PartnerID, "global", items, t.pageSize)
	if err != nil {
		return 0, err
	}

	byCategory := make(map[string][]feed.Item)
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}
	// every taxonomy slug gets a sub-feed, empty ones included, so clients
	// can fetch any category without a 404
	for _, slug := range category.Slugs {
		if _, err := t.writer.WriteScope(path.Join(t.PartnerID, slug), t.PartnerID, slug, byCategory[slug], t.catPageSize); err != nil {
			return 0, err
		}
	}

	var deals []feed.Item
	for _, item := range items {
		if item.HasDiscountAtLeast(t.dealsMinPercent) {
			deals = append(deals, item)
		}
	}
	if _, err := t.writer.WriteScope(path.Join(t.PartnerID, "akcio"), t.PartnerID, "akcio", deals, t.dealsPageSize); err != nil {
		return 0, err
	}

	return pageCount, nil
}

func (t *BuildPartnerTask) fetchFeed(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, time.Duration(t.PartnerConfig.Settings.Timeout)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", t.userAgent)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

func (t *BuildPartnerTask) recordRun(status string, totalItems, pageCount int, runErr error) {
	if t.runRepo == nil {
		return
	}

	run := database.Run{
		PartnerID:  t.PartnerID,
		Status:     status,
		TotalItems: totalItems,
		PageCount:  pageCount,
		Duration:   t.GetDuration(),
	}
	if runErr != nil {
		run.Error = runErr.Error()
	}

	if err := t.runRepo.RecordRun(run); err != nil {
		slog.Warn("Failed to record run", "partner", t.PartnerID, "error", err)
	}
}
