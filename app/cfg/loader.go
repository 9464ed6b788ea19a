package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Input configuration
	PartnersDir     string `long:"partners-dir" env:"PARTNERS_DIR" default:"./partners" description:"Directory containing partner configuration files"`
	CategoryMapFile string `long:"category-map" env:"CATEGORY_MAP_FILE" default:"./docs/feeds/category-map.json" description:"Externally authored per-partner category rule table"`

	// Output configuration
	OutDir           string `long:"out-dir" env:"OUT_DIR" default:"./docs/feeds" description:"Directory the paginated catalog JSON is written to"`
	PageSize         int    `long:"page-size" env:"PAGE_SIZE" default:"300" description:"Items per page in the global partner feed"`
	CategoryPageSize int    `long:"category-page-size" env:"CATEGORY_PAGE_SIZE" default:"20" description:"Items per page in per-category sub-feeds"`
	DealsPageSize    int    `long:"deals-page-size" env:"DEALS_PAGE_SIZE" default:"20" description:"Items per page in the deals block"`
	DealsMinDiscount int    `long:"deals-min-discount" env:"DEALS_MIN_DISCOUNT" default:"10" description:"Minimum discount percent for the deals block"`

	// Search index configuration
	SearchAddr      string `long:"search-addr" env:"SEARCH_ADDR" description:"Search index address (push is skipped when empty)"`
	SearchAPIKey    string `long:"search-api-key" env:"SEARCH_API_KEY" description:"Search index API key"`
	SearchIndex     string `long:"search-index" env:"SEARCH_INDEX" default:"findora_products" description:"Search index name"`
	SearchBatchSize int    `long:"search-batch-size" env:"SEARCH_BATCH_SIZE" default:"1000" description:"Documents per index push batch"`

	// Application configuration
	DBFile          string `long:"db-file" env:"DB_FILE" default:"./findora.db" description:"SQLite database file for rebuild run history"`
	Port            string `long:"port" env:"PORT" default:"8080" description:"HTTP server port (serve mode)"`
	WorkerCount     int    `long:"worker-count" env:"WORKER_COUNT" default:"4" description:"Number of background workers for partner processing"`
	RebuildInterval int    `long:"rebuild-interval" env:"REBUILD_INTERVAL" default:"21600" description:"Seconds between catalog rebuilds in serve mode"`
	Serve           bool   `long:"serve" env:"SERVE" description:"Run the HTTP server and rebuild periodically instead of a one-shot build"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Findora Catalog/1.0" description:"User agent string for feed requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		PartnersDir:      raw.PartnersDir,
		CategoryMapFile:  raw.CategoryMapFile,
		OutDir:           raw.OutDir,
		PageSize:         raw.PageSize,
		CategoryPageSize: raw.CategoryPageSize,
		DealsPageSize:    raw.DealsPageSize,
		DealsMinDiscount: raw.DealsMinDiscount,
		SearchAddr:       raw.SearchAddr,
		SearchAPIKey:     raw.SearchAPIKey,
		SearchIndex:      raw.SearchIndex,
		SearchBatchSize:  raw.SearchBatchSize,
		DBFile:           raw.DBFile,
		Port:             raw.Port,
		WorkerCount:      raw.WorkerCount,
		RebuildInterval:  raw.RebuildInterval,
		Serve:            raw.Serve,
		UserAgent:        raw.UserAgent,
		Debug:            raw.Debug,
		Version:          GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

// Set replaces the global configuration. Tests use this to avoid flag
// parsing.
func Set(c *Cfg) {
	globalCfg = c
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
