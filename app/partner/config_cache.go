package partner

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

type ConfigCache struct {
	partnersDir string
	cache       map[string]*Config
	mu          sync.RWMutex
}

func NewConfigCache(partnersDir string) *ConfigCache {
	return &ConfigCache{
		partnersDir: partnersDir,
		cache:       make(map[string]*Config),
	}
}

func (cc *ConfigCache) Run() error {
	if _, err := os.Stat(cc.partnersDir); os.IsNotExist(err) {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(cc.partnersDir, "*.yml"))
	if err != nil {
		return fmt.Errorf("failed to find YML files: %w", err)
	}

	for _, file := range files {
		partnerID := strings.TrimSuffix(filepath.Base(file), ".yml")

		if _, err := cc.LoadConfig(partnerID); err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}
	}

	return nil
}

func (cc *ConfigCache) LoadConfig(partnerID string) (*Config, error) {
	configFile := filepath.Join(cc.partnersDir, partnerID+".yml")
	config, err := cc.parseConfig(configFile)
	if err != nil {
		return nil, err
	}

	config.ID = partnerID

	if err := cc.validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configFile, err)
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.cache[config.ID] = config

	return config, nil
}

func (cc *ConfigCache) GetConfig(partnerID string) (*Config, error) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	config, ok := cc.cache[partnerID]
	if !ok {
		return nil, fmt.Errorf("partner config with id '%s' not found", partnerID)
	}
	return config, nil
}

// GetConfigs returns all loaded partner configs sorted by id, so rebuild
// output and logging stay deterministic across runs.
func (cc *ConfigCache) GetConfigs() []*Config {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	configs := make([]*Config, 0, len(cc.cache))
	for _, c := range cc.cache {
		configs = append(configs, c)
	}
	sort.Slice(configs, func(i, j int) bool { return configs[i].ID < configs[j].ID })
	return configs
}

func (cc *ConfigCache) GetEnabledConfigs() []*Config {
	all := cc.GetConfigs()
	enabled := make([]*Config, 0, len(all))
	for _, c := range all {
		if c.Settings.Enabled {
			enabled = append(enabled, c)
		}
	}
	return enabled
}

func (cc *ConfigCache) GetConfigCount() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.cache)
}

func (cc *ConfigCache) parseConfig(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if config.Settings.Timeout == 0 {
		config.Settings.Timeout = 120
	}

	return &config, nil
}

func (cc *ConfigCache) validateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}

	requiredFields := map[string]string{
		"partner id":   config.ID,
		"partner name": config.Name,
		"feed env":     config.Settings.FeedEnv,
	}

	for fieldName, fieldValue := range requiredFields {
		if fieldValue == "" {
			return fmt.Errorf("%s is required", fieldName)
		}
	}

	switch config.Settings.Format {
	case "", "xml", "json", "rss":
	default:
		return fmt.Errorf("format must be one of xml, json, rss (got %q)", config.Settings.Format)
	}

	nonNegativeFields := map[string]int{
		"timeout":   config.Settings.Timeout,
		"page size": config.Settings.PageSize,
	}

	for fieldName, fieldValue := range nonNegativeFields {
		if fieldValue < 0 {
			return fmt.Errorf("%s must be non-negative", fieldName)
		}
	}

	return nil
}
