package partner

// Config describes one affiliate partner. Loaded from a YAML file in the
// partners directory; the partner id is derived from the filename.
type Config struct {
	ID       string           `yaml:"-" json:"id"`
	Name     string           `yaml:"name" json:"name"`
	Group    string           `yaml:"group" json:"group,omitempty"`
	Settings ConfigSettings   `yaml:"settings" json:"-"`
	Deeplink ConfigDeeplink   `yaml:"deeplink" json:"-"`
	Category ConfigCategories `yaml:"category" json:"-"`
}

type ConfigSettings struct {
	Enabled  bool   `yaml:"enabled"`
	FeedEnv  string `yaml:"feed_env"` // env variable holding one or more feed URLs
	Format   string `yaml:"format"`   // xml | json | rss; empty = sniff
	Timeout  int    `yaml:"timeout"`  // seconds
	PageSize int    `yaml:"page_size"`
}

type ConfigDeeplink struct {
	Template string `yaml:"template"` // outbound redirect template, {url} placeholder
	UTM      string `yaml:"utm"`      // appended to the target URL before escaping
}

type ConfigCategories struct {
	Default string `yaml:"default"` // partner default category slug
}
