package partner

import (
	"net/url"
	"os"
	"regexp"
	"strings"
)

var urlSeparators = regexp.MustCompile(`[\s,;|]+`)

// SplitFeedURLs splits a feed env value into individual URLs. Feeds may list
// several URLs separated by whitespace, comma, semicolon or pipe.
func SplitFeedURLs(raw string) []string {
	var urls []string
	for _, part := range urlSeparators.Split(raw, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(part), "http") {
			continue
		}
		urls = append(urls, part)
	}
	return urls
}

// FeedURLs resolves the partner's feed URL list from its configured env
// variable. An empty result means the partner cannot be built this run.
func (c *Config) FeedURLs() []string {
	if c.Settings.FeedEnv == "" {
		return nil
	}
	return SplitFeedURLs(os.Getenv(c.Settings.FeedEnv))
}

// DeeplinkURL wraps a product URL in the partner's outbound redirect
// template. The target URL (plus optional UTM suffix) is escaped into the
// {url} placeholder. Without a template the product URL passes through.
func (c *Config) DeeplinkURL(productURL string) string {
	if c.Deeplink.Template == "" || productURL == "" {
		return productURL
	}

	target := productURL
	if utm := strings.TrimLeft(c.Deeplink.UTM, "&?"); utm != "" {
		if strings.Contains(target, "?") {
			target += "&" + utm
		} else {
			target += "?" + utm
		}
	}

	return strings.ReplaceAll(c.Deeplink.Template, "{url}", url.QueryEscape(target))
}
