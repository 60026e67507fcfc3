package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "WIKICOLLECTOR_CONFIG"
	userAgentEnv  = "WIKICOLLECTOR_USER_AGENT"
	wikiAPIEnv    = "WIKICOLLECTOR_WIKI_API_URL"
	targetSiteEnv = "WIKICOLLECTOR_TARGET_SITE"
	logLevelEnv   = "WIKICOLLECTOR_LOG_LEVEL"
)

// Config holds high-level settings required across the application.
type Config struct {
	Wikipedia WikipediaConfig `yaml:"wikipedia"`
	Wikidata  WikidataConfig  `yaml:"wikidata"`
	Pageviews PageviewsConfig `yaml:"pageviews"`
	Source    SourceConfig    `yaml:"source"`
	Pipeline  PipelineConfig  `yaml:"pipeline"`
	HTTP      HTTPConfig      `yaml:"http"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WikipediaConfig points at the source-language MediaWiki action API.
type WikipediaConfig struct {
	APIURL string `yaml:"apiUrl"`
}

// WikidataConfig describes the entity-data endpoint and the sitelink to map to.
type WikidataConfig struct {
	EntityDataURL string `yaml:"entityDataUrl"`
	TargetSite    string `yaml:"targetSite"`
}

// PageviewsConfig describes the Wikimedia per-article pageviews endpoint.
type PageviewsConfig struct {
	APIURL  string `yaml:"apiUrl"`
	Project string `yaml:"project"`
	Access  string `yaml:"access"`
	Agent   string `yaml:"agent"`
}

// SourceConfig tunes how article titles are read from a wiki list page.
type SourceConfig struct {
	ListSelector string `yaml:"listSelector"`
}

// PipelineConfig tunes per-title pacing and the pageviews year.
type PipelineConfig struct {
	DelayMs int `yaml:"delayMs"`
	Year    int `yaml:"year"`
}

// Delay resolves the inter-title pause as a duration.
func (p PipelineConfig) Delay() time.Duration {
	if p.DelayMs <= 0 {
		return 0
	}
	return time.Duration(p.DelayMs) * time.Millisecond
}

// HTTPConfig groups transport settings shared by every upstream client.
type HTTPConfig struct {
	UserAgent  string `yaml:"userAgent"`
	TimeoutSec int    `yaml:"timeoutSec"`
}

// Timeout resolves the per-request timeout as a duration.
func (h HTTPConfig) Timeout() time.Duration {
	if h.TimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(h.TimeoutSec) * time.Second
}

// LoggingConfig controls diagnostic verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads YAML configuration (if present) and applies environment
// overrides. An empty path falls back to the WIKICOLLECTOR_CONFIG variable.
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(userAgentEnv); v != "" {
		c.HTTP.UserAgent = v
	}

	if v := os.Getenv(wikiAPIEnv); v != "" {
		c.Wikipedia.APIURL = v
	}

	if v := os.Getenv(targetSiteEnv); v != "" {
		c.Wikidata.TargetSite = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Wikipedia.APIURL != "" {
		base.Wikipedia.APIURL = override.Wikipedia.APIURL
	}

	if override.Wikidata.EntityDataURL != "" {
		base.Wikidata.EntityDataURL = override.Wikidata.EntityDataURL
	}
	if override.Wikidata.TargetSite != "" {
		base.Wikidata.TargetSite = override.Wikidata.TargetSite
	}

	if override.Pageviews.APIURL != "" {
		base.Pageviews.APIURL = override.Pageviews.APIURL
	}
	if override.Pageviews.Project != "" {
		base.Pageviews.Project = override.Pageviews.Project
	}
	if override.Pageviews.Access != "" {
		base.Pageviews.Access = override.Pageviews.Access
	}
	if override.Pageviews.Agent != "" {
		base.Pageviews.Agent = override.Pageviews.Agent
	}

	if override.Source.ListSelector != "" {
		base.Source.ListSelector = override.Source.ListSelector
	}

	if override.Pipeline.DelayMs > 0 {
		base.Pipeline.DelayMs = override.Pipeline.DelayMs
	}
	if override.Pipeline.Year > 0 {
		base.Pipeline.Year = override.Pipeline.Year
	}

	if override.HTTP.UserAgent != "" {
		base.HTTP.UserAgent = override.HTTP.UserAgent
	}
	if override.HTTP.TimeoutSec > 0 {
		base.HTTP.TimeoutSec = override.HTTP.TimeoutSec
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Wikipedia: WikipediaConfig{APIURL: "https://he.wikipedia.org/w/api.php"},
		Wikidata: WikidataConfig{
			EntityDataURL: "https://www.wikidata.org/wiki/Special:EntityData",
			TargetSite:    "enwiki",
		},
		Pageviews: PageviewsConfig{
			APIURL:  "https://wikimedia.org/api/rest_v1/metrics/pageviews/per-article",
			Project: "en.wikipedia",
			Access:  "all-access",
			Agent:   "all-agents",
		},
		Source:   SourceConfig{ListSelector: "#mw-pages li a"},
		Pipeline: PipelineConfig{DelayMs: 500, Year: time.Now().UTC().Year()},
		HTTP: HTTPConfig{
			UserAgent:  "WikiCollector/1.0 (Educational purposes)",
			TimeoutSec: 10,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}
