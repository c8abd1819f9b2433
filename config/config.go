package config

import (
	"fmt"
	"os/user"
	"strings"

	"github.com/spf13/viper"
)

// DefaultConfig is used when no --config_file is given.  It's fine for it
// not to exist.
const DefaultConfig = "~/.config/pepfeed/config.toml"

// Config holds everything pepfeed needs to find PEPs and write the feed.
type Config struct {
	PEPs PEPsConfig `mapstructure:"peps"`
	Feed FeedConfig `mapstructure:"feed"`
}

// PEPsConfig says where to find PEP sources and how to read them.
type PEPsConfig struct {
	Root        string `mapstructure:"root"`         // directory holding pep-NNNN.rst files
	Workers     int    `mapstructure:"workers"`      // concurrent file loads
	SkipInvalid bool   `mapstructure:"skip_invalid"` // log and skip unparseable PEPs
}

// FeedConfig describes the generated RSS channel.
type FeedConfig struct {
	Title       string `mapstructure:"title"`
	Link        string `mapstructure:"link"`
	Description string `mapstructure:"description"`
	Language    string `mapstructure:"language"`
	Docs        string `mapstructure:"docs"`
	BaseURL     string `mapstructure:"base_url"` // pep pages live at BaseURL + "pep-NNNN/"
	MaxItems    int    `mapstructure:"max_items"`
	OutputDir   string `mapstructure:"output_dir"`
	FileName    string `mapstructure:"file_name"`
}

// NewConfig returns a Config with all defaults filled in.
func NewConfig() *Config {
	return &Config{
		PEPs: PEPsConfig{
			Root:    "peps",
			Workers: 8,
		},
		Feed: FeedConfig{
			Title:       "Newest Python PEPs",
			Link:        "https://peps.python.org/peps.rss",
			Description: "Newest Python Enhancement Proposals (PEPs): Information on new language features and some meta-information like release procedure and schedules.",
			Language:    "en",
			Docs:        "https://cyber.harvard.edu/rss/rss.html",
			BaseURL:     "https://peps.python.org/",
			MaxItems:    10,
			OutputDir:   "build",
			FileName:    "peps.rss",
		},
	}
}

// NewTestConfig returns a config suitable for unit tests.
func NewTestConfig() *Config {
	c := NewConfig()
	c.PEPs.Root = "../testdata/peps"
	c.PEPs.Workers = 2
	c.Feed.OutputDir = ""
	return c
}

func replaceTildeInPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	usr, err := user.Current()
	if err != nil {
		return path
	}
	return strings.Replace(path, "~", usr.HomeDir, 1)
}

// setDefaults registers every field of c with v so that environment
// overrides work for keys missing from the config file.
func (c *Config) setDefaults(v *viper.Viper) {
	v.SetDefault("peps.root", c.PEPs.Root)
	v.SetDefault("peps.workers", c.PEPs.Workers)
	v.SetDefault("peps.skip_invalid", c.PEPs.SkipInvalid)

	v.SetDefault("feed.title", c.Feed.Title)
	v.SetDefault("feed.link", c.Feed.Link)
	v.SetDefault("feed.description", c.Feed.Description)
	v.SetDefault("feed.language", c.Feed.Language)
	v.SetDefault("feed.docs", c.Feed.Docs)
	v.SetDefault("feed.base_url", c.Feed.BaseURL)
	v.SetDefault("feed.max_items", c.Feed.MaxItems)
	v.SetDefault("feed.output_dir", c.Feed.OutputDir)
	v.SetDefault("feed.file_name", c.Feed.FileName)
}

// ReadConfig merges the TOML file at configPath and any PEPFEED_* environment
// variables into c.  An empty configPath reads only the environment.
func (c *Config) ReadConfig(configPath string) error {
	v := viper.New()
	c.setDefaults(v)
	v.SetEnvPrefix("pepfeed")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(replaceTildeInPath(configPath))
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return err
		}
	}

	if err := v.Unmarshal(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return c.Validate()
}

// Validate checks for settings that can't work.
func (c *Config) Validate() error {
	if c.PEPs.Workers < 1 {
		return fmt.Errorf("config error: peps.workers must be at least 1, got %d", c.PEPs.Workers)
	}
	if c.Feed.MaxItems < 1 {
		return fmt.Errorf("config error: feed.max_items must be at least 1, got %d", c.Feed.MaxItems)
	}
	if !strings.HasSuffix(c.Feed.BaseURL, "/") {
		return fmt.Errorf("config error: feed.base_url must end in '/': %q", c.Feed.BaseURL)
	}
	return nil
}
