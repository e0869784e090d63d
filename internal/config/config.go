package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config drives cmd/janggi-local. Precedence: defaults < YAML file <
// JANGGI_* environment < command-line flags.
type Config struct {
	Addr        string `yaml:"addr"`
	WebDir      string `yaml:"web_dir"`
	DataDir     string `yaml:"data_dir"` // empty keeps games in memory only
	OpenBrowser bool   `yaml:"open_browser"`
	AccessLog   bool   `yaml:"access_log"`
}

func Default() Config {
	return Config{
		Addr:        ":2888",
		WebDir:      "./web",
		DataDir:     "./data",
		OpenBrowser: true,
		AccessLog:   true,
	}
}

// Load reads path over Default(). A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from JANGGI_* variables that are set.
// Unparseable booleans are ignored.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv("JANGGI_ADDR"); ok && v != "" {
		c.Addr = v
	}
	if v, ok := os.LookupEnv("JANGGI_WEB_DIR"); ok && v != "" {
		c.WebDir = v
	}
	if v, ok := os.LookupEnv("JANGGI_DATA_DIR"); ok {
		c.DataDir = strings.TrimSpace(v)
	}
	if v, ok := getEnvBool("JANGGI_OPEN_BROWSER"); ok {
		c.OpenBrowser = v
	}
	if v, ok := getEnvBool("JANGGI_ACCESS_LOG"); ok {
		c.AccessLog = v
	}
}

func getEnvBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, false
	}
	return b, true
}
