package store

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config resolves where datasets come from and where fetched copies live.
type Config interface {
	DataPath() string
	DataURL() string
	CachePath() string
}

// LoadConfig reads the optional .landscape config file and the LANDSCAPE_*
// environment, falling back to defaults. Flags layered on top by the CLI
// override both.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("cache", "~/.landscape/cache")
	v.SetConfigName(".landscape") // .yaml is implicit
	v.SetEnvPrefix("LANDSCAPE")
	v.AutomaticEnv()

	if override := os.Getenv("LANDSCAPE_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	cache, err := homedir.Expand(v.GetString("cache"))
	if err != nil {
		return nil, fmt.Errorf("expand cache path: %w", err)
	}

	return &fileConfig{
		Data:  v.GetString("data"),
		URL:   v.GetString("url"),
		Cache: filepath.Clean(cache),
	}, nil
}

type fileConfig struct {
	Data  string `json:"data"`
	URL   string `json:"url"`
	Cache string `json:"cache"`
}

func (f *fileConfig) DataPath() string  { return f.Data }
func (f *fileConfig) DataURL() string   { return f.URL }
func (f *fileConfig) CachePath() string { return f.Cache }
