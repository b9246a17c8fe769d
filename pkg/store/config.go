// Package store holds client configuration and the persisted credential.
package store

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config exposes the settings every command needs.
type Config interface {
	BaseURL() string
	City() string
	Limit() int
	BasePath() string
}

// LoadConfig reads .eventscout.yaml (cwd or EVENTSCOUT_CONFIG_PATH) and the
// EVENTSCOUT_* environment, falling back to defaults.
func LoadConfig() (Config, error) {
	viper.SetDefault("api", "http://localhost:5000")
	viper.SetDefault("city", "Sydney")
	viper.SetDefault("limit", 50)
	viper.SetDefault("path", "~/.eventscout")
	viper.SetConfigName(".eventscout") // .yaml is implicit
	viper.SetEnvPrefix("EVENTSCOUT")
	viper.AutomaticEnv()

	if override := os.Getenv("EVENTSCOUT_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("error expanding store path: %w", err)
	}

	return &fileConfig{
		API:  viper.GetString("api"),
		Town: viper.GetString("city"),
		Max:  viper.GetInt("limit"),
		Path: path,
	}, nil
}

type fileConfig struct {
	API  string `json:"api"`
	Town string `json:"city"`
	Max  int    `json:"limit"`
	Path string `json:"path"`
}

func (f *fileConfig) BaseURL() string { return f.API }

func (f *fileConfig) City() string { return f.Town }

func (f *fileConfig) Limit() int { return f.Max }

func (f *fileConfig) BasePath() string { return f.Path }
