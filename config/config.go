package config

import (
	"fmt"
	"strings"

	"github.com/creasty/defaults"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type CoinmarketcapConfig struct {
	Url    string `mapstructure:"url" default:"https://pro-api.coinmarketcap.com"`
	ApiKey string `mapstructure:"apiKey"`
}

type SocketConfig struct {
	ApiKey string `mapstructure:"apiKey"`
}

type Config struct {
	LogLevel                  string              `mapstructure:"logLevel" default:"info"`
	Env                       string              `mapstructure:"env" default:"local"`
	Id                        string              `mapstructure:"id"`
	ApiAddr                   string              `mapstructure:"apiAddr" default:":8080"`
	HealthPort                uint16              `mapstructure:"healthPort" default:"9001"`
	OpenTelemetryCollectorURL string              `mapstructure:"openTelemetryCollectorURL"`
	BlockstorePath            string              `mapstructure:"blockstorePath" default:"./lvldbdata"`
	ExcludedProviders         []string            `mapstructure:"excludedProviders"`
	Coinmarketcap             CoinmarketcapConfig `mapstructure:"coinmarketcap"`
	Socket                    SocketConfig        `mapstructure:"socket"`
}

func (c *Config) Validate() error {
	if c.ApiAddr == "" {
		return fmt.Errorf("required field apiAddr empty")
	}
	return nil
}

// GetConfigFromFile reads service configuration from a yaml or json file.
func GetConfigFromFile(path string) (*Config, error) {
	config := new(Config)
	if err := defaults.Set(config); err != nil {
		return nil, err
	}

	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	if err := viper.Unmarshal(config, func(dc *mapstructure.DecoderConfig) {
		dc.ZeroFields = false
	}); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// GetConfigFromENV reads service configuration from SWEEP_ prefixed
// environment variables.
func GetConfigFromENV() (*Config, error) {
	config := new(Config)
	if err := defaults.Set(config); err != nil {
		return nil, err
	}

	viper.SetEnvPrefix("SWEEP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	config.LogLevel = getOrDefault("logLevel", config.LogLevel)
	config.Env = getOrDefault("env", config.Env)
	config.Id = getOrDefault("id", config.Id)
	config.ApiAddr = getOrDefault("apiAddr", config.ApiAddr)
	if viper.IsSet("healthPort") {
		// nolint:gosec
		config.HealthPort = uint16(viper.GetUint32("healthPort"))
	}
	config.OpenTelemetryCollectorURL = getOrDefault("openTelemetryCollectorURL", config.OpenTelemetryCollectorURL)
	config.BlockstorePath = getOrDefault("blockstorePath", config.BlockstorePath)
	if viper.IsSet("excludedProviders") {
		config.ExcludedProviders = viper.GetStringSlice("excludedProviders")
	}
	config.Coinmarketcap.Url = getOrDefault("coinmarketcap.url", config.Coinmarketcap.Url)
	config.Coinmarketcap.ApiKey = getOrDefault("coinmarketcap.apiKey", config.Coinmarketcap.ApiKey)
	config.Socket.ApiKey = getOrDefault("socket.apiKey", config.Socket.ApiKey)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func getOrDefault(key string, fallback string) string {
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return fallback
}
