package main

import (
	"errors"

	"github.com/spf13/viper"

	"github.com/kawakaze/hltv-api/domain"
)

type appConfig struct {
	ListenAddr       string `mapstructure:"listen_addr"`
	BaseURL          string `mapstructure:"base_url"`
	RunMode          string `mapstructure:"run_mode"`
	LogLevel         string `mapstructure:"log_level"`
	FetchTimeoutSecs int    `mapstructure:"fetch_timeout_secs"`
	RankingsLimit    int    `mapstructure:"rankings_limit"`
	BotMatchesShown  int    `mapstructure:"bot_matches_shown"`
	BotResultsShown  int    `mapstructure:"bot_results_shown"`
	BotRankingsShown int    `mapstructure:"bot_rankings_shown"`
}

func readConfig(config *appConfig) error {
	viper.AddConfigPath(".")
	viper.SetConfigName("hltv")
	viper.SetConfigType("yml")
	viper.SetEnvPrefix("hltv")
	viper.AutomaticEnv()

	viper.SetDefault("listen_addr", ":8899")
	viper.SetDefault("base_url", defaultBaseURL)
	viper.SetDefault("run_mode", "release")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("fetch_timeout_secs", 15)
	viper.SetDefault("rankings_limit", defaultRankingsLimit)
	viper.SetDefault("bot_matches_shown", 8)
	viper.SetDefault("bot_results_shown", 5)
	viper.SetDefault("bot_rankings_shown", 10)

	if errReadConfig := viper.ReadInConfig(); errReadConfig != nil {
		// The config file is optional, every key has a usable default.
		var errNotFound viper.ConfigFileNotFoundError
		if !errors.As(errReadConfig, &errNotFound) {
			return errors.Join(errReadConfig, domain.ErrConfigRead)
		}
	}

	if errUnmarshal := viper.Unmarshal(config); errUnmarshal != nil {
		return errors.Join(errUnmarshal, domain.ErrConfigDecode)
	}

	return nil
}
