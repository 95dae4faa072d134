package ioc

import (
	"github.com/adshao/go-binance/v2/futures"
	"github.com/kynora/aster-agent/internal/service/exchange/aster"
	"github.com/spf13/viper"
)

func InitAsterCli() *futures.Client {
	type Config struct {
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("cex.aster", &cfg); err != nil {
		panic(err)
	}

	return aster.NewClient(cfg.ApiKey, cfg.ApiSecret)
}
