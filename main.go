package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kynora/aster-agent/internal/repo"
	"github.com/kynora/aster-agent/internal/service/exchange"
	"github.com/kynora/aster-agent/internal/service/exchange/aster"
	"github.com/kynora/aster-agent/internal/service/exchange/precision"
	"github.com/kynora/aster-agent/ioc"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func initViper() {

	// --config=./config/xxx.yaml
	file := pflag.String("config", "./config/config.dev.yaml", "specify config file")
	pflag.Parse()

	viper.SetConfigFile(*file)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s \n", err))
	}
}

func main() {
	initViper()

	db := ioc.InitDB()
	if err := repo.InitTables(db); err != nil {
		panic(err)
	}
	cli := ioc.InitAsterCli()

	resolver := precision.NewResolver(repo.NewPrecisionRepo(db))
	orderSvc := aster.NewOrderService(cli)
	filterSvc := aster.NewFilterService(cli)
	accountSvc := aster.NewAccountService(cli)
	engine := precision.NewEngine(resolver, filterSvc)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	account, err := accountSvc.GetAccountInfo(ctx)
	if err != nil {
		panic(err)
	}
	slog.Info("account loaded", "available", account.AvailableBalance)

	// 用 100 USDT 名义价值市价开多 BTCUSDT
	qty := precision.QtyFromNotional(100, 65000, "0.001", "5")
	res, err := engine.SubmitWithRecovery(ctx, "BTCUSDT", exchange.Buy, qty, false, orderSvc.Submit)
	if err != nil {
		slog.Error("submit failed", "error", err)
		return
	}
	slog.Info("order submitted", "id", res.Id, "quantity", res.Quantity, "status", res.Status)
}
