package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/base/database/mongoclient"
	"github.com/1xGiraffe/basilisk-core/base/log"
	bValidator "github.com/1xGiraffe/basilisk-core/base/validator"
	"github.com/1xGiraffe/basilisk-core/domain"
	"github.com/1xGiraffe/basilisk-core/domain/auction"
	mmiddleware "github.com/1xGiraffe/basilisk-core/middleware"
	"github.com/1xGiraffe/basilisk-core/service/query"
	auction_delivery "github.com/1xGiraffe/basilisk-core/stores/auction/delivery/http"
	auction_repository "github.com/1xGiraffe/basilisk-core/stores/auction/repository"
	auction_usecase "github.com/1xGiraffe/basilisk-core/stores/auction/usecase"
	chain_repository "github.com/1xGiraffe/basilisk-core/stores/chain/repository"
	event_repository "github.com/1xGiraffe/basilisk-core/stores/event/repository"
	farming_delivery "github.com/1xGiraffe/basilisk-core/stores/farming/delivery/http"
	farming_repository "github.com/1xGiraffe/basilisk-core/stores/farming/repository"
	farming_usecase "github.com/1xGiraffe/basilisk-core/stores/farming/usecase"
	ledger_repository "github.com/1xGiraffe/basilisk-core/stores/ledger/repository"
	nft_repository "github.com/1xGiraffe/basilisk-core/stores/nft/repository"
	stableswap_repository "github.com/1xGiraffe/basilisk-core/stores/stableswap/repository"
)

func init() {
	pflag.String("config", "infra/configs/config.yaml", "path to the config file")
	pflag.Parse()
	viper.BindPFlags(pflag.CommandLine)

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	viper.SetDefault("auction.minAuctionDuration", 10)
	viper.SetDefault("auction.bidAddBlocks", 10)
	viper.SetDefault("auction.bidStepPerc", 10)
	viper.SetDefault("auction.maxNameLength", 64)
	viper.SetDefault("ledger.existentialDeposit", "1")

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	mmiddleware.SetupCache()

	// construct repository, usecase and delivery
	chainRepo := chain_repository.New(q)
	ledgerRepo := ledger_repository.NewLedgerRepo(q, viper.GetString("ledger.existentialDeposit"))
	nftRegistry := nft_repository.NewRegistry(q)
	poolRegistry := stableswap_repository.NewRegistry(q)
	eventRepo := event_repository.New(q)
	auctionRepo := auction_repository.New(q)
	globalFarmRepo := farming_repository.NewGlobalFarmRepo(q)
	yieldFarmRepo := farming_repository.NewYieldFarmRepo(q)
	depositRepo := farming_repository.NewDepositRepo(q)

	auctionCfg := auction.Config{
		MinAuctionDuration: domain.BlockNumber(viper.GetUint64("auction.minAuctionDuration")),
		BidAddBlocks:       domain.BlockNumber(viper.GetUint64("auction.bidAddBlocks")),
		BidStepPerc:        viper.GetInt64("auction.bidStepPerc"),
		MaxNameLength:      viper.GetInt("auction.maxNameLength"),
	}

	auctionUC := auction_usecase.New(q, auctionRepo, ledgerRepo, nftRegistry, eventRepo, chainRepo, auctionCfg)
	farmingUC := farming_usecase.New(&farming_usecase.FarmingUseCaseCfg{
		Txn:         q,
		GlobalRepo:  globalFarmRepo,
		YieldRepo:   yieldFarmRepo,
		DepositRepo: depositRepo,
		Currency:    ledgerRepo,
		Pools:       poolRegistry,
		Events:      eventRepo,
		Clock:       chainRepo,
	})

	auction_delivery.New(e, auctionUC)
	farming_delivery.New(e, farmingUC)

	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{"status": "ok"})
	})

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	shutdownCtx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
