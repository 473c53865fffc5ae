package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/viney-shih/goroutines"

	"github.com/1xGiraffe/basilisk-core/base/backoff"
	"github.com/1xGiraffe/basilisk-core/base/counter"
	bCtx "github.com/1xGiraffe/basilisk-core/base/ctx"
	"github.com/1xGiraffe/basilisk-core/base/database/mongoclient"
	"github.com/1xGiraffe/basilisk-core/base/log"
	"github.com/1xGiraffe/basilisk-core/base/metrics"
	"github.com/1xGiraffe/basilisk-core/domain"
	"github.com/1xGiraffe/basilisk-core/domain/auction"
	"github.com/1xGiraffe/basilisk-core/service/query"
	auction_repository "github.com/1xGiraffe/basilisk-core/stores/auction/repository"
	auction_usecase "github.com/1xGiraffe/basilisk-core/stores/auction/usecase"
	chain_repository "github.com/1xGiraffe/basilisk-core/stores/chain/repository"
	event_repository "github.com/1xGiraffe/basilisk-core/stores/event/repository"
	ledger_repository "github.com/1xGiraffe/basilisk-core/stores/ledger/repository"
	nft_repository "github.com/1xGiraffe/basilisk-core/stores/nft/repository"
)

func init() {
	pflag.String("config", "infra/configs/worker/config.yaml", "path to the config file")
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
	viper.SetDefault("worker.sweepInterval", "6s")
	viper.SetDefault("worker.poolSize", 4)

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

// startEchoServer serves the health check while the sweeper runs in
// the background
func startEchoServer() {
	e := echo.New()
	e.GET("/check", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{"status": "ok"})
	})
	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()
}

func main() {
	context, cancel := bCtx.WithCancel(bCtx.Background())

	startEchoServer()

	met := metrics.New("auction_sweeper")

	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	checkIndex := viper.GetBool("mongo.checkIndex")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient, checkIndex)

	chainRepo := chain_repository.New(q)
	ledgerRepo := ledger_repository.NewLedgerRepo(q, viper.GetString("ledger.existentialDeposit"))
	nftRegistry := nft_repository.NewRegistry(q)
	eventRepo := event_repository.New(q)
	auctionRepo := auction_repository.New(q)

	auctionCfg := auction.Config{
		MinAuctionDuration: domain.BlockNumber(viper.GetUint64("auction.minAuctionDuration")),
		BidAddBlocks:       domain.BlockNumber(viper.GetUint64("auction.bidAddBlocks")),
		BidStepPerc:        viper.GetInt64("auction.bidStepPerc"),
		MaxNameLength:      viper.GetInt("auction.maxNameLength"),
	}

	auctionUC := auction_usecase.New(q, auctionRepo, ledgerRepo, nftRegistry, eventRepo, chainRepo, auctionCfg)

	sweepInterval := viper.GetDuration("worker.sweepInterval")
	poolSize := viper.GetInt("worker.poolSize")
	pool := goroutines.NewPool(poolSize)
	defer pool.Release()

	b := backoff.NewExponential(sweepInterval, 10*time.Minute)
	closedTotal := counter.NewCounter()

	go func() {
		for {
			select {
			case <-context.Done():
				return
			default:
			}

			err := pool.Schedule(func() {
				closed, err := auctionUC.CloseExpired(context)
				if err != nil {
					context.WithField("err", err).Error("close expired auctions failed")
					return
				}
				if closed > 0 {
					met.BumpSum("closed.count", float64(closed))
					closedTotal.Add(uint64(closed))
					context.WithFields(log.Fields{
						"closed": closed,
						"total":  closedTotal.Count(),
					}).Info("settled expired auctions")
				}
			})
			if err != nil {
				context.WithField("err", err).Error("schedule sweep failed")
				if err := b.Backoff(context); err != nil {
					return
				}
				continue
			}
			b.Reset()

			select {
			case <-context.Done():
				return
			case <-time.After(sweepInterval):
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	cancel()
}
