package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/samandr77/reconciler/internal/api"
	"github.com/samandr77/reconciler/internal/clients/billing"
	"github.com/samandr77/reconciler/internal/clients/paygate"
	"github.com/samandr77/reconciler/internal/money"
	"github.com/samandr77/reconciler/internal/normalizer"
	"github.com/samandr77/reconciler/internal/service"
	"github.com/samandr77/reconciler/pkg/broker"
	"github.com/samandr77/reconciler/pkg/config"
	"github.com/samandr77/reconciler/pkg/job"
	"github.com/samandr77/reconciler/pkg/logger"
)

const (
	ReadTimeout = 3 * time.Second
	// Reconcile runs synchronously inside the request, so writes wait for it.
	WriteTimeout = 60 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	_, err = logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	billingClient := billing.NewClient(cfg.Billing.BaseURL)
	paygateClient := paygate.NewClient(cfg.PayGate.BaseURL)

	norm := normalizer.New(billingClient, money.NewConverter(cfg.Reconcile.CLPPerUSD), cfg.Reconcile.StrictCurrency)

	var publisher service.Publisher

	if cfg.Kafka.Enabled {
		producer := broker.NewProducer(slog.Default(), cfg.Kafka.Brokers, cfg.Kafka.SettlementsTopic)
		defer producer.Close()

		publisher = producer
	}

	s := service.New(billingClient, norm, paygateClient, publisher)

	{
		job.NewService().
			RegisterJob("reconcile pending invoices", cfg.Reconcile.Interval, func(ctx context.Context) error {
				_, err := s.Reconcile(ctx)
				return err
			}).
			Start(ctx)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
