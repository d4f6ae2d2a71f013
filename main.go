// Package main boardcamp API.
//
// @title           boardcamp API
// @version         1.0
// @description     Board-game rental backend (categories, games, customers, rentals).
// @BasePath        /
// @schemes         http
package main

import (
	"boardcamp/app/echoServer"
	catalogctrl "boardcamp/app/echoServer/controller/catalog"
	customerctrl "boardcamp/app/echoServer/controller/customer"
	rentalctrl "boardcamp/app/echoServer/controller/rental"
	"boardcamp/config"
	_ "boardcamp/docs"
	catalogrepo "boardcamp/repository/catalog"
	customerrepo "boardcamp/repository/customer"
	rentalrepo "boardcamp/repository/rental"
	catalogsvc "boardcamp/service/catalog"
	customersvc "boardcamp/service/customer"
	rentalsvc "boardcamp/service/rental"
	"boardcamp/util/database"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopspring/decimal"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// money goes out as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	db, err := database.New(ctx, cfg.DatabaseURL, database.Options{
		MaxConns:  cfg.DBMaxConns,
		TxTimeout: cfg.DBTxTimeout,
	})
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.DBMigrate {
		if err := db.Migrate(ctx); err != nil {
			log.Error("migrate failed", "err", err)
			os.Exit(1)
		}
	}

	// repos
	cr := catalogrepo.New(db.Pool)
	ur := customerrepo.New(db.Pool)
	rr := rentalrepo.New(db.Pool)

	// services
	cs := catalogsvc.New(cr)
	us := customersvc.New(ur)
	rs := rentalsvc.New(db, rr)

	// echo
	e := echoServer.New(echoServer.C{
		Catalog:  &catalogctrl.Controller{Svc: cs, Log: log},
		Customer: &customerctrl.Controller{Svc: us, Log: log},
		Rental:   &rentalctrl.Controller{Svc: rs, Log: log},
		Ping:     db.Ping,
	}, log)

	go func() {
		log.Info("starting server", "port", cfg.Port, "env", cfg.Env)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	log.Info("shutting down")

	ctxSrv, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctxSrv); err != nil {
		log.Error("shutdown", "err", err)
	}
}
