package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/sirupsen/logrus"
	_ "github.com/umalmyha/taskdesk/docs"
	"github.com/umalmyha/taskdesk/internal/config"
	"github.com/umalmyha/taskdesk/internal/infra"
	"github.com/umalmyha/taskdesk/internal/validation"
	"go.mongodb.org/mongo-driver/mongo"
	"google.golang.org/grpc"
)

// @title       taskdesk API
// @version     1.0
// @description Task tracker with customers, email drafts and agent upserts
// @BasePath    /
// @securityDefinitions.apikey ApiKeyAuth
// @in                         header
// @name                       Authorization
func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := setupLogger(cfg.LogCfg); err != nil {
		logrus.Fatal(err)
	}

	st, closeStorage, err := storage(cfg)
	if err != nil {
		logrus.Fatal(err)
	}
	defer closeStorage()

	v, err := validation.Default()
	if err != nil {
		logrus.Fatalf("failed to build validator - %v", err)
	}

	a := infra.NewAuth(cfg.AuthCfg)
	svcs := infra.NewServices(st, a, cfg.AuthCfg.RefreshTokenCfg)

	e := infra.Router(svcs, v, a)

	var grpcSrv *grpc.Server
	if cfg.GrpcCfg.Enabled {
		grpcSrv = infra.GrpcServer(svcs, v, a)
	}

	start(cfg, e, grpcSrv)
}

func setupLogger(cfg config.LogCfg) error {
	lvl, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("failed to parse log level - %w", err)
	}
	logrus.SetLevel(lvl)

	if cfg.JSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}

func storage(cfg config.Config) (*infra.Storage, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.StorageCfg.ConnectTimeout)
	defer cancel()

	if cfg.StorageCfg.Driver == config.StorageDriverMongo {
		client, err := infra.Mongodb(ctx, cfg.MongoCfg)
		if err != nil {
			return nil, nil, err
		}

		st, err := infra.MongoStorage(ctx, client, cfg.MongoCfg.Database)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		return st, disconnectMongo(client), nil
	}

	pool, err := infra.Postgresql(ctx, cfg.PostgresCfg)
	if err != nil {
		return nil, nil, err
	}
	return infra.PostgresStorage(pool), closePostgres(pool), nil
}

func disconnectMongo(client *mongo.Client) func() {
	return func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logrus.Errorf("failed to disconnect from mongo - %v", err)
		}
	}
}

func closePostgres(pool *pgxpool.Pool) func() {
	return pool.Close
}

func start(cfg config.Config, app http.Handler, grpcSrv *grpc.Server) {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HttpCfg.Port),
		Handler: app,
	}

	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 2)
	signal.Notify(shutdownCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		logrus.Infof("http server is listening on %s", srv.Addr)
		errorCh <- srv.ListenAndServe()
	}()

	if grpcSrv != nil {
		go func() {
			lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GrpcCfg.Port))
			if err != nil {
				errorCh <- fmt.Errorf("failed to listen grpc port - %w", err)
				return
			}

			logrus.Infof("grpc server is listening on %s", lis.Addr())
			errorCh <- grpcSrv.Serve(lis)
		}()
	}

	select {
	case <-shutdownCh:
		logrus.Info("shutdown signal has been sent, stopping the server...")
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logrus.Errorf("shutting down the server, unexpected error occurred - %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HttpCfg.ShutdownTimeout)
	defer cancel()

	if grpcSrv != nil {
		grpcSrv.GracefulStop()
	}

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("failed to stop server gracefully - %v", err)
	}
}
