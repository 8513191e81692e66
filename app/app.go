package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/hustlib/lending-service/config"
	"github.com/hustlib/lending-service/internal/handler"
	"github.com/hustlib/lending-service/internal/mailer"
	"github.com/hustlib/lending-service/internal/repository"
	"github.com/hustlib/lending-service/internal/server"
	"github.com/hustlib/lending-service/internal/service"
	"github.com/hustlib/lending-service/internal/status"
	"github.com/hustlib/lending-service/migrations"
	"github.com/hustlib/lending-service/pkg/kafka"
	"github.com/hustlib/lending-service/pkg/logger"
	"github.com/hustlib/lending-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "lending")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %v", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %v", err)
	}

	producer, err := kafka.NewProducer(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("kafka producer %v", err)
	}

	svc := service.NewService(repo,
		service.NewPublisher(producer),
		mailer.NewLogSender(log),
		service.Options{
			LoanDuration: time.Duration(cfg.Lending.LoanDays) * 24 * time.Hour,
			FinePerDay:   cfg.Lending.FinePerDay,
		}, log)
	h := handler.New(svc, log)

	bgCtx, bgCancel := context.WithCancel(context.Background())
	defer bgCancel()
	g, gCtx := errgroup.WithContext(bgCtx)

	consumer, err := kafka.NewConsumer(cfg.Kafka, kafka.NotifierConsumerGroup)
	if err != nil {
		return fmt.Errorf("kafka consumer %v", err)
	}
	g.Go(func() error {
		return kafka.Consume(gCtx, consumer, handler.NewConsumer(svc.NotifyForCopy, log), kafka.CopyAvailableTopic)
	})

	sweeper := service.NewSweeper(svc, cfg.Lending.SweepInterval, log)
	g.Go(func() error {
		return sweeper.Run(gCtx)
	})

	probe := status.NewProbe(db, cfg.Lending.ProbeInterval, log)
	g.Go(func() error {
		return probe.Run(gCtx)
	})

	router := h.NewRouter()
	router.GET("/manage/status", func(c echo.Context) error {
		return c.JSON(http.StatusOK, probe.Check(c.Request().Context()))
	})
	router.GET("/manage/status/history", func(c echo.Context) error {
		items, err := probe.RecentLogs(c.Request().Context(), 50)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, items)
	})

	srv := server.NewServer(cfg.Server, router)
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	bgCancel()
	if err := g.Wait(); err != nil && err != context.Canceled {
		log.Error("background workers", zap.Error(err))
	}
	if err := consumer.Close(); err != nil {
		log.Error("consumer.Close", zap.Error(err))
	}
	if err := producer.Close(); err != nil {
		log.Error("producer.Close", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
