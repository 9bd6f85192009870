package app

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ostrenko/circulation-service/config"
	"github.com/ostrenko/circulation-service/internal/handler"
	"github.com/ostrenko/circulation-service/internal/model"
	"github.com/ostrenko/circulation-service/internal/notify"
	"github.com/ostrenko/circulation-service/internal/repository"
	"github.com/ostrenko/circulation-service/internal/scheduler"
	"github.com/ostrenko/circulation-service/internal/server"
	bookService "github.com/ostrenko/circulation-service/internal/service/book"
	copyService "github.com/ostrenko/circulation-service/internal/service/copy"
	fineService "github.com/ostrenko/circulation-service/internal/service/fine"
	loanService "github.com/ostrenko/circulation-service/internal/service/loan"
	reservationService "github.com/ostrenko/circulation-service/internal/service/reservation"
	"github.com/ostrenko/circulation-service/migrations"
	"github.com/ostrenko/circulation-service/pkg/kafka"
	"github.com/ostrenko/circulation-service/pkg/logger"
	"github.com/ostrenko/circulation-service/pkg/postgres"
)

func Run(cfg *config.Config) error {
	log := logger.NewLogger(cfg.Log, "circulation")
	db, err := postgres.NewPostgresDB(context.Background(), &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return fmt.Errorf("db init %w", err)
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		return fmt.Errorf("repo init %w", err)
	}

	var notifier notify.Notifier = notify.NewLogNotifier(log)
	if cfg.KafkaEnabled {
		producer, err := kafka.NewProducer(cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka.NewProducer %w", err)
		}
		defer producer.Close()
		notifier = notify.NewKafkaNotifier(producer, log)
	}

	bookSvc := bookService.NewService(repo, log)
	copySvc := copyService.NewService(repo, log)
	loanSvc := loanService.NewService(repo, notifier, log)
	reservationSvc := reservationService.NewService(repo, notifier, log)
	fineSvc := fineService.NewService(repo, notifier,
		func(context.Context) model.FineSettings { return cfg.Fines.Snapshot() }, log)

	h := handler.New(bookSvc, copySvc, loanSvc, reservationSvc, fineSvc, log)

	schedCtx, schedCancel := context.WithCancel(context.Background())
	defer schedCancel()
	sched := scheduler.New(log)
	sched.Add(
		scheduler.Job{
			Name:     "fine-accrual",
			Interval: cfg.Scheduler.FineAccrualInterval,
			Run:      fineSvc.RunAccrual,
		},
		scheduler.Job{
			Name:     "reservation-expiry",
			Interval: cfg.Scheduler.ReservationSweepInterval,
			Run:      reservationSvc.ExpirySweep,
		},
	)
	go func() {
		if err := sched.Start(schedCtx); err != nil {
			log.Error("scheduler", zap.Error(err))
		}
	}()

	srv := server.NewServer(cfg.Server, h.NewRouter())
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

	schedCancel()
	if err = srv.Stop(closeCtx); err != nil {
		log.Error("srv.Stop", zap.Error(err))
	}
	db.Close()
	log.Info("Graceful shutdown finished")
	return nil
}
