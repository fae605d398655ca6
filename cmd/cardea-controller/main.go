package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"google.golang.org/grpc"

	cardeav1 "github.com/cardea-access/cardea/api/cardea/v1"
	"github.com/cardea-access/cardea/internal/alert"
	"github.com/cardea-access/cardea/internal/cardea/actuator"
	"github.com/cardea-access/cardea/internal/cardea/audit"
	"github.com/cardea-access/cardea/internal/cardea/decoder"
	"github.com/cardea-access/cardea/internal/cardea/engine"
	"github.com/cardea-access/cardea/internal/cardea/listener"
	"github.com/cardea-access/cardea/internal/cardea/types"
	"github.com/cardea-access/cardea/internal/config"
	"github.com/cardea-access/cardea/internal/db"
	"github.com/cardea-access/cardea/internal/gateway"
	"github.com/cardea-access/cardea/internal/hardware"
	sqlitestore "github.com/cardea-access/cardea/internal/cardea/store/sqlite"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, db.Config{Path: cfg.DBPath, Env: cfg.Env})
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	if cfg.Env == "dev" {
		if err := db.SeedDev(ctx, database, db.SeedDevOptions{
			DoorID:          cfg.DoorID,
			DoorApartmentID: cfg.DoorApartmentID,
		}); err != nil {
			logger.Error("seed dev data", "error", err)
			os.Exit(1)
		}
	}

	writer := db.NewWorker(database)
	defer writer.Close()

	subjects := sqlitestore.NewSubjectStore(database)
	decisions := sqlitestore.NewDecisionStore(database, writer)

	door := types.Door{ID: cfg.DoorID, ApartmentID: cfg.DoorApartmentID}
	eng := engine.New(subjects, decisions, door, cfg.LookupTimeout, logger)

	relay, err := newRelay(cfg)
	if err != nil {
		logger.Error("init relay", "error", err, "pin", cfg.RelayPin)
		os.Exit(1)
	}
	act := actuator.New(relay, cfg.PulseDuration, cfg.MaxActiveWindow, logger)
	defer act.Close()

	var notifier listener.Notifier
	if cfg.MQTTBroker != "" {
		n, err := alert.Connect(alert.Config{
			Broker:      cfg.MQTTBroker,
			ClientID:    cfg.MQTTClientID,
			Username:    cfg.MQTTUsername,
			Password:    cfg.MQTTPassword,
			TopicPrefix: cfg.MQTTTopicPrefix,
			QoS:         byte(cfg.MQTTQoS),
		}, cfg.DoorID, logger)
		if err != nil {
			logger.Error("connect mqtt broker", "error", err, "broker", cfg.MQTTBroker)
			os.Exit(1)
		}
		defer n.Close()
		notifier = n
		act.SetFaultHandler(n.Fault)
	}

	dec := decoder.New(newClassifier(cfg), cfg.MaxInputLength, cfg.InputTimeout)
	source := hardware.NewStdinSource(os.Stdin, "reader-0")
	defer source.Close()
	lst := listener.New(source, dec, eng, act, notifier, logger)

	pruner := audit.NewPruner(decisions, audit.PrunerConfig{
		RetentionDays: cfg.AuditRetentionDays,
		Interval:      cfg.PruneInterval,
	}, logger)
	pruner.Start(ctx)
	defer pruner.Stop()

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("listen grpc", "error", err, "addr", cfg.GRPCAddr)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()
	cardeav1.RegisterRemoteTriggerServer(grpcServer, gateway.New(eng, act, notifier, logger))

	go func() {
		logger.Info("remote trigger gateway listening", "addr", cfg.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc server stopped", "error", err)
			stop()
		}
	}()

	go func() {
		logger.Info("scan loop started", "door_id", cfg.DoorID, "reader_mode", cfg.ReaderMode)
		if err := lst.Run(ctx); err != nil && ctx.Err() == nil {
			logger.Error("scan loop exited", "error", err)
		}
		stop()
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}

func newLogger(cfg config.Config) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	format := cfg.LogFormat
	if format == "" {
		if cfg.Env == "prod" {
			format = "json"
		} else {
			format = "text"
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// newRelay picks the relay backend. Dev runs without GPIO hardware, so a
// fake keeps the whole pipeline exercisable on a laptop.
func newRelay(cfg config.Config) (hardware.Relay, error) {
	if cfg.Env == "prod" {
		return hardware.NewGPIORelay(cfg.RelayPin, cfg.RelayActiveHigh)
	}
	return hardware.NewFakeRelay(), nil
}

func newClassifier(cfg config.Config) decoder.Classifier {
	if cfg.ReaderMode == "framed" {
		return decoder.FramedClassifier{
			PrefixLen: cfg.FramedPrefixLen,
			SuffixLen: cfg.FramedSuffixLen,
			Digits:    cfg.FramedDigits,
			Kind:      types.KindRFID,
		}
	}
	return decoder.TimingClassifier{BurstThreshold: cfg.BurstThreshold}
}
