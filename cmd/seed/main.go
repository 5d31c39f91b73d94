package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"user-seeder/internal/core/config"
	"user-seeder/internal/core/database"
	"user-seeder/internal/core/logger"
	"user-seeder/internal/core/metrics"
	"user-seeder/internal/domain"
	"user-seeder/internal/repo"
	"user-seeder/internal/seed"
)

func main() {
	configPath := flag.String("config", "", "config file (default $CONFIG_PATH or ./configs/config.local.yaml)")
	env := flag.String("env", "", "override app.env; only \"development\" clears the table first")
	count := flag.Int("random", -1, "override seed.randomCount")
	fakerSeed := flag.Int64("faker-seed", 0, "override seed.fakerSeed (0 keeps config)")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *env != "" {
		cfg.App.Env = *env
	}
	if *count >= 0 {
		cfg.Seed.RandomCount = *count
	}
	if *fakerSeed != 0 {
		cfg.Seed.FakerSeed = *fakerSeed
	}

	log, cleanup := logger.NewWithRotate(cfg.Log.Level, cfg.Log.JSON, logger.FileRotate(cfg.Log.File))
	defer cleanup()
	defer logger.RedirectStdLog(log, zapcore.InfoLevel)()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver), zap.String("env", cfg.App.Env))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.User{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := seed.DefaultOptions()
	opts.Development = cfg.IsDevelopment()
	opts.RandomCount = cfg.Seed.RandomCount

	rec := metrics.New()
	s := seed.New(repo.NewUserRepo(db), seed.NewFakeGenerator(cfg.Seed.FakerSeed), log, rec, opts)

	rep, err := s.Run(ctx)
	if err != nil {
		log.Fatal("seeding FAILED", zap.Error(err))
	}
	if err := rec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		log.Warn("write metrics textfile", zap.String("path", cfg.Metrics.Textfile), zap.Error(err))
	}

	fmt.Printf("\nSeeding completed!\nSummary:\n   Total users: %d\n   Verified users: %d\n   Unverified users: %d\n",
		rep.Summary.Total, rep.Summary.Verified, rep.Summary.Unverified)
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
		Logger:             l,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
