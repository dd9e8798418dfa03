package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-calendar/internal/application"
	"github.com/sanosuguru/go-event-calendar/internal/config"
	"github.com/sanosuguru/go-event-calendar/internal/infrastructure/postgres"
	redisinfra "github.com/sanosuguru/go-event-calendar/internal/infrastructure/redis"
	"github.com/sanosuguru/go-event-calendar/internal/pkg/logger"
	"github.com/sanosuguru/go-event-calendar/internal/pkg/metrics"
	"github.com/sanosuguru/go-event-calendar/internal/seed"
	"github.com/sanosuguru/go-event-calendar/internal/server"
	"github.com/sanosuguru/go-event-calendar/internal/worker"
)

func main() {
	cfg := config.Load()

	log := logger.Setup(cfg.App.Env, cfg.App.LogLevel)
	defer logger.Sync()

	m := metrics.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ジャーナル（PostgreSQL）
	var journal *application.Journal
	if cfg.Database.Enabled {
		db, err := postgres.NewConnection(&cfg.Database)
		if err != nil {
			log.Fatal("データベース接続エラー", zap.Error(err))
		}
		defer db.Close()

		if err := postgres.RunMigrations(db.DB, cfg.Database.MigrationsPath); err != nil {
			log.Fatal("マイグレーションエラー", zap.Error(err))
		}
		journal = &application.Journal{
			Persons:       postgres.NewPersonRepository(db),
			Events:        postgres.NewEventRepository(db),
			Registrations: postgres.NewRegistrationRepository(db),
		}
		log.Info("ジャーナルを有効化しました", zap.String("host", cfg.Database.Host), zap.String("db", cfg.Database.DBName))
	}

	// 参加者数キャッシュ（Redis）
	var cache application.ParticipantCache
	if cfg.Redis.Enabled {
		client := redisinfra.NewClient(&cfg.Redis)
		defer client.Close()

		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisinfra.Ping(pingCtx, client)
		pingCancel()
		if err != nil {
			log.Fatal("Redis接続エラー", zap.Error(err))
		}
		cache = redisinfra.NewParticipantCache(client)
		log.Info("参加者数キャッシュを有効化しました", zap.String("addr", cfg.Redis.Addr()))
	}

	registry := application.NewRegistryService(journal, cache, m)
	if err := registry.Restore(ctx); err != nil {
		log.Fatal("レジストリの復元エラー", zap.Error(err))
	}

	// ジャーナルから復元済みの場合はシードを投入しない
	if st := registry.Stats(ctx); cfg.App.SeedFile != "" && st.Persons == 0 && st.Events == 0 {
		if err := loadSeed(ctx, registry, cfg.App.SeedFile); err != nil {
			log.Fatal("シード投入エラー", zap.Error(err))
		}
	}

	reporter := worker.NewStatsReporter(registry, m, cfg.Worker.StatsInterval)
	go reporter.Start(ctx)

	e := server.New(cfg, server.Deps{Registry: registry, Metrics: m})

	go func() {
		log.Info("サーバーを起動します", zap.String("port", cfg.Server.Port), zap.String("env", cfg.App.Env))
		if err := e.Start(fmt.Sprintf(":%s", cfg.Server.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("サーバーをシャットダウンしています...")

	reporter.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("サーバーシャットダウンエラー", zap.Error(err))
		return
	}

	log.Info("サーバーが正常にシャットダウンしました")
}

func loadSeed(ctx context.Context, registry *application.RegistryService, path string) error {
	f, err := seed.LoadFile(path)
	if err != nil {
		return err
	}
	result, err := seed.Apply(ctx, registry, f)
	if err != nil {
		return err
	}
	logger.Info("シードを投入しました",
		zap.String("file", path),
		zap.Int("persons", result.Persons),
		zap.Int("events", result.Events),
		zap.Int("registrations", result.Registrations),
	)
	return nil
}
