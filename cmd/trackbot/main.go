package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Remphph/Track-bot/internal/bot"
	"github.com/Remphph/Track-bot/internal/content"
	"github.com/Remphph/Track-bot/internal/database"
	"github.com/Remphph/Track-bot/internal/logger"
	"github.com/Remphph/Track-bot/internal/service"
	"github.com/Remphph/Track-bot/internal/storage"
	tg "github.com/Remphph/Track-bot/internal/telegram"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	if err := run(); err != nil {
		logger.Error(logger.Background(), "main", "fatal",
			slog.String("err", err.Error()),
		)
		_ = logger.Shutdown()
		os.Exit(1)
	}
	_ = logger.Shutdown()
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := bot.Load(configPath)
	if err != nil {
		return err
	}

	if err := logger.InitLogger(&cfg.Config); err != nil {
		return err
	}

	if err := database.RunMigrations(cfg.Database); err != nil {
		return err
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	drivers := service.NewDrivers(storage.NewDriverRepo(db))
	filter := content.NewFilter()
	tasks := service.NewTasks(storage.NewTaskRepo(db), storage.NewDriverRepo(db), filter)

	app := bot.New(cfg, drivers, tasks, filter)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return tg.RunTelegram(ctx, tg.RunOptions{
		Config:      &cfg.Config,
		Registry:    app.Registry(),
		Middlewares: tg.DefaultMiddlewares(&cfg.Config, nil),
		Routes:      app.Routes(),
		OnStart:     app.OnStart,
		OnStop:      app.OnStop,
	})
}
