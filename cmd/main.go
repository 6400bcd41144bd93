package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	authsqlite "foodserver/auth/storage/sqlite"
	"foodserver/internal/config"
	"foodserver/internal/logger"
	"foodserver/internal/notify"
	"foodserver/internal/service"
	"foodserver/internal/storage/sqlite"
	"foodserver/internal/tgbot"
	"foodserver/internal/web"

	authservice "foodserver/auth/service"

	_ "github.com/mattn/go-sqlite3"
)

var (
	serverConfigPath string
	botConfigPath    string
)

func init() {
	flag.StringVar(&serverConfigPath, "server-config", "configs/server.toml", "path to server config")
	flag.StringVar(&botConfigPath, "bot-config", "configs/bot.toml", "path to bot config")
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New(serverConfigPath, botConfigPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	authStorage, err := authsqlite.New(log, cfg.Server)
	if err != nil {
		return err
	}
	mailer := notify.NewEmailSender(log, cfg.Server.SMTP)
	auth, err := authservice.New(context.Background(), cfg.Server.Auth, authStorage, mailer)
	if err != nil {
		return err
	}

	foodStorage, err := sqlite.New(log, cfg.Server)
	if err != nil {
		return err
	}
	foodService := service.New(foodStorage, foodStorage, foodStorage)

	var bot *tgbot.Bot
	if cfg.TgBot.Enabled {
		bot, err = tgbot.New(log, cfg.TgBot)
		if err != nil {
			log.WithError(err).Error("telegram bot disabled")
			bot = nil
		}
	}

	server, err := web.New(foodService, cfg.Server, auth, bot, log)
	if err != nil {
		return err
	}
	return server.Serve()
}
