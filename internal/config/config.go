package config

import (
	"os"

	authservice "foodserver/auth/service"

	"github.com/BurntSushi/toml"
)

type TgBot struct {
	Enabled          bool   `toml:"enabled"`
	TelegramApiToken string `toml:"telegram_apitoken"`
	ChatID           int64  `toml:"chat_id"`
}

type SMTP struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

type Server struct {
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	Debug      bool   `toml:"debug_mode"`
	Production bool   `toml:"production"`
	SqliteFile string `toml:"sqlite_file"`

	Auth authservice.Config `toml:"auth"`
	SMTP SMTP               `toml:"smtp"`
}

type Config struct {
	TgBot  TgBot
	Server Server
}

func New(serverPath, botPath string) (Config, error) {
	var serverCfg Server
	_, err := toml.DecodeFile(serverPath, &serverCfg)
	if err != nil {
		return Config{}, err
	}
	if token := os.Getenv("AUTH_TOKEN"); token != "" {
		serverCfg.Auth.Token = token
	}
	if password := os.Getenv("ADMIN_PASSWORD"); password != "" {
		serverCfg.Auth.AdminPassword = password
	}
	if password := os.Getenv("SMTP_PASSWORD"); password != "" {
		serverCfg.SMTP.Password = password
	}
	serverCfg.Auth.Production = serverCfg.Production

	var tgBotCfg TgBot
	_, err = toml.DecodeFile(botPath, &tgBotCfg)
	if err != nil {
		return Config{}, err
	}
	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		tgBotCfg.TelegramApiToken = token
	}

	return Config{
		TgBot:  tgBotCfg,
		Server: serverCfg,
	}, nil
}
