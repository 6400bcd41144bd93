// Package tgbot announces order activity to a telegram chat. The bot is
// optional; the server runs fine without it.
package tgbot

import (
	"fmt"

	"foodserver/internal/config"
	"foodserver/internal/domain"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Bot struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    *logrus.Entry
}

func New(l *logrus.Logger, cfg config.TgBot) (*Bot, error) {
	log := l.WithFields(map[string]interface{}{
		"from": "tgbot",
	})
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramApiToken)
	if err != nil {
		return nil, err
	}
	log.WithField("account", bot.Self.UserName).Info("bot authorized")
	return &Bot{
		bot:    bot,
		chatID: cfg.ChatID,
		log:    log,
	}, nil
}

func (b *Bot) AnnounceOrder(order domain.Order) {
	text := fmt.Sprintf("New order %s: %d item(s), %.2f", order.ID, len(order.Items), order.TotalPrice)
	b.send(text)
}

func (b *Bot) AnnounceStatus(order domain.Order) {
	text := fmt.Sprintf("Order %s is now %q", order.ID, order.Status)
	b.send(text)
}

func (b *Bot) send(text string) {
	msg := tgbotapi.NewMessage(b.chatID, text)
	if _, err := b.bot.Send(msg); err != nil {
		b.log.WithError(err).Error("can't send message")
	}
}
