// Package bot implements the Telegram transport: update dispatch, selection flow, and document delivery.
package bot

import (
	"errors"

	"github.com/coursex-bot/coursex/api"
	"github.com/coursex-bot/coursex/key"
	"github.com/coursex-bot/coursex/log"
	"github.com/coursex-bot/coursex/session"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/viper"
)

// Options configure a bot run.
type Options struct {
	// Token overrides the configured Telegram bot token when non-empty.
	Token string
}

// Bot wires the Telegram API to the catalog client and per-user session state.
type Bot struct {
	api      *tgbotapi.BotAPI
	client   *api.Client
	sessions *session.Manager
}

// New authenticates against the Telegram Bot API.
func New(options *Options) (*Bot, error) {
	token := options.Token
	if token == "" {
		token = viper.GetString(key.BotToken)
	}
	if token == "" {
		return nil, errors.New("bot token is required (set COURSEX_BOT_TOKEN or bot.token)")
	}

	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:      botAPI,
		client:   api.NewClient(),
		sessions: session.NewManager(),
	}, nil
}

// Run authenticates and processes updates until the update channel closes.
func Run(options *Options) error {
	b, err := New(options)
	if err != nil {
		return err
	}
	return b.Run()
}

// Run consumes the long-polling update stream.
//
// Updates are handled sequentially: Telegram delivers one in-flight chat turn
// per user, and sessions of distinct users never share state anyway.
func (b *Bot) Run() error {
	log.Infof("authorized on account %s", b.api.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = viper.GetInt(key.BotUpdateTimeout)

	for update := range b.api.GetUpdatesChan(updateConfig) {
		b.handleUpdate(update)
	}

	return nil
}

// reply sends a plain text message, logging delivery failures instead of propagating them.
func (b *Bot) reply(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Errorf("send message: %v", err)
	}
}
