package bot

import (
	"context"

	"github.com/americanglobalgroup/parcel-tracker/internal/broadcast"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Messenger is the part of the Telegram API the bot talks through.
// *tgbotapi.BotAPI implements it.
type Messenger interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Client delivers broadcast messages through a Messenger.
type Client struct {
	messenger Messenger
}

// Make sure we conform to broadcast.Sender interface
var _ broadcast.Sender = (*Client)(nil)

func NewClient(m Messenger) *Client {
	return &Client{messenger: m}
}

func (c *Client) SendText(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := c.messenger.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

func (c *Client) SendPhoto(ctx context.Context, chatID int64, photoURL string, caption string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(photoURL))
	photo.Caption = caption
	_, err := c.messenger.Send(photo)
	return err
}

// RegisterCommands publishes the command menu.
func RegisterCommands(m Messenger, commands []tgbotapi.BotCommand) error {
	_, err := m.Request(tgbotapi.NewSetMyCommands(commands...))
	return err
}
