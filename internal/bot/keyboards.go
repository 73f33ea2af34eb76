package bot

import (
	"github.com/americanglobalgroup/parcel-tracker/internal/i18n"
	"github.com/americanglobalgroup/parcel-tracker/internal/tracking"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// callback data of the inline buttons
const (
	callbackSetLanguagePrefix = "set_lang_"
	callbackWhereToFind       = "where_to_find"
	callbackChangeDirection   = "change_direction"
)

func (b *Bot) routeName(route tracking.Route, lang i18n.Language) string {
	if name, ok := b.catalog.RouteMessage(i18n.KeyRouteName, route.String(), lang); ok {
		return name
	}
	return b.catalog.Message(i18n.KeyUnknownDirection, lang)
}

func (b *Bot) routeKeyboard(lang i18n.Language) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(tracking.Routes()))
	for _, route := range tracking.Routes() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(b.routeName(route, lang), route.String()),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (b *Bot) languageKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			b.catalog.Message(i18n.KeyLanguageNamePrimary, i18n.Primary), callbackSetLanguagePrefix+i18n.Primary.String())),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData(
			b.catalog.Message(i18n.KeyLanguageNameSecondary, i18n.Secondary), callbackSetLanguagePrefix+i18n.Secondary.String())),
	)
}

func (b *Bot) whereToFindKeyboard(lang i18n.Language) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData(b.catalog.Message(i18n.KeyWhereToFindButton, lang), callbackWhereToFind),
	))
}

func (b *Bot) contactKeyboard(lang i18n.Language) tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(tgbotapi.NewKeyboardButtonRow(
		tgbotapi.NewKeyboardButtonContact(b.catalog.Message(i18n.KeyShare, lang)),
	))
	keyboard.OneTimeKeyboard = true
	keyboard.ResizeKeyboard = true
	return keyboard
}

func socialLinksKeyboard() tgbotapi.InlineKeyboardMarkup {
	buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(tracking.SocialLinks))
	for _, l := range tracking.SocialLinks {
		buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonURL(l.Label, l.URL))
	}
	return tgbotapi.NewInlineKeyboardMarkup(buttons)
}
