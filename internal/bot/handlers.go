package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/americanglobalgroup/parcel-tracker/internal/broadcast"
	"github.com/americanglobalgroup/parcel-tracker/internal/events"
	"github.com/americanglobalgroup/parcel-tracker/internal/i18n"
	"github.com/americanglobalgroup/parcel-tracker/internal/service"
	"github.com/americanglobalgroup/parcel-tracker/internal/store"
	"github.com/americanglobalgroup/parcel-tracker/internal/tracking"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	commandStart       = "start"
	commandSetLanguage = "setlanguage"
	commandSubscribe   = "subscribe"
	commandBroadcast   = "broadcast"
)

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) {
	from := msg.From
	if _, err := b.store.User().Upsert(ctx, store.UserUpsert{
		ID:        from.ID,
		Username:  from.UserName,
		FirstName: from.FirstName,
		LastName:  from.LastName,
	}); err != nil {
		zap.S().Named("bot").Errorw("failed to save user", "user_id", from.ID, "error", err)
	}
	b.recorder.Record(ctx, events.ActionStart, from.ID, "")

	lang := b.language(ctx, from.ID)
	b.reply(msg.Chat.ID, b.catalog.Message(i18n.KeyStart, lang), b.routeKeyboard(lang))
}

func (b *Bot) handleSetLanguagePrompt(ctx context.Context, msg *tgbotapi.Message) {
	b.reply(msg.Chat.ID, b.catalog.Message(i18n.KeyLanguagePrompt, i18n.Primary), b.languageKeyboard())
}

func (b *Bot) handleSetLanguage(ctx context.Context, query *tgbotapi.CallbackQuery) {
	lang := i18n.ParseLanguage(strings.TrimPrefix(query.Data, callbackSetLanguagePrefix))
	userID := query.From.ID

	b.sessions.setLanguage(userID, lang)
	if err := b.store.User().SetLanguage(ctx, userID, lang.String()); err != nil {
		zap.S().Named("bot").Errorw("failed to save language", "user_id", userID, "error", err)
	}
	b.recorder.Record(ctx, events.ActionSetLanguage, userID, lang.String())

	b.reply(query.Message.Chat.ID, b.catalog.Message(i18n.KeyLanguageSet, lang), nil)
}

func (b *Bot) handleDirection(ctx context.Context, query *tgbotapi.CallbackQuery, route tracking.Route) {
	userID := query.From.ID
	b.sessions.setRoute(userID, route)
	b.recorder.Record(ctx, events.ActionSelectRoute, userID, route.String())

	lang := b.language(ctx, userID)
	text := b.catalog.Message(i18n.KeyEnterWaybill, lang) + b.rules.ExampleCode(route)
	b.reply(query.Message.Chat.ID, text, b.whereToFindKeyboard(lang))
}

func (b *Bot) handleWhereToFind(ctx context.Context, query *tgbotapi.CallbackQuery) {
	userID := query.From.ID
	lang := b.language(ctx, userID)
	chatID := query.Message.Chat.ID

	sess, _ := b.sessions.get(userID)
	if sess.route == "" {
		b.reply(chatID, b.catalog.Message(i18n.KeySelectWaybillFirst, lang), nil)
		return
	}
	b.recorder.Record(ctx, events.ActionWhereToFind, userID, sess.route.String())

	hint, ok := b.catalog.RouteMessage(i18n.KeyWhereToFind, sess.route.String(), lang)
	if !ok {
		hint = b.catalog.Message(i18n.KeyError, lang)
	}
	b.reply(chatID, hint, nil)
}

func (b *Bot) handleChangeDirection(ctx context.Context, query *tgbotapi.CallbackQuery) {
	lang := b.language(ctx, query.From.ID)
	b.reply(query.Message.Chat.ID, b.catalog.Message(i18n.KeyChooseRoute, lang), b.routeKeyboard(lang))
}

func (b *Bot) handleWaybill(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	chatID := msg.Chat.ID
	lang := b.language(ctx, userID)

	sess, _ := b.sessions.get(userID)
	if sess.route == "" {
		b.reply(chatID, b.catalog.Message(i18n.KeySelectWaybillFirst, lang), b.routeKeyboard(lang))
		return
	}

	code := strings.TrimSpace(msg.Text)
	result, err := b.tracker.Lookup(ctx, sess.route, code, lang)
	b.recorder.Record(ctx, events.ActionLookup, userID, fmt.Sprintf("%s %s %s", sess.route, code, result.Status))
	if err != nil {
		text := b.catalog.Message(i18n.KeyError, lang)
		if b.verbose {
			text += " " + err.Error()
		}
		b.reply(chatID, text, nil)
		return
	}

	switch result.Status {
	case service.LookupFound:
		var markup interface{}
		if result.Outcome.Report != nil && result.Outcome.Report.ShowSocialLinks {
			markup = socialLinksKeyboard()
		}
		b.reply(chatID, result.Outcome.Text(), markup)
	case service.LookupNotFound:
		b.reply(chatID, b.notFoundText(sess.route, lang), b.routeKeyboard(lang))
	case service.LookupMissingColumn:
		b.reply(chatID, b.catalog.Message(i18n.KeyMissingWaybillColumn, lang), nil)
	case service.LookupRouteInactive:
		b.reply(chatID, b.catalog.Message(i18n.KeyRouteNotActive, lang), nil)
	default:
		b.reply(chatID, b.catalog.Message(i18n.KeyError, lang), nil)
	}
}

func (b *Bot) notFoundText(route tracking.Route, lang i18n.Language) string {
	notFound, _ := b.catalog.RouteMessage(i18n.KeyNotFound, route.String(), lang)

	var sb strings.Builder
	sb.WriteString(notFound)
	sb.WriteString("\n\n")
	sb.WriteString(tracking.ContactInfo)
	sb.WriteString("\n")
	sb.WriteString(b.catalog.Message(i18n.KeySelectedDirection, lang))
	sb.WriteString(b.routeName(route, lang))
	sb.WriteString("\n\n")
	sb.WriteString(b.catalog.Message(i18n.KeyChangeDirection, lang))
	return sb.String()
}

func (b *Bot) handleSubscribe(ctx context.Context, msg *tgbotapi.Message) {
	lang := b.language(ctx, msg.From.ID)
	b.reply(msg.Chat.ID, b.catalog.Message(i18n.KeySharePhone, lang), b.contactKeyboard(lang))
}

func (b *Bot) handleContact(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	lang := b.language(ctx, userID)

	// only the own number is accepted, a forwarded card belongs to someone else
	if msg.Contact.UserID != 0 && msg.Contact.UserID != userID {
		zap.S().Named("bot").Warnw("ignoring foreign contact", "user_id", userID, "contact_user_id", msg.Contact.UserID)
		return
	}

	phone := msg.Contact.PhoneNumber
	err := b.store.User().SetPhone(ctx, userID, phone)
	if errors.Is(err, store.ErrRecordNotFound) {
		_, err = b.store.User().Upsert(ctx, store.UserUpsert{
			ID:          userID,
			Username:    msg.From.UserName,
			FirstName:   msg.From.FirstName,
			LastName:    msg.From.LastName,
			PhoneNumber: &phone,
		})
	}
	if err != nil {
		zap.S().Named("bot").Errorw("failed to save phone number", "user_id", userID, "error", err)
		b.reply(msg.Chat.ID, b.catalog.Message(i18n.KeyError, lang), tgbotapi.NewRemoveKeyboard(false))
		return
	}
	b.recorder.Record(ctx, events.ActionShareContact, userID, "")

	b.reply(msg.Chat.ID, b.catalog.Message(i18n.KeyPhoneSaved, lang), tgbotapi.NewRemoveKeyboard(false))
}

func (b *Bot) handleBroadcast(ctx context.Context, msg *tgbotapi.Message) {
	userID := msg.From.ID
	lang := b.language(ctx, userID)

	if !b.isAdmin(ctx, userID) {
		b.reply(msg.Chat.ID, b.catalog.Message(i18n.KeyBroadcastForbidden, lang), nil)
		return
	}

	req, err := broadcast.Parse(msg.CommandArguments())
	if err != nil {
		zap.S().Named("bot").Infow("invalid broadcast command", "user_id", userID, "error", err)
		b.reply(msg.Chat.ID, b.catalog.Message(i18n.KeyBroadcastUsage, lang), nil)
		return
	}

	result, err := b.dispatcher.Dispatch(ctx, userID, req)
	if err != nil {
		zap.S().Named("bot").Errorw("broadcast failed", "user_id", userID, "error", err)
		if result == nil {
			b.reply(msg.Chat.ID, b.catalog.Message(i18n.KeyError, lang), nil)
			return
		}
	}
	b.recorder.Record(ctx, events.ActionBroadcast, userID, req.Audience.String())

	b.reply(msg.Chat.ID, b.catalog.Messagef(i18n.KeyBroadcastDone, lang, len(result.Delivered), len(result.Failed)), nil)
}
